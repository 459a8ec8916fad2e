/*
handlers.go - HTTP handlers for the banking app API

PURPOSE:
  Exposes the auth stub and the ledger engine over REST. Handlers parse
  the request, call exactly one engine/service operation, and serialize
  the result; all bookkeeping rules live in the ledger package.

ENDPOINTS:
  Auth (contract matches the original client):
    POST /api/auth/login       Login, returns token + user
    POST /api/auth/register    Register a pending account
    GET  /api/health           Liveness check

  Ledger:
    GET  /api/ledger/transactions    Transaction history, newest first
    GET  /api/ledger/rewards         Reward history, newest first
    GET  /api/ledger/points          Reward-points total
    GET  /api/ledger/balance         Account balance
    POST /api/ledger/bill-payments   Record bill payment, returns points
    POST /api/ledger/load-purchases  Record load purchase, returns points
    POST /api/ledger/transfers       Record transfer (amount + fee)
    POST /api/ledger/redemptions     Redeem voucher points

  Favorites:
    GET|POST /api/favorites/billers
    GET|POST /api/favorites/recipients
    GET|POST /api/favorites/contacts

  Receipts:
    POST /api/receipts         Render a receipt as a .txt download

ERROR HANDLING:
  Auth failures map to the client's original message contract
  ({"message": ...}) with 400/401/403/409. Ledger endpoints only fail
  when the store itself fails; that surfaces as a 500 with
  {"error": ...}. Duplicate favorites are NOT errors - the saved flag
  in a 200 response reports them.

SECURITY NOTE:
  No authentication middleware guards the ledger endpoints; the token
  from login is decorative, exactly as in the original demo.
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jachemlyn/chinabank-online/auth"
	"github.com/jachemlyn/chinabank-online/ledger"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Ledger *ledger.Engine
	Auth   *auth.Service
	Log    *logrus.Logger
}

func NewHandler(eng *ledger.Engine, authSvc *auth.Service, log *logrus.Logger) *Handler {
	return &Handler{Ledger: eng, Auth: authSvc, Log: log}
}

// =============================================================================
// AUTH HANDLERS
// =============================================================================

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Login authenticates a username-or-email plus password.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	session, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		status, msg := authStatus(err)
		writeMessage(w, status, msg)
		return
	}

	h.Log.WithField("username", session.Username).Info("login")
	writeJSON(w, http.StatusOK, LoginResponse{
		Token: session.Token,
		User: UserDTO{
			Username:      session.Username,
			FullName:      session.FullName,
			AccountNumber: session.AccountNumber,
		},
	})
}

// Register creates a pending account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err := h.Auth.Register(auth.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		AgreedToTerms:   req.AgreedToTerms,
	})
	if err != nil {
		status, msg := authStatus(err)
		writeMessage(w, status, msg)
		return
	}

	h.Log.WithField("email", req.Email).Info("registration submitted")
	writeMessage(w, http.StatusCreated,
		"Your account has been registered. Please wait 3-5 business days for approval.")
}

// authStatus maps an auth error to the client's status + message contract.
func authStatus(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		return http.StatusBadRequest, "All fields are required."
	case errors.Is(err, auth.ErrPasswordMismatch):
		return http.StatusBadRequest, "Passwords do not match."
	case errors.Is(err, auth.ErrTermsNotAgreed):
		return http.StatusBadRequest, "You must agree to the Terms and Conditions."
	case errors.Is(err, auth.ErrEmailTaken):
		return http.StatusConflict, "An account with this email already exists."
	case errors.Is(err, auth.ErrMissingCredentials):
		return http.StatusBadRequest, "Username and password are required."
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password."
	case errors.Is(err, auth.ErrPendingApproval):
		return http.StatusForbidden, "Your account is pending approval. Please wait 3-5 business days."
	default:
		return http.StatusInternalServerError, "Something went wrong."
	}
}

// =============================================================================
// LEDGER ACCESSOR HANDLERS
// =============================================================================

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Ledger.Transactions()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load transactions", err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *Handler) GetRewards(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Ledger.Rewards()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load rewards", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) GetPoints(w http.ResponseWriter, r *http.Request) {
	pts, err := h.Ledger.TotalPoints()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load points", err)
		return
	}
	writeJSON(w, http.StatusOK, PointsResponse{TotalPoints: pts})
}

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	bal, err := h.Ledger.Balance()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load balance", err)
		return
	}
	writeJSON(w, http.StatusOK, BalanceResponse{Balance: bal.String()})
}

// =============================================================================
// LEDGER ACTION HANDLERS
// =============================================================================

func (h *Handler) RecordBillPayment(w http.ResponseWriter, r *http.Request) {
	var req BillPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !req.Amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "Amount must be positive", nil)
		return
	}

	points, err := h.Ledger.RecordBillPayment(req.BillerName, req.Amount)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record bill payment", err)
		return
	}

	h.Log.WithFields(logrus.Fields{
		"biller": req.BillerName,
		"amount": req.Amount.String(),
		"points": points,
	}).Info("bill payment recorded")
	writeJSON(w, http.StatusOK, RewardPointsResponse{RewardPoints: points})
}

func (h *Handler) RecordBuyLoad(w http.ResponseWriter, r *http.Request) {
	var req BuyLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !req.Amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "Amount must be positive", nil)
		return
	}

	points, err := h.Ledger.RecordBuyLoad(req.NetworkName, req.Amount)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record load purchase", err)
		return
	}

	h.Log.WithFields(logrus.Fields{
		"network": req.NetworkName,
		"amount":  req.Amount.String(),
		"points":  points,
	}).Info("load purchase recorded")
	writeJSON(w, http.StatusOK, RewardPointsResponse{RewardPoints: points})
}

func (h *Handler) RecordTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !req.Amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "Amount must be positive", nil)
		return
	}
	if req.Fee.IsNegative() {
		writeError(w, http.StatusBadRequest, "Fee must not be negative", nil)
		return
	}

	if err := h.Ledger.RecordTransfer(req.BankName, req.Amount, req.Fee); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record transfer", err)
		return
	}

	h.Log.WithFields(logrus.Fields{
		"bank":   req.BankName,
		"amount": req.Amount.String(),
		"fee":    req.Fee.String(),
	}).Info("transfer recorded")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RedeemVoucher(w http.ResponseWriter, r *http.Request) {
	var req RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Cost <= 0 {
		writeError(w, http.StatusBadRequest, "Cost must be positive", nil)
		return
	}

	if err := h.Ledger.RedeemVoucher(req.BrandName, req.Cost); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to redeem voucher", err)
		return
	}

	h.Log.WithFields(logrus.Fields{
		"brand": req.BrandName,
		"cost":  req.Cost,
	}).Info("voucher redeemed")
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// FAVORITES HANDLERS
// =============================================================================

func (h *Handler) ListFavoriteBillers(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Ledger.FavoriteBillers()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load favorites", err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

func (h *Handler) SaveFavoriteBiller(w http.ResponseWriter, r *http.Request) {
	var req SaveBillerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	saved, err := h.Ledger.SaveFavoriteBiller(ledger.BillerInput{
		Name:          req.Name,
		Category:      req.Category,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, SavedResponse{Saved: saved})
}

func (h *Handler) ListFavoriteRecipients(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Ledger.FavoriteRecipients()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load favorites", err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

func (h *Handler) SaveFavoriteRecipient(w http.ResponseWriter, r *http.Request) {
	var req SaveRecipientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	saved, err := h.Ledger.SaveFavoriteRecipient(ledger.RecipientInput{
		BankValue:     req.BankValue,
		BankLabel:     req.BankLabel,
		AccountNumber: req.AccountNumber,
		Nickname:      req.Nickname,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, SavedResponse{Saved: saved})
}

func (h *Handler) ListFavoriteContacts(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Ledger.FavoriteContacts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load favorites", err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

func (h *Handler) SaveFavoriteContact(w http.ResponseWriter, r *http.Request) {
	var req SaveContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	saved, err := h.Ledger.SaveFavoriteContact(ledger.ContactInput{
		Network:      req.Network,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save favorite", err)
		return
	}
	writeJSON(w, http.StatusOK, SavedResponse{Saved: saved})
}

// =============================================================================
// RECEIPT HANDLER
// =============================================================================

// DownloadReceipt renders a receipt and serves it as a text attachment.
// A missing refNo is minted server-side.
func (h *Handler) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	var req ReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.RefNo == "" {
		req.RefNo = ledger.NewReferenceNumber(time.Now())
	}

	data := req.toData()
	text := ledger.FormatReceipt(data)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", data.Filename()))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}
