/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the HTTP surface. Ledger entry types already carry
  client-facing JSON tags (the client rendered them straight out of its
  local store), so list responses reuse them directly; this file holds
  the request bodies and the composed/scalar responses.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *Response / *DTO: Response types returned to clients

SEE ALSO:
  - handlers.go: Uses these types
  - ledger/types.go: Entry types reused in list responses
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/jachemlyn/chinabank-online/ledger"
)

// =============================================================================
// AUTH - Contract matches the client's login/register forms
// =============================================================================

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type UserDTO struct {
	Username      string `json:"username"`
	FullName      string `json:"fullName"`
	AccountNumber string `json:"accountNumber"`
}

type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreedToTerms   bool   `json:"agreedToTerms"`
}

// MessageResponse carries the user-facing message for auth outcomes.
type MessageResponse struct {
	Message string `json:"message"`
}

// =============================================================================
// LEDGER ACTIONS
// =============================================================================

type BillPaymentRequest struct {
	BillerName string          `json:"billerName"`
	Amount     decimal.Decimal `json:"amount"`
}

type BuyLoadRequest struct {
	NetworkName string          `json:"networkName"`
	Amount      decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	BankName string          `json:"bankName"`
	Amount   decimal.Decimal `json:"amount"`
	Fee      decimal.Decimal `json:"fee"`
}

type RedeemRequest struct {
	BrandName string `json:"brandName"`
	Cost      int64  `json:"cost"`
}

type RewardPointsResponse struct {
	RewardPoints int64 `json:"rewardPoints"`
}

type PointsResponse struct {
	TotalPoints int64 `json:"totalPoints"`
}

type BalanceResponse struct {
	Balance string `json:"balance"`
}

// =============================================================================
// FAVORITES
// =============================================================================

type SaveBillerRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	AccountNumber string `json:"accountNumber"`
}

type SaveRecipientRequest struct {
	BankValue     string `json:"bankValue"`
	BankLabel     string `json:"bankLabel"`
	AccountNumber string `json:"accountNumber"`
	Nickname      string `json:"nickname"`
}

type SaveContactRequest struct {
	Network      string `json:"network"`
	MobileNumber string `json:"mobileNumber"`
}

// SavedResponse reports whether a favorite was newly saved.
// false means it already existed; both are success states.
type SavedResponse struct {
	Saved bool `json:"saved"`
}

// =============================================================================
// RECEIPTS
// =============================================================================

type ReceiptRowDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ReceiptRequest struct {
	Title string          `json:"title"`
	RefNo string          `json:"refNo"`
	Date  string          `json:"date"`
	Time  string          `json:"time"`
	Rows  []ReceiptRowDTO `json:"rows"`
	Total ReceiptRowDTO   `json:"total"`
}

func (r ReceiptRequest) toData() ledger.ReceiptData {
	rows := make([]ledger.ReceiptRow, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = ledger.ReceiptRow{Label: row.Label, Value: row.Value}
	}
	return ledger.ReceiptData{
		Title: r.Title,
		RefNo: r.RefNo,
		Date:  r.Date,
		Time:  r.Time,
		Rows:  rows,
		Total: ledger.ReceiptRow{Label: r.Total.Label, Value: r.Total.Value},
	}
}

// =============================================================================
// ERRORS
// =============================================================================

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
