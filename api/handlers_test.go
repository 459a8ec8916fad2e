package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jachemlyn/chinabank-online/api"
	"github.com/jachemlyn/chinabank-online/auth"
	"github.com/jachemlyn/chinabank-online/kv"
	"github.com/jachemlyn/chinabank-online/ledger"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logrus.New()
	log.Out = io.Discard

	handler := api.NewHandler(ledger.New(kv.NewMemory()), auth.NewService(), log)
	return api.NewRouter(handler)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

// =============================================================================
// HEALTH AND AUTH
// =============================================================================

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[api.HealthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestLogin_RoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", api.LoginRequest{
		Username: "jachemlyn", Password: "H@rlz@2836",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[api.LoginResponse](t, rec)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "1234-5678-9012", resp.User.AccountNumber)
}

func TestLogin_BadPassword_401WithMessage(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", api.LoginRequest{
		Username: "jachemlyn", Password: "nope",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decode[api.MessageResponse](t, rec)
	assert.Equal(t, "Invalid username or password.", resp.Message)
}

func TestRegister_ThenPendingLogin(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", api.RegisterRequest{
		FullName: "Maria Santos", Email: "maria@example.com", Phone: "9171234567",
		Password: "s3cret!", ConfirmPassword: "s3cret!", AgreedToTerms: true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", api.LoginRequest{
		Username: "maria@example.com", Password: "s3cret!",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegister_DuplicateEmail_409(t *testing.T) {
	router := newTestRouter(t)

	body := api.RegisterRequest{
		FullName: "Maria Santos", Email: "maria@example.com", Phone: "9171234567",
		Password: "s3cret!", ConfirmPassword: "s3cret!", AgreedToTerms: true,
	}
	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/auth/register", body).Code)
	assert.Equal(t, http.StatusConflict,
		doJSON(t, router, http.MethodPost, "/api/auth/register", body).Code)
}

// =============================================================================
// LEDGER ROUND-TRIPS
// =============================================================================

func TestBillPayment_RoundTrip(t *testing.T) {
	// GIVEN: A fresh profile
	// WHEN: Paying a 1234.56 bill over the API
	// THEN: 25 points come back and the transaction list reflects it

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/ledger/bill-payments",
		map[string]any{"billerName": "Meralco", "amount": 1234.56})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[api.RewardPointsResponse](t, rec)
	assert.Equal(t, int64(25), resp.RewardPoints)

	rec = doJSON(t, router, http.MethodGet, "/api/ledger/transactions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	txs := decode[[]ledger.Transaction](t, rec)
	require.Len(t, txs, len(ledger.SeedTransactions())+1)
	assert.Equal(t, "Meralco Payment", txs[0].Title)
	assert.Equal(t, "- 1,234.56", txs[0].Amount)

	rec = doJSON(t, router, http.MethodGet, "/api/ledger/points", nil)
	pts := decode[api.PointsResponse](t, rec)
	assert.Equal(t, ledger.DefaultPoints+25, pts.TotalPoints)
}

func TestBillPayment_NonPositiveAmount_400(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/ledger/bill-payments",
		map[string]any{"billerName": "Meralco", "amount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransfer_RoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/ledger/transfers",
		map[string]any{"bankName": "BDO", "amount": 1000, "fee": 15})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/ledger/balance", nil)
	bal := decode[api.BalanceResponse](t, rec)
	assert.Equal(t, "124435", bal.Balance) // 125450 - 1015
}

func TestRedeem_RoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/ledger/redemptions",
		map[string]any{"brandName": "Grab", "cost": 500})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/ledger/points", nil)
	pts := decode[api.PointsResponse](t, rec)
	assert.Equal(t, int64(750), pts.TotalPoints)
}

// =============================================================================
// FAVORITES
// =============================================================================

func TestSaveFavoriteContact_DuplicateReportsSavedFalse(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]any{"network": "Globe", "mobileNumber": "09171234567"}

	rec := doJSON(t, router, http.MethodPost, "/api/favorites/contacts", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[api.SavedResponse](t, rec).Saved)

	rec = doJSON(t, router, http.MethodPost, "/api/favorites/contacts", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[api.SavedResponse](t, rec).Saved)

	rec = doJSON(t, router, http.MethodGet, "/api/favorites/contacts", nil)
	contacts := decode[[]ledger.FavoriteContact](t, rec)
	assert.Len(t, contacts, 1)
}

// =============================================================================
// RECEIPTS
// =============================================================================

func TestDownloadReceipt(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/receipts", api.ReceiptRequest{
		Title: "Buy Load",
		RefNo: "CBC-12345678",
		Date:  "Feb 20, 2026",
		Time:  "02:15 PM",
		Rows:  []api.ReceiptRowDTO{{Label: "Network", Value: "Globe"}},
		Total: api.ReceiptRowDTO{Label: "Total", Value: "PHP 50.00"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "CBC-12345678-receipt.txt")

	body := rec.Body.String()
	assert.Contains(t, body, strings.Repeat("=", 44))
	assert.Contains(t, body, "CHINABANK")
	assert.Contains(t, body, "Network")
}

func TestDownloadReceipt_MintsMissingRefNo(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/receipts", api.ReceiptRequest{
		Title: "Bills Payment",
		Total: api.ReceiptRowDTO{Label: "Total", Value: "PHP 100.00"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "CBC-")
}
