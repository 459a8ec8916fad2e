/*
engine.go - Ledger accessors and action operations

PURPOSE:
  The Engine is the only component that reads or writes the ledger keys.
  Accessors parse one key each and never write; action operations perform
  a bundled read-modify-write sequence (new transaction, new reward entry,
  points total, balance) and return only after every write has landed.

ATOMICITY:
  The store has no transactions. Each action is a single synchronous
  sequence guarded by the Engine's mutex, so actions from one Engine
  instance never interleave. Two Engine instances sharing one store CAN
  interleave (the two-browser-tabs case); that limitation is inherent to
  the substrate and is documented rather than patched.

ERROR HANDLING:
  - Store unavailable (Get/Set returns an error): the operation fails
    and the error propagates. No retry, no partial-write recovery.
  - Stored value unparsable: the accessor silently substitutes the seed
    default from seed.go. Corruption is never surfaced as an error.
  - Negative balances and points are accepted states. No floor or
    overdraft gate exists here; the UI is responsible for any gating.

ID GENERATION:
  Ids are "<prefix>-<epochMillis>". The millisecond stamp is bumped
  monotonically when two actions land inside the same millisecond, which
  keeps ids collision-free within one Engine instance.

SEE ALSO:
  - types.go:     Entry types and store keys
  - seed.go:      Fresh-profile defaults
  - favorites.go: Favorite save operations
*/
package ledger

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jachemlyn/chinabank-online/kv"
)

// rewardRate is the loyalty accrual rate for bill payments and load
// purchases: 2% of the paid amount.
var rewardRate = decimal.NewFromFloat(0.02)

// =============================================================================
// ENGINE
// =============================================================================

// Engine owns all ledger bookkeeping over an injected key-value store.
type Engine struct {
	store kv.Store
	now   func() time.Time

	mu     sync.Mutex // serializes action sequences and id stamping
	lastMS int64
}

type Option func(*Engine)

// WithClock overrides the wall-clock source used for dates and ids.
// Tests use this to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(store kv.Store, opts ...Option) *Engine {
	e := &Engine{store: store, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// stampMillis returns the epoch-millisecond stamp for one action's ids,
// bumped past the previous stamp if the clock has not advanced.
// Callers must hold mu.
func (e *Engine) stampMillis(now time.Time) int64 {
	ms := now.UnixMilli()
	if ms <= e.lastMS {
		ms = e.lastMS + 1
	}
	e.lastMS = ms
	return ms
}

// rewardPointsFor computes round(amount * 2%) as whole points.
// Rounding is half away from zero (decimal.Round), which matches the
// client's Math.round for the positive amounts this is called with.
func rewardPointsFor(amount decimal.Decimal) int64 {
	return amount.Mul(rewardRate).Round(0).IntPart()
}

// =============================================================================
// ACCESSORS - One store key each; reads never write
// =============================================================================

// Transactions returns the transaction history, newest first.
// A missing or unparsable stored value yields SeedTransactions().
func (e *Engine) Transactions() ([]Transaction, error) {
	raw, ok, err := e.store.Get(keyTransactions)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	if !ok {
		return SeedTransactions(), nil
	}
	var txs []Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		// Corrupt value: behave as a fresh profile.
		return SeedTransactions(), nil
	}
	return txs, nil
}

// Rewards returns the reward-points history, newest first.
// A missing or unparsable stored value yields SeedRewards().
func (e *Engine) Rewards() ([]RewardEntry, error) {
	raw, ok, err := e.store.Get(keyRewards)
	if err != nil {
		return nil, fmt.Errorf("load rewards: %w", err)
	}
	if !ok {
		return SeedRewards(), nil
	}
	var entries []RewardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return SeedRewards(), nil
	}
	return entries, nil
}

// TotalPoints returns the current reward-points balance. May be negative.
func (e *Engine) TotalPoints() (int64, error) {
	raw, ok, err := e.store.Get(keyTotalPoints)
	if err != nil {
		return 0, fmt.Errorf("load total points: %w", err)
	}
	if !ok {
		return DefaultPoints, nil
	}
	pts, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return DefaultPoints, nil
	}
	return pts, nil
}

// Balance returns the current account balance. May be negative.
func (e *Engine) Balance() (decimal.Decimal, error) {
	raw, ok, err := e.store.Get(keyBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load balance: %w", err)
	}
	if !ok {
		return DefaultBalance(), nil
	}
	bal, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return DefaultBalance(), nil
	}
	return bal, nil
}

// =============================================================================
// PERSISTENCE - JSON for lists, bare decimal strings for the scalars
// =============================================================================

func (e *Engine) saveTransactions(txs []Transaction) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	return e.store.Set(keyTransactions, string(data))
}

func (e *Engine) saveRewards(entries []RewardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode rewards: %w", err)
	}
	return e.store.Set(keyRewards, string(data))
}

func (e *Engine) saveTotalPoints(pts int64) error {
	return e.store.Set(keyTotalPoints, strconv.FormatInt(pts, 10))
}

func (e *Engine) saveBalance(bal decimal.Decimal) error {
	return e.store.Set(keyBalance, bal.String())
}

// =============================================================================
// ACTION OPERATIONS - One bundled read-modify-write per user action
// =============================================================================

// RecordBillPayment records a bill payment: one new transaction for the
// full amount, one reward entry for 2% of it, points total up, balance
// down. Returns the points earned.
//
// Amount validation is the caller's job. A zero or negative amount is
// accepted and produces a zero/negative reward and a balance increase.
func (e *Engine) RecordBillPayment(billerName string, amount decimal.Decimal) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	ms := e.stampMillis(now)
	points := rewardPointsFor(amount)

	txs, err := e.Transactions()
	if err != nil {
		return 0, err
	}
	txs = append([]Transaction{{
		ID:          fmt.Sprintf("t-%d", ms),
		Icon:        "payments",
		IconBg:      "bg-primary/10",
		IconColor:   "text-primary",
		Title:       billerName + " Payment",
		Date:        formatDateTime(now),
		Amount:      "- " + formatMoney(amount),
		AmountColor: "text-slate-900 dark:text-slate-100",
	}}, txs...)
	if err := e.saveTransactions(txs); err != nil {
		return 0, err
	}

	rewards, err := e.Rewards()
	if err != nil {
		return 0, err
	}
	rewards = append([]RewardEntry{{
		ID:        fmt.Sprintf("r-%d", ms),
		Icon:      "add_circle",
		IconBg:    "bg-green-100 dark:bg-green-900/30",
		IconColor: "text-green-600 dark:text-green-400",
		Title:     fmt.Sprintf("Bill Payment Reward (%s)", billerName),
		Date:      formatDate(now),
		Points:    points,
	}}, rewards...)
	if err := e.saveRewards(rewards); err != nil {
		return 0, err
	}

	total, err := e.TotalPoints()
	if err != nil {
		return 0, err
	}
	if err := e.saveTotalPoints(total + points); err != nil {
		return 0, err
	}

	bal, err := e.Balance()
	if err != nil {
		return 0, err
	}
	if err := e.saveBalance(bal.Sub(amount)); err != nil {
		return 0, err
	}

	return points, nil
}

// RecordBuyLoad records a prepaid-load purchase. Same bookkeeping as a
// bill payment (2% reward, balance down), different presentation.
// Returns the points earned.
func (e *Engine) RecordBuyLoad(networkName string, amount decimal.Decimal) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	ms := e.stampMillis(now)
	points := rewardPointsFor(amount)

	txs, err := e.Transactions()
	if err != nil {
		return 0, err
	}
	txs = append([]Transaction{{
		ID:          fmt.Sprintf("t-%d", ms),
		Icon:        "smartphone",
		IconBg:      "bg-blue-100 dark:bg-blue-900/30",
		IconColor:   "text-blue-600",
		Title:       networkName + " Load",
		Date:        formatDateTime(now),
		Amount:      "- " + formatMoney(amount),
		AmountColor: "text-slate-900 dark:text-slate-100",
	}}, txs...)
	if err := e.saveTransactions(txs); err != nil {
		return 0, err
	}

	rewards, err := e.Rewards()
	if err != nil {
		return 0, err
	}
	rewards = append([]RewardEntry{{
		ID:        fmt.Sprintf("r-%d", ms),
		Icon:      "add_circle",
		IconBg:    "bg-green-100 dark:bg-green-900/30",
		IconColor: "text-green-600 dark:text-green-400",
		Title:     fmt.Sprintf("Buy Load Reward (%s)", networkName),
		Date:      formatDate(now),
		Points:    points,
	}}, rewards...)
	if err := e.saveRewards(rewards); err != nil {
		return 0, err
	}

	total, err := e.TotalPoints()
	if err != nil {
		return 0, err
	}
	if err := e.saveTotalPoints(total + points); err != nil {
		return 0, err
	}

	bal, err := e.Balance()
	if err != nil {
		return 0, err
	}
	if err := e.saveBalance(bal.Sub(amount)); err != nil {
		return 0, err
	}

	return points, nil
}

// RecordTransfer records a fund transfer of amount plus a flat fee.
// Transfers earn no reward points; only the transaction list and the
// balance change.
func (e *Engine) RecordTransfer(bankName string, amount, fee decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	ms := e.stampMillis(now)
	total := amount.Add(fee)

	txs, err := e.Transactions()
	if err != nil {
		return err
	}
	txs = append([]Transaction{{
		ID:          fmt.Sprintf("t-%d", ms),
		Icon:        "sync_alt",
		IconBg:      "bg-primary/10",
		IconColor:   "text-primary",
		Title:       "Transfer to " + bankName,
		Date:        formatDateTime(now),
		Amount:      "- " + formatMoney(total),
		AmountColor: "text-slate-900 dark:text-slate-100",
	}}, txs...)
	if err := e.saveTransactions(txs); err != nil {
		return err
	}

	bal, err := e.Balance()
	if err != nil {
		return err
	}
	return e.saveBalance(bal.Sub(total))
}

// RedeemVoucher spends points on a voucher: one negative reward entry
// and a lower points total. The balance is untouched.
//
// No floor check is made here; redeeming more points than the current
// total drives it negative. Gating cost against the available total is
// the caller's responsibility.
func (e *Engine) RedeemVoucher(brandName string, cost int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	ms := e.stampMillis(now)

	rewards, err := e.Rewards()
	if err != nil {
		return err
	}
	rewards = append([]RewardEntry{{
		ID:        fmt.Sprintf("r-%d", ms),
		Icon:      "shopping_bag",
		IconBg:    "bg-slate-100 dark:bg-slate-700/50",
		IconColor: "text-slate-600 dark:text-slate-400",
		Title:     brandName + " Voucher",
		Date:      formatDate(now),
		Points:    -cost,
	}}, rewards...)
	if err := e.saveRewards(rewards); err != nil {
		return err
	}

	total, err := e.TotalPoints()
	if err != nil {
		return err
	}
	return e.saveTotalPoints(total - cost)
}
