/*
Package ledger implements the client ledger simulation behind the demo
consumer-banking app: transaction history, reward points, account balance,
and saved favorites, all persisted through a plain key-value store.

PURPOSE:
  Every user-facing money action (pay a bill, buy load, transfer funds,
  redeem a voucher) is one Engine method that performs a bundled
  read-modify-write sequence over the store and returns before the UI
  re-reads state through the accessors. The store offers no transactions,
  so consistency rests on each action being a single synchronous sequence.

KEY CONCEPTS IN THIS FILE (types.go):
  - Transaction:   One recorded money movement, display-ready
  - RewardEntry:   One signed change to the reward-points balance
  - Favorite*:     Saved shortcuts for billers, recipients, load contacts

DESIGN PRINCIPLES:
  1. Prepend-only lists: newest entry is always index 0, nothing is
     ever re-sorted, mutated, or evicted
  2. Points conservation: the sum of all RewardEntry.Points equals the
     stored points total after every action
  3. Permissive balances: no overdraft or points floor is enforced;
     negative balances are accepted states, not errors
  4. Display-first fields: dates and amounts are stored as formatted
     strings, exactly as the client renders them

SEE ALSO:
  - seed.go:      Default state for a fresh (or corrupt) profile
  - engine.go:    Accessors and action operations
  - favorites.go: Favorite save operations and de-duplication
  - receipt.go:   Fixed-width receipt rendering
*/
package ledger

// =============================================================================
// LEDGER ENTRIES
// =============================================================================

// Transaction is one recorded money movement. Immutable after creation.
// Icon, IconBg, IconColor, and AmountColor are presentation tags the
// client styles with; the engine carries them as opaque strings.
type Transaction struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	IconBg      string `json:"iconBg"`
	IconColor   string `json:"iconColor"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	AmountColor string `json:"amountColor"`
}

// RewardEntry is one change to the reward-points balance.
// Points is signed: positive = earned, negative = redeemed.
type RewardEntry struct {
	ID        string `json:"id"`
	Icon      string `json:"icon"`
	IconBg    string `json:"iconBg"`
	IconColor string `json:"iconColor"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Points    int64  `json:"points"`
}

// =============================================================================
// FAVORITES
// =============================================================================

// FavoriteBiller is a saved bill-payment shortcut.
// Duplicate key: (Name, AccountNumber).
type FavoriteBiller struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	AccountNumber string `json:"accountNumber"`
	SavedAt       string `json:"savedAt"`
}

// FavoriteRecipient is a saved fund-transfer shortcut.
// Duplicate key: (BankValue, AccountNumber).
type FavoriteRecipient struct {
	ID            string `json:"id"`
	BankValue     string `json:"bankValue"`
	BankLabel     string `json:"bankLabel"`
	AccountNumber string `json:"accountNumber"`
	Nickname      string `json:"nickname"`
	SavedAt       string `json:"savedAt"`
}

// FavoriteContact is a saved buy-load shortcut.
// Duplicate key: MobileNumber alone.
type FavoriteContact struct {
	ID           string `json:"id"`
	Network      string `json:"network"`
	MobileNumber string `json:"mobileNumber"`
	SavedAt      string `json:"savedAt"`
}

// =============================================================================
// STORE KEYS - One string value each, JSON-encoded except the two scalars
// =============================================================================

// Key names are kept byte-for-byte compatible with the browser client's
// localStorage layout so a profile can be carried across either side.
const (
	keyTransactions  = "mock_transactions"
	keyRewards       = "mock_rewards"
	keyTotalPoints   = "mock_total_points"
	keyBalance       = "mock_balance"
	keyFavBillers    = "mock_fav_billers"
	keyFavRecipients = "mock_fav_recipients"
	keyFavContacts   = "mock_fav_contacts"
)
