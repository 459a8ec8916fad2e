package ledger

import "github.com/shopspring/decimal"

// =============================================================================
// SEED DEFAULTS - The state of a fresh profile
// =============================================================================
//
// Accessors fall back to these values when a key is absent OR its stored
// value fails to parse. The fallback is read-only: reading never writes
// the seed back, so an empty store stays empty until the first action.
// A corrupt store therefore behaves exactly like a freshly-seeded one.

// DefaultPoints is the reward-points balance of a fresh profile.
const DefaultPoints int64 = 1250

// DefaultBalance returns the account balance of a fresh profile.
func DefaultBalance() decimal.Decimal {
	return decimal.NewFromFloat(125450.00)
}

// SeedTransactions returns the transaction history of a fresh profile.
// Each call returns a fresh slice; callers may prepend to it freely.
func SeedTransactions() []Transaction {
	return []Transaction{
		{
			ID:          "t1",
			Icon:        "shopping_bag",
			IconBg:      "bg-primary/10",
			IconColor:   "text-primary",
			Title:       "SM Supermarket",
			Date:        "Feb 18, 2026 • 2:15 PM",
			Amount:      "- 1,240.50",
			AmountColor: "text-slate-900 dark:text-slate-100",
		},
		{
			ID:          "t2",
			Icon:        "download",
			IconBg:      "bg-green-100 dark:bg-green-900/30",
			IconColor:   "text-green-600",
			Title:       "Payroll Deposit",
			Date:        "Feb 15, 2026 • 9:00 AM",
			Amount:      "+ 45,000.00",
			AmountColor: "text-green-600",
		},
		{
			ID:          "t3",
			Icon:        "electric_bolt",
			IconBg:      "bg-primary/10",
			IconColor:   "text-primary",
			Title:       "Meralco Payment",
			Date:        "Feb 12, 2026 • 4:30 PM",
			Amount:      "- 3,500.00",
			AmountColor: "text-slate-900 dark:text-slate-100",
		},
	}
}

// SeedRewards returns the reward history of a fresh profile.
// The seed entries do not sum to DefaultPoints; the two are independent
// constants, and points conservation holds only for entries created by
// actions on top of them.
func SeedRewards() []RewardEntry {
	return []RewardEntry{
		{
			ID:        "h1",
			Icon:      "add_circle",
			IconBg:    "bg-green-100 dark:bg-green-900/30",
			IconColor: "text-green-600 dark:text-green-400",
			Title:     "Credit Card Spend",
			Date:      "Feb 18, 2026",
			Points:    50,
		},
		{
			ID:        "h2",
			Icon:      "shopping_bag",
			IconBg:    "bg-slate-100 dark:bg-slate-700/50",
			IconColor: "text-slate-600 dark:text-slate-400",
			Title:     "Starbucks Voucher",
			Date:      "Feb 14, 2026",
			Points:    -500,
		},
		{
			ID:        "h3",
			Icon:      "add_circle",
			IconBg:    "bg-green-100 dark:bg-green-900/30",
			IconColor: "text-green-600 dark:text-green-400",
			Title:     "Grocery Reward",
			Date:      "Feb 10, 2026",
			Points:    120,
		},
		{
			ID:        "h4",
			Icon:      "stars",
			IconBg:    "bg-green-100 dark:bg-green-900/30",
			IconColor: "text-green-600 dark:text-green-400",
			Title:     "Tier Bonus",
			Date:      "Feb 01, 2026",
			Points:    200,
		},
		{
			ID:        "h5",
			Icon:      "shopping_bag",
			IconBg:    "bg-slate-100 dark:bg-slate-700/50",
			IconColor: "text-slate-600 dark:text-slate-400",
			Title:     "Grab Voucher",
			Date:      "Jan 25, 2026",
			Points:    -500,
		},
		{
			ID:        "h6",
			Icon:      "add_circle",
			IconBg:    "bg-green-100 dark:bg-green-900/30",
			IconColor: "text-green-600 dark:text-green-400",
			Title:     "Bill Payment Reward",
			Date:      "Jan 20, 2026",
			Points:    80,
		},
	}
}
