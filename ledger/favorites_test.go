package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jachemlyn/chinabank-online/ledger"
)

// =============================================================================
// EMPTY AND CORRUPT LISTS
// =============================================================================

func TestFavorites_EmptyStore_ReturnsEmptyLists(t *testing.T) {
	eng, store := newTestEngine(t)

	billers, err := eng.FavoriteBillers()
	require.NoError(t, err)
	assert.Empty(t, billers)

	recipients, err := eng.FavoriteRecipients()
	require.NoError(t, err)
	assert.Empty(t, recipients)

	contacts, err := eng.FavoriteContacts()
	require.NoError(t, err)
	assert.Empty(t, contacts)

	assert.Equal(t, 0, store.Len(), "reads must not write")
}

func TestFavorites_CorruptValue_BehavesAsEmpty(t *testing.T) {
	eng, store := newTestEngine(t)
	require.NoError(t, store.Set("mock_fav_contacts", "]["))

	contacts, err := eng.FavoriteContacts()
	require.NoError(t, err)
	assert.Empty(t, contacts)

	// And saving into the corrupt slot works as if it were empty.
	saved, err := eng.SaveFavoriteContact(ledger.ContactInput{
		Network: "Globe", MobileNumber: "09171234567",
	})
	require.NoError(t, err)
	assert.True(t, saved)
}

// =============================================================================
// DE-DUPLICATION
// =============================================================================

func TestSaveFavoriteContact_DuplicateNumber_NotReAdded(t *testing.T) {
	// GIVEN: A saved Globe contact
	// WHEN: Saving the same mobile number again - even on a different
	//       network, since contacts de-dup on number alone
	// THEN: First save true, repeats false, list grows by exactly 1

	eng, _ := newTestEngine(t)

	saved, err := eng.SaveFavoriteContact(ledger.ContactInput{
		Network: "Globe", MobileNumber: "09171234567",
	})
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = eng.SaveFavoriteContact(ledger.ContactInput{
		Network: "Globe", MobileNumber: "09171234567",
	})
	require.NoError(t, err)
	assert.False(t, saved)

	saved, err = eng.SaveFavoriteContact(ledger.ContactInput{
		Network: "Smart", MobileNumber: "09171234567",
	})
	require.NoError(t, err)
	assert.False(t, saved, "number matches, network is not part of the key")

	contacts, err := eng.FavoriteContacts()
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, "Globe", contacts[0].Network)
}

func TestSaveFavoriteBiller_DuplicateTuple_NotReAdded(t *testing.T) {
	eng, _ := newTestEngine(t)

	in := ledger.BillerInput{
		Name: "Meralco", Category: "Utilities", AccountNumber: "1111222233",
	}

	saved, err := eng.SaveFavoriteBiller(in)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = eng.SaveFavoriteBiller(in)
	require.NoError(t, err)
	assert.False(t, saved)

	// Same biller, different account: a distinct favorite.
	in.AccountNumber = "9999888877"
	saved, err = eng.SaveFavoriteBiller(in)
	require.NoError(t, err)
	assert.True(t, saved)

	billers, err := eng.FavoriteBillers()
	require.NoError(t, err)
	assert.Len(t, billers, 2)
}

func TestSaveFavoriteRecipient_DedupOnBankAndAccount(t *testing.T) {
	eng, _ := newTestEngine(t)

	saved, err := eng.SaveFavoriteRecipient(ledger.RecipientInput{
		BankValue: "bdo", BankLabel: "BDO", AccountNumber: "0012345678", Nickname: "Mom",
	})
	require.NoError(t, err)
	assert.True(t, saved)

	// Different nickname and label, same (bank, account): duplicate.
	saved, err = eng.SaveFavoriteRecipient(ledger.RecipientInput{
		BankValue: "bdo", BankLabel: "Banco de Oro", AccountNumber: "0012345678", Nickname: "Mother",
	})
	require.NoError(t, err)
	assert.False(t, saved)

	// Same account at another bank: distinct.
	saved, err = eng.SaveFavoriteRecipient(ledger.RecipientInput{
		BankValue: "bpi", BankLabel: "BPI", AccountNumber: "0012345678", Nickname: "Mom",
	})
	require.NoError(t, err)
	assert.True(t, saved)
}

// =============================================================================
// ORDERING AND METADATA
// =============================================================================

func TestSaveFavorites_PrependsMostRecentFirst(t *testing.T) {
	eng, _ := newTestEngine(t)

	for _, name := range []string{"Meralco", "Maynilad", "Converge"} {
		saved, err := eng.SaveFavoriteBiller(ledger.BillerInput{
			Name: name, Category: "Utilities", AccountNumber: "123",
		})
		require.NoError(t, err)
		require.True(t, saved)
	}

	billers, err := eng.FavoriteBillers()
	require.NoError(t, err)
	require.Len(t, billers, 3)
	assert.Equal(t, "Converge", billers[0].Name)
	assert.Equal(t, "Meralco", billers[2].Name)
}

func TestSaveFavorite_StampsIDAndSavedAt(t *testing.T) {
	eng, _ := newTestEngine(t)

	saved, err := eng.SaveFavoriteContact(ledger.ContactInput{
		Network: "Globe", MobileNumber: "09171234567",
	})
	require.NoError(t, err)
	require.True(t, saved)

	contacts, err := eng.FavoriteContacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	assert.Regexp(t, `^fc-\d+$`, contacts[0].ID)
	assert.Equal(t, "2026-02-20T14:15:00Z", contacts[0].SavedAt)
}
