/*
favorites.go - Saved shortcuts for billers, recipients, and load contacts

PURPOSE:
  Three independent favorite kinds, each stored under its own key as a
  JSON list, most-recent-first. Saving is idempotent: an entry whose
  identifying tuple already exists is not re-added, and the operation
  reports false instead of failing.

DUPLICATE KEYS:
  Biller:    (Name, AccountNumber)
  Recipient: (BankValue, AccountNumber)
  Contact:   MobileNumber alone

  The match is exact string equality on the tuple. Nicknames, labels,
  categories, and networks are carried but never compared.

LIFECYCLE:
  Favorites are only ever prepended. No operation mutates or removes an
  existing favorite.
*/
package ledger

import (
	"encoding/json"
	"fmt"
	"time"
)

// =============================================================================
// INPUTS - What the caller provides; id and SavedAt are minted here
// =============================================================================

type BillerInput struct {
	Name          string
	Category      string
	AccountNumber string
}

type RecipientInput struct {
	BankValue     string
	BankLabel     string
	AccountNumber string
	Nickname      string
}

type ContactInput struct {
	Network      string
	MobileNumber string
}

// =============================================================================
// ACCESSORS - Empty list when absent or unparsable
// =============================================================================

// FavoriteBillers returns saved billers, most recent first.
func (e *Engine) FavoriteBillers() ([]FavoriteBiller, error) {
	raw, ok, err := e.store.Get(keyFavBillers)
	if err != nil {
		return nil, fmt.Errorf("load favorite billers: %w", err)
	}
	if !ok {
		return []FavoriteBiller{}, nil
	}
	var favs []FavoriteBiller
	if err := json.Unmarshal([]byte(raw), &favs); err != nil {
		return []FavoriteBiller{}, nil
	}
	return favs, nil
}

// FavoriteRecipients returns saved transfer recipients, most recent first.
func (e *Engine) FavoriteRecipients() ([]FavoriteRecipient, error) {
	raw, ok, err := e.store.Get(keyFavRecipients)
	if err != nil {
		return nil, fmt.Errorf("load favorite recipients: %w", err)
	}
	if !ok {
		return []FavoriteRecipient{}, nil
	}
	var favs []FavoriteRecipient
	if err := json.Unmarshal([]byte(raw), &favs); err != nil {
		return []FavoriteRecipient{}, nil
	}
	return favs, nil
}

// FavoriteContacts returns saved load contacts, most recent first.
func (e *Engine) FavoriteContacts() ([]FavoriteContact, error) {
	raw, ok, err := e.store.Get(keyFavContacts)
	if err != nil {
		return nil, fmt.Errorf("load favorite contacts: %w", err)
	}
	if !ok {
		return []FavoriteContact{}, nil
	}
	var favs []FavoriteContact
	if err := json.Unmarshal([]byte(raw), &favs); err != nil {
		return []FavoriteContact{}, nil
	}
	return favs, nil
}

// =============================================================================
// SAVE OPERATIONS - Prepend unless the tuple already exists
// =============================================================================

// SaveFavoriteBiller saves a biller shortcut. Returns false (and writes
// nothing) when a favorite with the same name and account number exists.
func (e *Engine) SaveFavoriteBiller(in BillerInput) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	favs, err := e.FavoriteBillers()
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f.Name == in.Name && f.AccountNumber == in.AccountNumber {
			return false, nil
		}
	}

	now := e.now()
	favs = append([]FavoriteBiller{{
		ID:            fmt.Sprintf("fb-%d", e.stampMillis(now)),
		Name:          in.Name,
		Category:      in.Category,
		AccountNumber: in.AccountNumber,
		SavedAt:       now.UTC().Format(time.RFC3339),
	}}, favs...)

	data, err := json.Marshal(favs)
	if err != nil {
		return false, fmt.Errorf("encode favorite billers: %w", err)
	}
	if err := e.store.Set(keyFavBillers, string(data)); err != nil {
		return false, err
	}
	return true, nil
}

// SaveFavoriteRecipient saves a transfer-recipient shortcut. Returns
// false when a favorite with the same bank and account number exists.
func (e *Engine) SaveFavoriteRecipient(in RecipientInput) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	favs, err := e.FavoriteRecipients()
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f.BankValue == in.BankValue && f.AccountNumber == in.AccountNumber {
			return false, nil
		}
	}

	now := e.now()
	favs = append([]FavoriteRecipient{{
		ID:            fmt.Sprintf("fr-%d", e.stampMillis(now)),
		BankValue:     in.BankValue,
		BankLabel:     in.BankLabel,
		AccountNumber: in.AccountNumber,
		Nickname:      in.Nickname,
		SavedAt:       now.UTC().Format(time.RFC3339),
	}}, favs...)

	data, err := json.Marshal(favs)
	if err != nil {
		return false, fmt.Errorf("encode favorite recipients: %w", err)
	}
	if err := e.store.Set(keyFavRecipients, string(data)); err != nil {
		return false, err
	}
	return true, nil
}

// SaveFavoriteContact saves a load-contact shortcut. Returns false when
// a favorite with the same mobile number exists, regardless of network.
func (e *Engine) SaveFavoriteContact(in ContactInput) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	favs, err := e.FavoriteContacts()
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f.MobileNumber == in.MobileNumber {
			return false, nil
		}
	}

	now := e.now()
	favs = append([]FavoriteContact{{
		ID:           fmt.Sprintf("fc-%d", e.stampMillis(now)),
		Network:      in.Network,
		MobileNumber: in.MobileNumber,
		SavedAt:      now.UTC().Format(time.RFC3339),
	}}, favs...)

	data, err := json.Marshal(favs)
	if err != nil {
		return false, fmt.Errorf("encode favorite contacts: %w", err)
	}
	if err := e.store.Set(keyFavContacts, string(data)); err != nil {
		return false, err
	}
	return true, nil
}
