// internal/domain/tokenclass/entity.go
package tokenclass

import (
	"errors"
	"strings"
	"time"

	"galamint/internal/domain/common"
)

// ------------------------------------------------------
// Entity: TokenClass (token_classes テーブル 1 レコード)
// ------------------------------------------------------
//
// A token class is one mintable token definition inside a collection,
// identified on chain by the composite key
// (collection, type, category, additionalKey). additionalKey defaults
// to "none" when the caller omits it, matching the chain convention.
type TokenClass struct {
	ID            int           `json:"id"`
	Collection    string        `json:"collection"`
	Type          string        `json:"type"`
	Category      string        `json:"category"`
	AdditionalKey string        `json:"additionalKey"`
	WalletAddress string        `json:"walletAddress"`
	TransactionID string        `json:"transactionId"`
	Status        common.Status `json:"status"`
	CurrentSupply string        `json:"currentSupply"`
	Image         *string       `json:"image,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Key is the natural composite key of a token class.
type Key struct {
	Collection    string
	Type          string
	Category      string
	AdditionalKey string
}

// NormalizeKey trims all segments and applies the "none" default for
// an empty additionalKey.
func NormalizeKey(collection, typ, category, additionalKey string) Key {
	ak := strings.TrimSpace(additionalKey)
	if ak == "" {
		ak = "none"
	}
	return Key{
		Collection:    strings.TrimSpace(collection),
		Type:          strings.TrimSpace(typ),
		Category:      strings.TrimSpace(category),
		AdditionalKey: ak,
	}
}

// ------------------------------------------------------
// Errors
// ------------------------------------------------------

var (
	ErrInvalidCollection = errors.New("tokenclass: invalid collection")
	ErrInvalidType       = errors.New("tokenclass: invalid type")
	ErrInvalidCategory   = errors.New("tokenclass: invalid category")
	ErrInvalidWallet     = errors.New("tokenclass: invalid walletAddress")
	ErrInvalidStatus     = errors.New("tokenclass: invalid status")
	ErrExists            = errors.New("tokenclass: already exists")
	ErrNotFound          = errors.New("tokenclass: not found")
	ErrNotOwner          = errors.New("tokenclass: collection owned by another wallet")
)

// ------------------------------------------------------
// Constructors
// ------------------------------------------------------

// New builds a TokenClass record for persistence. CurrentSupply starts
// at "0"; ID and timestamps are assigned by the store.
func New(key Key, walletAddress, transactionID string, status common.Status, image *string) (TokenClass, error) {
	tc := TokenClass{
		Collection:    key.Collection,
		Type:          key.Type,
		Category:      key.Category,
		AdditionalKey: key.AdditionalKey,
		WalletAddress: strings.TrimSpace(walletAddress),
		TransactionID: strings.TrimSpace(transactionID),
		Status:        status,
		CurrentSupply: "0",
		Image:         image,
	}
	if err := tc.validate(); err != nil {
		return TokenClass{}, err
	}
	return tc, nil
}

// Matches reports whether the class has the given natural key.
func (tc TokenClass) Matches(key Key) bool {
	return tc.Collection == key.Collection &&
		tc.Type == key.Type &&
		tc.Category == key.Category &&
		tc.AdditionalKey == key.AdditionalKey
}

// Validate exposes the consistency check.
func (tc TokenClass) Validate() error { return tc.validate() }

func (tc TokenClass) validate() error {
	if tc.Collection == "" {
		return ErrInvalidCollection
	}
	if tc.Type == "" {
		return ErrInvalidType
	}
	if tc.Category == "" {
		return ErrInvalidCategory
	}
	if tc.WalletAddress == "" {
		return ErrInvalidWallet
	}
	if !tc.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
