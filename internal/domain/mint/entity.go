// internal/domain/mint/entity.go
package mint

import (
	"errors"
	"strings"
	"time"

	"galamint/internal/domain/common"
	"galamint/internal/domain/tokenclass"
)

// ------------------------------------------------------
// Entity: MintTransaction (mint_transactions テーブル 1 レコード)
// ------------------------------------------------------
//
// Append-only log of mint submissions. Rows are never updated or
// deleted after creation.
type MintTransaction struct {
	ID            int           `json:"id"`
	WalletAddress string        `json:"walletAddress"`
	Collection    string        `json:"collection"`
	Type          string        `json:"type"`
	Category      string        `json:"category"`
	AdditionalKey *string       `json:"additionalKey,omitempty"`
	Owner         string        `json:"owner"`
	Quantity      string        `json:"quantity"`
	TokenInstance string        `json:"tokenInstance"`
	TransactionID string        `json:"transactionId"`
	Status        common.Status `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// ------------------------------------------------------
// Errors
// ------------------------------------------------------

var (
	ErrInvalidWallet   = errors.New("mint: invalid walletAddress")
	ErrInvalidOwner    = errors.New("mint: invalid owner")
	ErrInvalidQuantity = errors.New("mint: invalid quantity")
	ErrInvalidStatus   = errors.New("mint: invalid status")
	ErrNotFound        = errors.New("mint: not found")
)

// ------------------------------------------------------
// Constructors
// ------------------------------------------------------

// New builds a MintTransaction for persistence. TokenInstance is fixed
// to "0" for fungible-style NFT mints; ID and CreatedAt come from the
// store.
func New(key tokenclass.Key, walletAddress, owner, quantity, transactionID string, status common.Status) (MintTransaction, error) {
	var ak *string
	if key.AdditionalKey != "" {
		v := key.AdditionalKey
		ak = &v
	}
	m := MintTransaction{
		WalletAddress: strings.TrimSpace(walletAddress),
		Collection:    key.Collection,
		Type:          key.Type,
		Category:      key.Category,
		AdditionalKey: ak,
		Owner:         strings.TrimSpace(owner),
		Quantity:      strings.TrimSpace(quantity),
		TokenInstance: "0",
		TransactionID: strings.TrimSpace(transactionID),
		Status:        status,
	}
	if err := m.validate(); err != nil {
		return MintTransaction{}, err
	}
	return m, nil
}

func (m MintTransaction) validate() error {
	if m.WalletAddress == "" {
		return ErrInvalidWallet
	}
	if m.Owner == "" {
		return ErrInvalidOwner
	}
	if m.Quantity == "" {
		return ErrInvalidQuantity
	}
	if !m.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
