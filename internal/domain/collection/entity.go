// internal/domain/collection/entity.go
package collection

import (
	"errors"
	"strings"
	"time"

	"galamint/internal/domain/common"
)

// ------------------------------------------------------
// Entity: Collection (collections テーブル 1 レコード)
// ------------------------------------------------------
//
// A collection is a claimed NFT collection name on GalaChain.
// collection_name is globally unique; wallet_address records who claimed it.
// The remaining metadata fields are filled in later when token classes are
// created under the collection, so most of them are nullable.
type Collection struct {
	ID              int           `json:"id"`
	CollectionName  string        `json:"collectionName"`
	WalletAddress   string        `json:"walletAddress"`
	Description     *string       `json:"description,omitempty"`
	Image           *string       `json:"image,omitempty"`
	Category        *string       `json:"category,omitempty"`
	Symbol          *string       `json:"symbol,omitempty"`
	ContractAddress *string       `json:"contractAddress,omitempty"`
	Name            *string       `json:"name,omitempty"`
	Type            *string       `json:"type,omitempty"`
	Rarity          *string       `json:"rarity,omitempty"`
	MaxSupply       *string       `json:"maxSupply,omitempty"`
	MaxCapacity     *string       `json:"maxCapacity,omitempty"`
	MetadataAddress *string       `json:"metadataAddress,omitempty"`
	TransactionID   string        `json:"transactionId"`
	Status          common.Status `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// ------------------------------------------------------
// Errors
// ------------------------------------------------------

var (
	ErrInvalidCollectionName = errors.New("collection: invalid collectionName")
	ErrInvalidWalletAddress  = errors.New("collection: invalid walletAddress")
	ErrInvalidStatus         = errors.New("collection: invalid status")
	ErrAlreadyClaimed        = errors.New("collection: already claimed")
	ErrNotFound              = errors.New("collection: not found")
)

// ------------------------------------------------------
// Constructors
// ------------------------------------------------------

// New builds a Collection record for persistence after a claim was
// submitted to the chain. ID and timestamps are assigned by the store.
func New(collectionName, walletAddress, transactionID string, status common.Status) (Collection, error) {
	c := Collection{
		CollectionName: strings.TrimSpace(collectionName),
		WalletAddress:  strings.TrimSpace(walletAddress),
		TransactionID:  strings.TrimSpace(transactionID),
		Status:         status,
	}
	if err := c.validate(); err != nil {
		return Collection{}, err
	}
	return c, nil
}

// Validate exposes the consistency check.
func (c Collection) Validate() error { return c.validate() }

func (c Collection) validate() error {
	if c.CollectionName == "" {
		return ErrInvalidCollectionName
	}
	if c.WalletAddress == "" {
		return ErrInvalidWalletAddress
	}
	if !c.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
