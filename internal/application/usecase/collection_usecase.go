// internal/application/usecase/collection_usecase.go
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"galamint/internal/adapters/out/gala"
	cdom "galamint/internal/domain/collection"
	"galamint/internal/domain/common"
)

// CollectionGateway is the slice of the GalaChain client this usecase needs.
type CollectionGateway interface {
	Submit(ctx context.Context, method string, payload json.RawMessage) (gala.Response, error)
	DryRun(ctx context.Context, method string, dto any) (gala.DryRunResponse, error)
	FetchCollectionAuthorizations(ctx context.Context, bookmark string, limit int) (gala.AuthorizationPage, error)
}

// CollectionUsecase claims collection names on chain and mirrors the
// chain's authorization grants into the local record store.
type CollectionUsecase struct {
	Collections cdom.Repository
	Gateway     CollectionGateway
}

func NewCollectionUsecase(collections cdom.Repository, gateway CollectionGateway) *CollectionUsecase {
	return &CollectionUsecase{Collections: collections, Gateway: gateway}
}

// ClaimInput carries one claim request. SignedPayload is nil on the
// first (preparation) phase and the signer's verbatim bytes on the
// second (submission) phase.
type ClaimInput struct {
	CollectionName string
	WalletAddress  string
	SignedPayload  json.RawMessage
}

// ClaimOutcome is the two-phase result: exactly one branch is set.
// Unsigned holds the DTO for the client wallet to sign; Collection and
// TransactionID report a completed submission.
type ClaimOutcome struct {
	Unsigned      *gala.AuthorizationDTO
	Collection    *cdom.Collection
	TransactionID string
}

// Claim runs one phase of the collection claim flow.
func (uc *CollectionUsecase) Claim(ctx context.Context, in ClaimInput) (ClaimOutcome, error) {
	name := strings.TrimSpace(in.CollectionName)
	wallet := strings.TrimSpace(in.WalletAddress)
	if name == "" {
		return ClaimOutcome{}, cdom.ErrInvalidCollectionName
	}
	if wallet == "" {
		return ClaimOutcome{}, cdom.ErrInvalidWalletAddress
	}

	// advisory pre-check; the unique constraint remains the arbiter
	if _, err := uc.Collections.FindByNameAndWallet(ctx, name, wallet); err == nil {
		return ClaimOutcome{}, cdom.ErrAlreadyClaimed
	} else if !errors.Is(err, cdom.ErrNotFound) {
		return ClaimOutcome{}, err
	}

	if len(in.SignedPayload) == 0 {
		now := time.Now()
		dto := gala.AuthorizationDTO{
			AuthorizedUser: wallet,
			Collection:     name,
			DTOExpiresAt:   gala.SigningExpiration(now),
			UniqueKey:      gala.UniqueKey("auth", now),
		}
		return ClaimOutcome{Unsigned: &dto}, nil
	}

	res, err := uc.Gateway.Submit(ctx, gala.MethodGrantAuthorization, in.SignedPayload)
	if err != nil {
		return ClaimOutcome{}, fmt.Errorf("submit claim: %w", err)
	}
	txID := res.TransactionID()
	if txID == "" {
		txID = fmt.Sprintf("tx-%d", time.Now().UnixMilli())
	}

	c, err := cdom.New(name, wallet, txID, common.StatusCompleted)
	if err != nil {
		return ClaimOutcome{}, err
	}
	saved, err := uc.Collections.Create(ctx, c)
	if err != nil {
		return ClaimOutcome{}, err
	}
	return ClaimOutcome{Collection: &saved, TransactionID: txID}, nil
}

// EstimateClaimFee dry-runs the claim DTO and extracts the fee. Fee
// estimation never blocks the caller: any failure degrades to "0".
func (uc *CollectionUsecase) EstimateClaimFee(ctx context.Context, collectionName, walletAddress string) (string, error) {
	name := strings.TrimSpace(collectionName)
	wallet := strings.TrimSpace(walletAddress)
	if name == "" {
		return "", cdom.ErrInvalidCollectionName
	}
	if wallet == "" {
		return "", cdom.ErrInvalidWalletAddress
	}

	now := time.Now()
	dto := gala.AuthorizationDTO{
		AuthorizedUser: wallet,
		Collection:     name,
		DTOExpiresAt:   gala.SigningExpiration(now),
		UniqueKey:      gala.UniqueKey("auth", now),
	}
	res, err := uc.Gateway.DryRun(ctx, gala.MethodGrantAuthorization, dto)
	if err != nil {
		log.Printf("[gala] claim fee dry-run failed: %v", err)
		return "0", nil
	}
	return gala.ExtractFee(res, gala.MethodGrantAuthorization, wallet), nil
}

// SyncFromChain pulls one page of authorization grants and inserts any
// of the wallet's collections the local store is missing. Errors are
// logged and swallowed so listing always falls back to local data.
func (uc *CollectionUsecase) SyncFromChain(ctx context.Context, walletAddress string) {
	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" {
		return
	}

	page, err := uc.Gateway.FetchCollectionAuthorizations(ctx, "", 100)
	if err != nil {
		log.Printf("[sync] fetch authorizations failed: %v", err)
		return
	}

	for _, item := range page.Items {
		if item.AuthorizedUser != wallet {
			continue
		}
		if _, err := uc.Collections.FindByNameAndWallet(ctx, item.Collection, wallet); err == nil {
			continue
		} else if !errors.Is(err, cdom.ErrNotFound) {
			log.Printf("[sync] lookup %q failed: %v", item.Collection, err)
			continue
		}

		txID := item.TransactionID
		if txID == "" {
			txID = fmt.Sprintf("sync-%d", time.Now().UnixMilli())
		}
		c, err := cdom.New(item.Collection, wallet, txID, common.StatusCompleted)
		if err != nil {
			log.Printf("[sync] skip %q: %v", item.Collection, err)
			continue
		}
		if _, err := uc.Collections.Create(ctx, c); err != nil {
			log.Printf("[sync] insert %q failed: %v", item.Collection, err)
		}
	}
}

// ListByWallet returns the wallet's collections from the record store.
func (uc *CollectionUsecase) ListByWallet(ctx context.Context, walletAddress string) ([]cdom.Collection, error) {
	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" {
		return nil, cdom.ErrInvalidWalletAddress
	}
	return uc.Collections.ListByWallet(ctx, wallet)
}

// GetByName returns one collection regardless of owner.
func (uc *CollectionUsecase) GetByName(ctx context.Context, collectionName string) (cdom.Collection, error) {
	name := strings.TrimSpace(collectionName)
	if name == "" {
		return cdom.Collection{}, cdom.ErrInvalidCollectionName
	}
	return uc.Collections.FindByName(ctx, name)
}
