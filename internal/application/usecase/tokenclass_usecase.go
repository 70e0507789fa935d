// internal/application/usecase/tokenclass_usecase.go
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
	tcdom "galamint/internal/domain/tokenclass"
)

// TokenClassGateway is the slice of the GalaChain client this usecase needs.
type TokenClassGateway interface {
	Submit(ctx context.Context, method string, payload json.RawMessage) (gala.Response, error)
	DryRun(ctx context.Context, method string, dto any) (gala.DryRunResponse, error)
	FetchTokenClassesWithSupply(ctx context.Context, keys []gala.TokenClassKeyDTO) ([]gala.TokenClassSupply, error)
}

// TokenClassUsecase creates token classes under claimed collections and
// keeps their on-chain supply mirrored locally.
type TokenClassUsecase struct {
	Classes     tcdom.Repository
	Collections cdom.Repository
	Gateway     TokenClassGateway
}

func NewTokenClassUsecase(classes tcdom.Repository, collections cdom.Repository, gateway TokenClassGateway) *TokenClassUsecase {
	return &TokenClassUsecase{Classes: classes, Collections: collections, Gateway: gateway}
}

// CreateClassInput carries one token-class creation request. Metadata
// fields feed the unsigned DTO; SignedPayload switches the call to the
// submission phase.
type CreateClassInput struct {
	Collection      string
	Type            string
	Category        string
	AdditionalKey   string
	WalletAddress   string
	Name            string
	Description     string
	Image           string
	Symbol          string
	Rarity          string
	MaxSupply       string
	MaxCapacity     string
	MetadataAddress string
	SignedPayload   json.RawMessage
}

// CreateClassOutcome is the two-phase result: exactly one branch is set.
type CreateClassOutcome struct {
	Unsigned      *gala.CreateTokenClassDTO
	TokenClass    *tcdom.TokenClass
	TransactionID string
}

// Create runs one phase of the token-class creation flow. The owning
// collection must exist and belong to the caller.
func (uc *TokenClassUsecase) Create(ctx context.Context, in CreateClassInput) (CreateClassOutcome, error) {
	key := tcdom.NormalizeKey(in.Collection, in.Type, in.Category, in.AdditionalKey)
	wallet := strings.TrimSpace(in.WalletAddress)
	if wallet == "" {
		return CreateClassOutcome{}, tcdom.ErrInvalidWallet
	}

	owner, err := uc.Collections.FindByName(ctx, key.Collection)
	if err != nil {
		return CreateClassOutcome{}, err
	}
	if owner.WalletAddress != wallet {
		return CreateClassOutcome{}, tcdom.ErrNotOwner
	}

	if _, err := uc.Classes.FindByKey(ctx, key); err == nil {
		return CreateClassOutcome{}, tcdom.ErrExists
	} else if !errors.Is(err, tcdom.ErrNotFound) {
		return CreateClassOutcome{}, err
	}

	if len(in.SignedPayload) == 0 {
		dto := buildCreateClassDTO(in, key, time.Now())
		return CreateClassOutcome{Unsigned: &dto}, nil
	}

	res, err := uc.Gateway.Submit(ctx, gala.MethodCreateCollection, in.SignedPayload)
	if err != nil {
		return CreateClassOutcome{}, fmt.Errorf("submit token class: %w", err)
	}
	txID := res.TransactionID()
	if txID == "" {
		txID = fmt.Sprintf("tx-%d", time.Now().UnixMilli())
	}

	var image *string
	if img := strings.TrimSpace(in.Image); img != "" {
		image = &img
	}
	tc, err := tcdom.New(key, wallet, txID, common.StatusCompleted, image)
	if err != nil {
		return CreateClassOutcome{}, err
	}
	saved, err := uc.Classes.Create(ctx, tc)
	if err != nil {
		return CreateClassOutcome{}, err
	}
	return CreateClassOutcome{TokenClass: &saved, TransactionID: txID}, nil
}

// EstimateCreateFee dry-runs the creation DTO; failures degrade to "0".
func (uc *TokenClassUsecase) EstimateCreateFee(ctx context.Context, in CreateClassInput) (string, error) {
	key := tcdom.NormalizeKey(in.Collection, in.Type, in.Category, in.AdditionalKey)
	wallet := strings.TrimSpace(in.WalletAddress)
	if wallet == "" {
		return "", tcdom.ErrInvalidWallet
	}
	if key.Collection == "" {
		return "", tcdom.ErrInvalidCollection
	}

	dto := buildCreateClassDTO(in, key, time.Now())
	res, err := uc.Gateway.DryRun(ctx, gala.MethodCreateCollection, dto)
	if err != nil {
		log.Printf("[gala] token-class fee dry-run failed: %v", err)
		return "0", nil
	}
	return gala.ExtractFee(res, gala.MethodCreateCollection, wallet), nil
}

// buildCreateClassDTO assembles the unsigned CreateNftCollection body.
// Defaults mirror the chain conventions: name falls back to the
// collection name, the contract address is fixed, supplies pass through
// FormatBigNumber.
func buildCreateClassDTO(in CreateClassInput, key tcdom.Key, now time.Time) gala.CreateTokenClassDTO {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = key.Collection
	}
	return gala.CreateTokenClassDTO{
		Collection:      key.Collection,
		Authorities:     []string{strings.TrimSpace(in.WalletAddress)},
		Category:        key.Category,
		Type:            key.Type,
		AdditionalKey:   key.AdditionalKey,
		Name:            name,
		Description:     strings.TrimSpace(in.Description),
		Image:           strings.TrimSpace(in.Image),
		Symbol:          strings.TrimSpace(in.Symbol),
		Rarity:          strings.TrimSpace(in.Rarity),
		MaxSupply:       FormatBigNumber(in.MaxSupply),
		MaxCapacity:     FormatBigNumber(in.MaxCapacity),
		MetadataAddress: strings.TrimSpace(in.MetadataAddress),
		ContractAddress: gala.DefaultContractAddress,
		DTOExpiresAt:    gala.SigningExpiration(now),
		UniqueKey:       gala.UniqueKey("create", now),
	}
}

// SyncSupply refreshes current_supply and image for each of the
// wallet's classes from chain data. Per-class failures are logged and
// swallowed; the caller always ends up listing local rows.
func (uc *TokenClassUsecase) SyncSupply(ctx context.Context, walletAddress string) {
	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" {
		return
	}
	classes, err := uc.Classes.ListByWallet(ctx, wallet)
	if err != nil {
		log.Printf("[sync] list token classes failed: %v", err)
		return
	}

	for _, tc := range classes {
		key := gala.TokenClassKeyDTO{
			Collection:    tc.Collection,
			Type:          tc.Type,
			Category:      tc.Category,
			AdditionalKey: tc.AdditionalKey,
		}
		supplies, err := uc.Gateway.FetchTokenClassesWithSupply(ctx, []gala.TokenClassKeyDTO{key})
		if err != nil {
			log.Printf("[sync] fetch supply %s/%s failed: %v", tc.Collection, tc.Type, err)
			continue
		}
		for _, s := range supplies {
			got := tcdom.NormalizeKey(s.Collection, s.Type, s.Category, s.AdditionalKey)
			if !tc.Matches(got) {
				continue
			}
			supply := tc.CurrentSupply
			if s.TotalSupply != nil {
				supply = *s.TotalSupply
			}
			var image *string
			if img := strings.TrimSpace(s.Image); img != "" {
				image = &img
			}
			if err := uc.Classes.UpdateSupply(ctx, tc.ID, supply, image); err != nil {
				log.Printf("[sync] update supply %s/%s failed: %v", tc.Collection, tc.Type, err)
			}
		}
	}
}

// ListByWallet returns the wallet's token classes from the record store.
func (uc *TokenClassUsecase) ListByWallet(ctx context.Context, walletAddress string) ([]tcdom.TokenClass, error) {
	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" {
		return nil, tcdom.ErrInvalidWallet
	}
	return uc.Classes.ListByWallet(ctx, wallet)
}

// ListByCollection returns a collection's token classes.
func (uc *TokenClassUsecase) ListByCollection(ctx context.Context, collection string) ([]tcdom.TokenClass, error) {
	c := strings.TrimSpace(collection)
	if c == "" {
		return nil, tcdom.ErrInvalidCollection
	}
	return uc.Classes.ListByCollection(ctx, c)
}
