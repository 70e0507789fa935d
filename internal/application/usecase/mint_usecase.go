// internal/application/usecase/mint_usecase.go
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"galamint/internal/adapters/out/gala"
	"galamint/internal/domain/common"
	mintdom "galamint/internal/domain/mint"
	tcdom "galamint/internal/domain/tokenclass"
)

// MintGateway is the slice of the GalaChain client this usecase needs.
type MintGateway interface {
	Submit(ctx context.Context, method string, payload json.RawMessage) (gala.Response, error)
	DryRun(ctx context.Context, method string, dto any) (gala.DryRunResponse, error)
}

// MintUsecase mints tokens against locally known token classes and
// keeps the append-only mint log.
type MintUsecase struct {
	Mints   mintdom.Repository
	Classes tcdom.Repository
	Gateway MintGateway
}

func NewMintUsecase(mints mintdom.Repository, classes tcdom.Repository, gateway MintGateway) *MintUsecase {
	return &MintUsecase{Mints: mints, Classes: classes, Gateway: gateway}
}

// MintInput carries one mint request. Owner defaults to the caller's
// wallet when empty; SignedPayload switches to the submission phase.
type MintInput struct {
	Collection    string
	Type          string
	Category      string
	AdditionalKey string
	WalletAddress string
	Owner         string
	Quantity      string
	SignedPayload json.RawMessage
}

// MintOutcome is the two-phase result: exactly one branch is set.
type MintOutcome struct {
	Unsigned      *gala.MintTokenDTO
	Mint          *mintdom.MintTransaction
	TransactionID string
}

// Mint runs one phase of the mint flow. The token class must already
// exist locally; minting against an unknown tuple is rejected.
func (uc *MintUsecase) Mint(ctx context.Context, in MintInput) (MintOutcome, error) {
	key := tcdom.NormalizeKey(in.Collection, in.Type, in.Category, in.AdditionalKey)
	wallet := strings.TrimSpace(in.WalletAddress)
	if wallet == "" {
		return MintOutcome{}, mintdom.ErrInvalidWallet
	}
	quantity := strings.TrimSpace(in.Quantity)
	if quantity == "" {
		return MintOutcome{}, mintdom.ErrInvalidQuantity
	}
	owner := strings.TrimSpace(in.Owner)
	if owner == "" {
		owner = wallet
	}

	tc, err := uc.Classes.FindByKey(ctx, key)
	if err != nil {
		return MintOutcome{}, err
	}

	if len(in.SignedPayload) == 0 {
		dto := buildMintDTO(key, owner, quantity, time.Now())
		return MintOutcome{Unsigned: &dto}, nil
	}

	res, err := uc.Gateway.Submit(ctx, gala.MethodMintWithAllowance, in.SignedPayload)
	if err != nil {
		return MintOutcome{}, fmt.Errorf("submit mint: %w", err)
	}
	txID := res.TransactionID()
	if txID == "" {
		txID = fmt.Sprintf("tx-%d", time.Now().UnixMilli())
	}

	m, err := mintdom.New(key, wallet, owner, quantity, txID, common.StatusCompleted)
	if err != nil {
		return MintOutcome{}, err
	}
	saved, err := uc.Mints.Create(ctx, m)
	if err != nil {
		return MintOutcome{}, err
	}

	// a successful mint proves the class exists on chain
	if tc.Status == common.StatusPending {
		if err := uc.Classes.UpdateStatus(ctx, tc.ID, common.StatusCompleted, txID); err != nil {
			log.Printf("[mint] promote class %d failed: %v", tc.ID, err)
		}
	}

	return MintOutcome{Mint: &saved, TransactionID: txID}, nil
}

// EstimateMintFee dry-runs the mint DTO; failures degrade to "0".
func (uc *MintUsecase) EstimateMintFee(ctx context.Context, in MintInput) (string, error) {
	key := tcdom.NormalizeKey(in.Collection, in.Type, in.Category, in.AdditionalKey)
	wallet := strings.TrimSpace(in.WalletAddress)
	if wallet == "" {
		return "", mintdom.ErrInvalidWallet
	}
	quantity := strings.TrimSpace(in.Quantity)
	if quantity == "" {
		return "", mintdom.ErrInvalidQuantity
	}
	owner := strings.TrimSpace(in.Owner)
	if owner == "" {
		owner = wallet
	}

	dto := buildMintDTO(key, owner, quantity, time.Now())
	res, err := uc.Gateway.DryRun(ctx, gala.MethodMintWithAllowance, dto)
	if err != nil {
		log.Printf("[gala] mint fee dry-run failed: %v", err)
		return "0", nil
	}
	return gala.ExtractFee(res, gala.MethodMintWithAllowance, owner), nil
}

func buildMintDTO(key tcdom.Key, owner, quantity string, now time.Time) gala.MintTokenDTO {
	return gala.MintTokenDTO{
		Owner:    owner,
		Quantity: quantity,
		TokenClass: gala.MintTokenClassDTO{
			Collection:    key.Collection,
			Type:          key.Type,
			Category:      key.Category,
			AdditionalKey: key.AdditionalKey,
			DTOExpiresAt:  gala.SigningExpiration(now),
		},
		TokenInstance: "0",
		DTOExpiresAt:  gala.SigningExpiration(now),
		UniqueKey:     gala.UniqueKey("mint", now),
	}
}

// ListByWallet returns the wallet's mint history, newest first.
func (uc *MintUsecase) ListByWallet(ctx context.Context, walletAddress string) ([]mintdom.MintTransaction, error) {
	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" {
		return nil, mintdom.ErrInvalidWallet
	}
	return uc.Mints.ListByWallet(ctx, wallet)
}
