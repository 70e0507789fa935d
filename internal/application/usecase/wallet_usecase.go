// internal/application/usecase/wallet_usecase.go
package usecase

import (
	"context"
	"errors"

	userdom "galamint/internal/domain/user"
)

// WalletUsecase registers connected wallets as users.
type WalletUsecase struct {
	Users userdom.Repository
}

func NewWalletUsecase(users userdom.Repository) *WalletUsecase {
	return &WalletUsecase{Users: users}
}

// Connect finds or creates the user row for a wallet address.
func (uc *WalletUsecase) Connect(ctx context.Context, walletAddress string) (userdom.User, error) {
	u, err := userdom.New(walletAddress)
	if err != nil {
		return userdom.User{}, err
	}

	existing, err := uc.Users.FindByWallet(ctx, u.WalletAddress)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, userdom.ErrNotFound) {
		return userdom.User{}, err
	}
	return uc.Users.Create(ctx, u)
}
