// internal/application/usecase/fakes_test.go
package usecase

import (
	"context"
	"encoding/json"

	"galamint/internal/adapters/out/gala"
	cdom "galamint/internal/domain/collection"
	"galamint/internal/domain/common"
	mintdom "galamint/internal/domain/mint"
	txdom "galamint/internal/domain/transaction"
	tcdom "galamint/internal/domain/tokenclass"
	userdom "galamint/internal/domain/user"
)

// fakeGateway implements every gateway slice the usecases consume.
type fakeGateway struct {
	submitRes    gala.Response
	submitErr    error
	submitMethod string
	submitBody   json.RawMessage

	dryRunRes gala.DryRunResponse
	dryRunErr error

	authPage gala.AuthorizationPage
	authErr  error

	supplies  []gala.TokenClassSupply
	supplyErr error
}

func (g *fakeGateway) Submit(_ context.Context, method string, payload json.RawMessage) (gala.Response, error) {
	g.submitMethod = method
	g.submitBody = payload
	if g.submitErr != nil {
		return nil, g.submitErr
	}
	return g.submitRes, nil
}

func (g *fakeGateway) DryRun(_ context.Context, _ string, _ any) (gala.DryRunResponse, error) {
	if g.dryRunErr != nil {
		return gala.DryRunResponse{}, g.dryRunErr
	}
	return g.dryRunRes, nil
}

func (g *fakeGateway) FetchCollectionAuthorizations(_ context.Context, _ string, _ int) (gala.AuthorizationPage, error) {
	if g.authErr != nil {
		return gala.AuthorizationPage{}, g.authErr
	}
	return g.authPage, nil
}

func (g *fakeGateway) FetchTokenClassesWithSupply(_ context.Context, _ []gala.TokenClassKeyDTO) ([]gala.TokenClassSupply, error) {
	if g.supplyErr != nil {
		return nil, g.supplyErr
	}
	return g.supplies, nil
}

// fakeCollectionRepo is an in-memory cdom.Repository.
type fakeCollectionRepo struct {
	rows   []cdom.Collection
	nextID int
}

func (r *fakeCollectionRepo) Create(_ context.Context, c cdom.Collection) (cdom.Collection, error) {
	for _, row := range r.rows {
		if row.CollectionName == c.CollectionName {
			return cdom.Collection{}, cdom.ErrAlreadyClaimed
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.rows = append(r.rows, c)
	return c, nil
}

func (r *fakeCollectionRepo) FindByNameAndWallet(_ context.Context, name, wallet string) (cdom.Collection, error) {
	for _, row := range r.rows {
		if row.CollectionName == name && row.WalletAddress == wallet {
			return row, nil
		}
	}
	return cdom.Collection{}, cdom.ErrNotFound
}

func (r *fakeCollectionRepo) FindByName(_ context.Context, name string) (cdom.Collection, error) {
	for _, row := range r.rows {
		if row.CollectionName == name {
			return row, nil
		}
	}
	return cdom.Collection{}, cdom.ErrNotFound
}

func (r *fakeCollectionRepo) ListByWallet(_ context.Context, wallet string) ([]cdom.Collection, error) {
	var out []cdom.Collection
	for _, row := range r.rows {
		if row.WalletAddress == wallet {
			out = append(out, row)
		}
	}
	return out, nil
}

// fakeTokenClassRepo is an in-memory tcdom.Repository.
type fakeTokenClassRepo struct {
	rows   []tcdom.TokenClass
	nextID int
}

func (r *fakeTokenClassRepo) Create(_ context.Context, tc tcdom.TokenClass) (tcdom.TokenClass, error) {
	key := tcdom.Key{Collection: tc.Collection, Type: tc.Type, Category: tc.Category, AdditionalKey: tc.AdditionalKey}
	for _, row := range r.rows {
		if row.Matches(key) {
			return tcdom.TokenClass{}, tcdom.ErrExists
		}
	}
	r.nextID++
	tc.ID = r.nextID
	r.rows = append(r.rows, tc)
	return tc, nil
}

func (r *fakeTokenClassRepo) FindByKey(_ context.Context, key tcdom.Key) (tcdom.TokenClass, error) {
	for _, row := range r.rows {
		if row.Matches(key) {
			return row, nil
		}
	}
	return tcdom.TokenClass{}, tcdom.ErrNotFound
}

func (r *fakeTokenClassRepo) ListByWallet(_ context.Context, wallet string) ([]tcdom.TokenClass, error) {
	var out []tcdom.TokenClass
	for _, row := range r.rows {
		if row.WalletAddress == wallet {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeTokenClassRepo) ListByCollection(_ context.Context, collection string) ([]tcdom.TokenClass, error) {
	var out []tcdom.TokenClass
	for _, row := range r.rows {
		if row.Collection == collection {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeTokenClassRepo) UpdateSupply(_ context.Context, id int, currentSupply string, image *string) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].CurrentSupply = currentSupply
			if image != nil {
				r.rows[i].Image = image
			}
			return nil
		}
	}
	return tcdom.ErrNotFound
}

func (r *fakeTokenClassRepo) UpdateStatus(_ context.Context, id int, status common.Status, transactionID string) error {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Status = status
			r.rows[i].TransactionID = transactionID
			return nil
		}
	}
	return tcdom.ErrNotFound
}

// fakeMintRepo is an in-memory mintdom.Repository.
type fakeMintRepo struct {
	rows   []mintdom.MintTransaction
	nextID int
}

func (r *fakeMintRepo) Create(_ context.Context, m mintdom.MintTransaction) (mintdom.MintTransaction, error) {
	r.nextID++
	m.ID = r.nextID
	r.rows = append(r.rows, m)
	return m, nil
}

func (r *fakeMintRepo) ListByWallet(_ context.Context, wallet string) ([]mintdom.MintTransaction, error) {
	var out []mintdom.MintTransaction
	for _, row := range r.rows {
		if row.WalletAddress == wallet {
			out = append(out, row)
		}
	}
	return out, nil
}

// fakeUserRepo is an in-memory userdom.Repository.
type fakeUserRepo struct {
	rows   []userdom.User
	nextID int
}

func (r *fakeUserRepo) FindByWallet(_ context.Context, wallet string) (userdom.User, error) {
	for _, row := range r.rows {
		if row.WalletAddress == wallet {
			return row, nil
		}
	}
	return userdom.User{}, userdom.ErrNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, u userdom.User) (userdom.User, error) {
	r.nextID++
	u.ID = r.nextID
	r.rows = append(r.rows, u)
	return u, nil
}

// fakeTransactionRepo is an in-memory txdom.Repository.
type fakeTransactionRepo struct {
	rows   []txdom.Transaction
	nextID int
}

func (r *fakeTransactionRepo) Create(_ context.Context, t txdom.Transaction) (txdom.Transaction, error) {
	r.nextID++
	t.ID = r.nextID
	r.rows = append(r.rows, t)
	return t, nil
}

func (r *fakeTransactionRepo) ListByWallet(_ context.Context, wallet string) ([]txdom.Transaction, error) {
	var out []txdom.Transaction
	for _, row := range r.rows {
		if row.UserWalletAddress == wallet {
			out = append(out, row)
		}
	}
	return out, nil
}
