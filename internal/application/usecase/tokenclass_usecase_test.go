// internal/application/usecase/tokenclass_usecase_test.go
package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"galamint/internal/adapters/out/gala"
	cdom "galamint/internal/domain/collection"
	"galamint/internal/domain/common"
	tcdom "galamint/internal/domain/tokenclass"
)

func seedCollection(t *testing.T, repo *fakeCollectionRepo, name, wallet string) {
	t.Helper()
	c, err := cdom.New(name, wallet, "tx-1", common.StatusCompleted)
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), c)
	require.NoError(t, err)
}

func baseCreateInput() CreateClassInput {
	return CreateClassInput{
		Collection:    "ArtCollection",
		Type:          "Painting",
		Category:      "NFT",
		WalletAddress: "eth|abc",
		Description:   "fine art",
		Image:         "https://x/y.png",
		Symbol:        "ART",
		Rarity:        "Rare",
		MaxSupply:     "1000.00",
		MaxCapacity:   "2000.50",
	}
}

func TestCreateUnsignedDTODefaults(t *testing.T) {
	collections := &fakeCollectionRepo{}
	seedCollection(t, collections, "ArtCollection", "eth|abc")
	uc := NewTokenClassUsecase(&fakeTokenClassRepo{}, collections, &fakeGateway{})

	out, err := uc.Create(context.Background(), baseCreateInput())
	require.NoError(t, err)
	require.NotNil(t, out.Unsigned)
	require.Nil(t, out.TokenClass)

	dto := out.Unsigned
	require.Equal(t, "ArtCollection", dto.Collection)
	require.Equal(t, "none", dto.AdditionalKey)
	require.Equal(t, "ArtCollection", dto.Name) // defaults to the collection
	require.Equal(t, []string{"eth|abc"}, dto.Authorities)
	require.Equal(t, gala.DefaultContractAddress, dto.ContractAddress)
	require.Equal(t, "1000", dto.MaxSupply)
	require.Equal(t, "2000", dto.MaxCapacity)
	require.True(t, strings.HasPrefix(dto.UniqueKey, "create-"))
}

func TestCreateRequiresOwnedCollection(t *testing.T) {
	t.Run("collection missing", func(t *testing.T) {
		uc := NewTokenClassUsecase(&fakeTokenClassRepo{}, &fakeCollectionRepo{}, &fakeGateway{})
		_, err := uc.Create(context.Background(), baseCreateInput())
		require.ErrorIs(t, err, cdom.ErrNotFound)
	})

	t.Run("collection owned by another wallet", func(t *testing.T) {
		collections := &fakeCollectionRepo{}
		seedCollection(t, collections, "ArtCollection", "eth|other")
		uc := NewTokenClassUsecase(&fakeTokenClassRepo{}, collections, &fakeGateway{})
		_, err := uc.Create(context.Background(), baseCreateInput())
		require.ErrorIs(t, err, tcdom.ErrNotOwner)
	})
}

func TestCreateDuplicateClassRejected(t *testing.T) {
	collections := &fakeCollectionRepo{}
	seedCollection(t, collections, "ArtCollection", "eth|abc")

	classes := &fakeTokenClassRepo{}
	key := tcdom.NormalizeKey("ArtCollection", "Painting", "NFT", "")
	tc, err := tcdom.New(key, "eth|abc", "tx-1", common.StatusCompleted, nil)
	require.NoError(t, err)
	_, err = classes.Create(context.Background(), tc)
	require.NoError(t, err)

	uc := NewTokenClassUsecase(classes, collections, &fakeGateway{})
	_, err = uc.Create(context.Background(), baseCreateInput())
	require.ErrorIs(t, err, tcdom.ErrExists)
}

func TestCreateSignedPhasePersistsCompleted(t *testing.T) {
	collections := &fakeCollectionRepo{}
	seedCollection(t, collections, "ArtCollection", "eth|abc")
	classes := &fakeTokenClassRepo{}
	gw := &fakeGateway{submitRes: gala.Response{"transactionId": "tx-55"}}
	uc := NewTokenClassUsecase(classes, collections, gw)

	in := baseCreateInput()
	in.SignedPayload = json.RawMessage(`{"signature":"0xsig"}`)

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, out.Unsigned)
	require.Equal(t, "tx-55", out.TransactionID)
	require.Equal(t, common.StatusCompleted, out.TokenClass.Status)
	require.Equal(t, "0", out.TokenClass.CurrentSupply)
	require.Equal(t, "none", out.TokenClass.AdditionalKey)

	require.Equal(t, gala.MethodCreateCollection, gw.submitMethod)
	require.Len(t, classes.rows, 1)
}

func TestSyncSupplyUpdatesFromChain(t *testing.T) {
	classes := &fakeTokenClassRepo{}
	key := tcdom.NormalizeKey("ArtCollection", "Painting", "NFT", "")
	tc, err := tcdom.New(key, "eth|abc", "tx-1", common.StatusCompleted, nil)
	require.NoError(t, err)
	_, err = classes.Create(context.Background(), tc)
	require.NoError(t, err)

	supply := "42"
	gw := &fakeGateway{supplies: []gala.TokenClassSupply{{
		Collection:    "ArtCollection",
		Type:          "Painting",
		Category:      "NFT",
		AdditionalKey: "none",
		TotalSupply:   &supply,
		Image:         "https://chain/img.png",
	}}}
	uc := NewTokenClassUsecase(classes, &fakeCollectionRepo{}, gw)

	uc.SyncSupply(context.Background(), "eth|abc")

	require.Equal(t, "42", classes.rows[0].CurrentSupply)
	require.NotNil(t, classes.rows[0].Image)
	require.Equal(t, "https://chain/img.png", *classes.rows[0].Image)
}

func TestSyncSupplyKeepsLocalValueWhenChainOmitsIt(t *testing.T) {
	classes := &fakeTokenClassRepo{}
	key := tcdom.NormalizeKey("ArtCollection", "Painting", "NFT", "")
	tc, err := tcdom.New(key, "eth|abc", "tx-1", common.StatusCompleted, nil)
	require.NoError(t, err)
	created, err := classes.Create(context.Background(), tc)
	require.NoError(t, err)
	require.NoError(t, classes.UpdateSupply(context.Background(), created.ID, "7", nil))

	gw := &fakeGateway{supplies: []gala.TokenClassSupply{{
		Collection: "ArtCollection", Type: "Painting", Category: "NFT", AdditionalKey: "none",
	}}}
	uc := NewTokenClassUsecase(classes, &fakeCollectionRepo{}, gw)

	uc.SyncSupply(context.Background(), "eth|abc")
	require.Equal(t, "7", classes.rows[0].CurrentSupply)
}

func TestSyncSupplySwallowsGatewayFailure(t *testing.T) {
	classes := &fakeTokenClassRepo{}
	key := tcdom.NormalizeKey("ArtCollection", "Painting", "NFT", "")
	tc, err := tcdom.New(key, "eth|abc", "tx-1", common.StatusCompleted, nil)
	require.NoError(t, err)
	_, err = classes.Create(context.Background(), tc)
	require.NoError(t, err)

	uc := NewTokenClassUsecase(classes, &fakeCollectionRepo{}, &fakeGateway{supplyErr: context.DeadlineExceeded})
	uc.SyncSupply(context.Background(), "eth|abc")

	rows, err := uc.ListByWallet(context.Background(), "eth|abc")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "0", rows[0].CurrentSupply)
}
