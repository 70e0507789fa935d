// internal/adapters/out/gala/dto.go
package gala

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gateway method names. These, and the DTO field names below, are a
// wire contract with the chain and must not change.
const (
	MethodGrantAuthorization  = "GrantNftCollectionAuthorization"
	MethodCreateCollection    = "CreateNftCollection"
	MethodFetchAuthorizations = "FetchNftCollectionAuthorizationsWithPagination"
	MethodFetchSupply         = "FetchTokenClassesWithSupply"
	MethodMintWithAllowance   = "MintTokenWithAllowance"
	MethodDryRun              = "DryRun"
	MethodFetchBalances       = "FetchBalances"
	MethodBurnTokens          = "BurnTokens"
)

// DefaultContractAddress is the GalaChainToken contract token classes
// are created against.
const DefaultContractAddress = "gc-a9b8b472b035c0510508c248d1110d3162b7e5f4-GalaChainToken"

// ------------------------------------------------------
// Expiration / unique-key helpers
// ------------------------------------------------------
//
// Two distinct dtoExpiresAt policies exist and must not be mixed up:
//   - ChainExpiration: unix seconds, now + 1h + 10s. Used when the
//     gateway itself submits the DTO; the buffer absorbs submission lag.
//   - SigningExpiration: unix milliseconds, now + 60s. Used on unsigned
//     DTOs handed to the client wallet, bounding the signing window.
// Both are regenerated per request, never cached.

func ChainExpiration(now time.Time) int64 {
	return now.Unix() + 3600 + 10
}

func SigningExpiration(now time.Time) int64 {
	return now.UnixMilli() + 60_000
}

// UniqueKey builds a per-transaction key: {prefix}-{unixMilli}-{rand}.
func UniqueKey(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), suffix)
}

// ------------------------------------------------------
// Request DTOs (wire shapes)
// ------------------------------------------------------

// AuthorizationDTO is the GrantNftCollectionAuthorization body. It is
// also the unsigned DTO returned to the client for signing.
type AuthorizationDTO struct {
	AuthorizedUser string `json:"authorizedUser"`
	Collection     string `json:"collection"`
	DTOExpiresAt   int64  `json:"dtoExpiresAt"`
	UniqueKey      string `json:"uniqueKey"`
}

// CreateTokenClassDTO is the CreateNftCollection body. Every string
// field is always present on the wire (empty rather than omitted),
// matching what the chain expects.
type CreateTokenClassDTO struct {
	Collection      string   `json:"collection"`
	Authorities     []string `json:"authorities"`
	Category        string   `json:"category"`
	Type            string   `json:"type"`
	AdditionalKey   string   `json:"additionalKey"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Symbol          string   `json:"symbol"`
	Rarity          string   `json:"rarity"`
	MaxSupply       string   `json:"maxSupply"`
	MaxCapacity     string   `json:"maxCapacity"`
	MetadataAddress string   `json:"metadataAddress"`
	ContractAddress string   `json:"contractAddress"`
	DTOExpiresAt    int64    `json:"dtoExpiresAt"`
	UniqueKey       string   `json:"uniqueKey"`
}

// PaginationDTO is the FetchNftCollectionAuthorizationsWithPagination body.
type PaginationDTO struct {
	Bookmark string `json:"bookmark"`
	Limit    int    `json:"limit"`
}

// TokenClassKeyDTO identifies one token class on the wire.
type TokenClassKeyDTO struct {
	Collection    string `json:"collection"`
	Type          string `json:"type"`
	Category      string `json:"category"`
	AdditionalKey string `json:"additionalKey"`
}

// MintTokenClassDTO is the nested tokenClass of a mint body.
type MintTokenClassDTO struct {
	Collection    string `json:"collection"`
	Type          string `json:"type"`
	Category      string `json:"category"`
	AdditionalKey string `json:"additionalKey,omitempty"`
	DTOExpiresAt  int64  `json:"dtoExpiresAt"`
}

// MintTokenDTO is the MintTokenWithAllowance body. It is also the
// unsigned DTO returned to the client for signing.
type MintTokenDTO struct {
	Owner         string            `json:"owner"`
	Quantity      string            `json:"quantity"`
	TokenClass    MintTokenClassDTO `json:"tokenClass"`
	TokenInstance string            `json:"tokenInstance"`
	DTOExpiresAt  int64             `json:"dtoExpiresAt"`
	UniqueKey     string            `json:"uniqueKey"`
}

// DryRunDTO is the DryRun body; dto is the target DTO re-encoded as a
// JSON string.
type DryRunDTO struct {
	DTO           string `json:"dto"`
	Method        string `json:"method"`
	SignerAddress string `json:"signerAddress,omitempty"`
}
