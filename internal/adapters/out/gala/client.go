// internal/adapters/out/gala/client.go
package gala

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the GalaChain token-contract gateway. Every operation
// is a JSON POST to {baseURL}/{Method}. There are no retries; a failed
// call surfaces to the caller as-is.
type Client struct {
	baseURL string
	client  *http.Client
}

// baseURL example:
// - mainnet: https://gateway-mainnet.galachain.com/api/asset/token-contract
// - testnet: https://gateway-testnet.galachain.com/api/testnet01/gc-...-GalaChainToken
func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// BaseURL returns the configured gateway root.
func (c *Client) BaseURL() string { return c.baseURL }

// APIError carries a non-2xx gateway response (status code + body text).
type APIError struct {
	Method string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("galachain api error: %s: %d - %s", e.Method, e.Status, e.Body)
}

// Response is the gateway's parsed JSON reply for submission-style
// operations. The shape varies by method, so it stays a loose map with
// typed accessors.
type Response map[string]any

// TransactionID returns the gateway-assigned transaction id, or ""
// when the gateway omitted one.
func (r Response) TransactionID() string {
	if v, ok := r["transactionId"].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// post sends one JSON request and decodes the response into out
// (skipped when out is nil).
func (c *Client) post(ctx context.Context, method string, body any, out any) error {
	if c == nil || c.baseURL == "" {
		return fmt.Errorf("gala client baseURL is empty")
	}

	var rd io.Reader
	switch b := body.(type) {
	case json.RawMessage:
		rd = bytes.NewReader(b)
	default:
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", method, err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
		return &APIError{Method: method, Status: res.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	return nil
}

// GrantCollectionAuthorization submits a gateway-built authorization
// grant (chain-submission expiry policy).
func (c *Client) GrantCollectionAuthorization(ctx context.Context, authorizedUser, collection, uniqueKey string) (Response, error) {
	dto := AuthorizationDTO{
		AuthorizedUser: authorizedUser,
		Collection:     collection,
		DTOExpiresAt:   ChainExpiration(time.Now()),
		UniqueKey:      uniqueKey,
	}
	var out Response
	if err := c.post(ctx, MethodGrantAuthorization, dto, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateNftCollection submits a token-class creation. The caller builds
// the DTO (authorities, formatted supplies, contract address); the
// client stamps the chain-submission expiry.
func (c *Client) CreateNftCollection(ctx context.Context, dto CreateTokenClassDTO) (Response, error) {
	dto.DTOExpiresAt = ChainExpiration(time.Now())
	var out Response
	if err := c.post(ctx, MethodCreateCollection, dto, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCollectionAuthorizations lists authorization grants. The
// response shape varies between gateway versions, so it is decoded
// once into the tolerant AuthorizationPage.
func (c *Client) FetchCollectionAuthorizations(ctx context.Context, bookmark string, limit int) (AuthorizationPage, error) {
	if limit <= 0 {
		limit = 100
	}
	dto := PaginationDTO{Bookmark: bookmark, Limit: limit}
	var out AuthorizationPage
	if err := c.post(ctx, MethodFetchAuthorizations, dto, &out); err != nil {
		return AuthorizationPage{}, err
	}
	return out, nil
}

// FetchTokenClassesWithSupply returns on-chain supply and image
// metadata for the given token classes.
func (c *Client) FetchTokenClassesWithSupply(ctx context.Context, keys []TokenClassKeyDTO) ([]TokenClassSupply, error) {
	dto := struct {
		TokenClasses []TokenClassKeyDTO `json:"tokenClasses"`
	}{TokenClasses: keys}

	var out struct {
		Data []TokenClassSupply `json:"Data"`
	}
	if err := c.post(ctx, MethodFetchSupply, dto, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// MintTokenWithAllowance submits a gateway-built mint. Both the outer
// DTO and the nested tokenClass carry the chain-submission expiry.
func (c *Client) MintTokenWithAllowance(ctx context.Context, dto MintTokenDTO) (Response, error) {
	now := time.Now()
	dto.DTOExpiresAt = ChainExpiration(now)
	dto.TokenClass.DTOExpiresAt = ChainExpiration(now)
	var out Response
	if err := c.post(ctx, MethodMintWithAllowance, dto, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchBalances returns the raw balance listing for an owner.
func (c *Client) FetchBalances(ctx context.Context, owner string) (json.RawMessage, error) {
	dto := struct {
		Owner string `json:"owner"`
	}{Owner: owner}
	var out json.RawMessage
	if err := c.post(ctx, MethodFetchBalances, dto, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DryRun simulates a transaction without committing it; used purely
// for fee estimation. dto may be a pre-encoded JSON string or any
// marshalable value; the signer address is recovered from the dto
// itself (owner → authorizedUser → authorities[0]).
func (c *Client) DryRun(ctx context.Context, method string, dto any) (DryRunResponse, error) {
	encoded, err := encodeDTOString(dto)
	if err != nil {
		return DryRunResponse{}, fmt.Errorf("encode dry-run dto: %w", err)
	}

	body := DryRunDTO{
		DTO:           encoded,
		Method:        method,
		SignerAddress: signerFromDTO(encoded),
	}
	var out DryRunResponse
	if err := c.post(ctx, MethodDryRun, body, &out); err != nil {
		return DryRunResponse{}, err
	}
	return out, nil
}

// Submit forwards an already-signed payload verbatim to a method
// endpoint. The wire body is exactly what the signer produced; the raw
// bytes are not re-encoded.
func (c *Client) Submit(ctx context.Context, method string, payload json.RawMessage) (Response, error) {
	var out Response
	if err := c.post(ctx, method, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeDTOString(dto any) (string, error) {
	if s, ok := dto.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(dto)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// signerFromDTO probes the dto for a signer identity. Best effort: an
// undecodable dto just yields no signerAddress.
func signerFromDTO(encoded string) string {
	var m map[string]any
	if err := json.Unmarshal([]byte(encoded), &m); err != nil {
		return ""
	}
	if s, ok := m["owner"].(string); ok && s != "" {
		return s
	}
	if s, ok := m["authorizedUser"].(string); ok && s != "" {
		return s
	}
	if arr, ok := m["authorities"].([]any); ok && len(arr) > 0 {
		if s, ok := arr[0].(string); ok {
			return s
		}
	}
	return ""
}
