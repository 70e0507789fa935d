// internal/adapters/out/gala/client_test.go
package gala

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// capture records the last request the fake gateway saw.
type capture struct {
	method string
	path   string
	header http.Header
	body   []byte
}

func newGatewayServer(t *testing.T, status int, response string) (*Client, *capture) {
	t.Helper()
	cap := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.method = r.Method
		cap.path = r.URL.Path
		cap.header = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		cap.body = body
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/"), cap
}

func TestGrantCollectionAuthorizationWire(t *testing.T) {
	c, cap := newGatewayServer(t, http.StatusOK, `{"transactionId":"tx-1"}`)

	res, err := c.GrantCollectionAuthorization(context.Background(), "eth|abc", "Art", "auth-1-x")
	require.NoError(t, err)
	require.Equal(t, "tx-1", res.TransactionID())

	require.Equal(t, http.MethodPost, cap.method)
	require.Equal(t, "/"+MethodGrantAuthorization, cap.path)
	require.Equal(t, "application/json", cap.header.Get("Content-Type"))
	require.Equal(t, "application/json", cap.header.Get("Accept"))

	var sent map[string]any
	require.NoError(t, json.Unmarshal(cap.body, &sent))
	require.Equal(t, "eth|abc", sent["authorizedUser"])
	require.Equal(t, "Art", sent["collection"])
	require.Equal(t, "auth-1-x", sent["uniqueKey"])
	require.NotZero(t, sent["dtoExpiresAt"])
}

func TestSubmitForwardsPayloadVerbatim(t *testing.T) {
	c, cap := newGatewayServer(t, http.StatusOK, `{"transactionId":"tx-2"}`)

	payload := json.RawMessage(`{"signature":"0xdeadbeef","collection":"Art"}`)
	res, err := c.Submit(context.Background(), MethodCreateCollection, payload)
	require.NoError(t, err)
	require.Equal(t, "tx-2", res.TransactionID())

	require.Equal(t, "/"+MethodCreateCollection, cap.path)
	require.JSONEq(t, string(payload), string(cap.body))
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	c, _ := newGatewayServer(t, http.StatusBadRequest, `collection already exists`)

	_, err := c.Submit(context.Background(), MethodCreateCollection, json.RawMessage(`{}`))
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "collection already exists", apiErr.Body)
	require.Equal(t, MethodCreateCollection, apiErr.Method)
}

func TestDryRunWireShape(t *testing.T) {
	c, cap := newGatewayServer(t, http.StatusOK, `{"Data":{"writes":{}}}`)

	dto := MintTokenDTO{Owner: "eth|owner", Quantity: "2"}
	_, err := c.DryRun(context.Background(), MethodMintWithAllowance, dto)
	require.NoError(t, err)

	require.Equal(t, "/"+MethodDryRun, cap.path)

	var sent DryRunDTO
	require.NoError(t, json.Unmarshal(cap.body, &sent))
	require.Equal(t, MethodMintWithAllowance, sent.Method)
	require.Equal(t, "eth|owner", sent.SignerAddress)

	// dto travels re-encoded as a JSON string
	var inner map[string]any
	require.NoError(t, json.Unmarshal([]byte(sent.DTO), &inner))
	require.Equal(t, "eth|owner", inner["owner"])
}

func TestSignerFromDTO(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    string
	}{
		{"owner wins", `{"owner":"eth|o","authorizedUser":"eth|a"}`, "eth|o"},
		{"authorizedUser next", `{"authorizedUser":"eth|a"}`, "eth|a"},
		{"authorities fallback", `{"authorities":["eth|first","eth|second"]}`, "eth|first"},
		{"nothing known", `{"collection":"Art"}`, ""},
		{"undecodable", `not json`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, signerFromDTO(tt.encoded))
		})
	}
}

func TestFetchCollectionAuthorizationsDefaultsLimit(t *testing.T) {
	c, cap := newGatewayServer(t, http.StatusOK, `{"Data":[]}`)

	_, err := c.FetchCollectionAuthorizations(context.Background(), "", 0)
	require.NoError(t, err)

	var sent PaginationDTO
	require.NoError(t, json.Unmarshal(cap.body, &sent))
	require.Equal(t, 100, sent.Limit)
}
