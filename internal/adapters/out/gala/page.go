// internal/adapters/out/gala/page.go
package gala

import (
	"encoding/json"
	"strings"
)

// ------------------------------------------------------
// Tolerant response decoding
// ------------------------------------------------------
//
// The gateway's listing responses are not versioned: depending on the
// deployment the payload is {"Data":[...]}, a bare array, or
// {"collections":[...]}, and item field names drift between camelCase
// and snake_case. Rather than probing ad hoc at each call site, the
// variance is absorbed here, once, at the boundary.

// CollectionAuthorization is one normalized authorization grant.
type CollectionAuthorization struct {
	AuthorizedUser string
	Collection     string
	TransactionID  string
}

// AuthorizationPage is the decoded FetchNftCollectionAuthorizations
// response. An unrecognized payload decodes to an empty page rather
// than an error.
type AuthorizationPage struct {
	Items []CollectionAuthorization
}

// authItem accepts every field spelling seen in the wild.
type authItem struct {
	AuthorizedUser      string `json:"authorizedUser"`
	AuthorizedUserSnake string `json:"authorized_user"`
	User                string `json:"user"`
	Collection          string `json:"collection"`
	CollectionName      string `json:"collectionName"`
	TransactionID       string `json:"transactionId"`
	TransactionIDSnake  string `json:"transaction_id"`
}

func (a authItem) normalize() CollectionAuthorization {
	return CollectionAuthorization{
		AuthorizedUser: firstNonEmpty(a.AuthorizedUser, a.AuthorizedUserSnake, a.User),
		Collection:     firstNonEmpty(a.Collection, a.CollectionName),
		TransactionID:  firstNonEmpty(a.TransactionID, a.TransactionIDSnake),
	}
}

func (p *AuthorizationPage) UnmarshalJSON(b []byte) error {
	p.Items = nil

	// bare array
	var arr []authItem
	if err := json.Unmarshal(b, &arr); err == nil {
		p.Items = normalizeAuthItems(arr)
		return nil
	}

	// wrapped shapes; each field is decoded independently so a
	// non-array Data does not poison the collections fallback
	var obj struct {
		Data        json.RawMessage `json:"Data"`
		Collections json.RawMessage `json:"collections"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		// not an object either; treat as unrecognized
		return nil
	}
	if len(obj.Data) > 0 {
		if err := json.Unmarshal(obj.Data, &arr); err == nil && arr != nil {
			p.Items = normalizeAuthItems(arr)
			return nil
		}
	}
	if len(obj.Collections) > 0 {
		if err := json.Unmarshal(obj.Collections, &arr); err == nil && arr != nil {
			p.Items = normalizeAuthItems(arr)
			return nil
		}
	}
	return nil
}

func normalizeAuthItems(items []authItem) []CollectionAuthorization {
	out := make([]CollectionAuthorization, 0, len(items))
	for _, it := range items {
		n := it.normalize()
		if n.Collection == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// TokenClassSupply is one FetchTokenClassesWithSupply item. TotalSupply
// is nil when the chain omitted it (keep the local value in that case);
// the wire value may be a JSON number or string.
type TokenClassSupply struct {
	Collection    string
	Type          string
	Category      string
	AdditionalKey string
	TotalSupply   *string
	Image         string
}

func (s *TokenClassSupply) UnmarshalJSON(b []byte) error {
	var raw struct {
		Collection    string          `json:"collection"`
		Type          string          `json:"type"`
		Category      string          `json:"category"`
		AdditionalKey string          `json:"additionalKey"`
		TotalSupply   json.RawMessage `json:"totalSupply"`
		Image         string          `json:"image"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.Collection = raw.Collection
	s.Type = raw.Type
	s.Category = raw.Category
	s.AdditionalKey = raw.AdditionalKey
	s.Image = raw.Image
	s.TotalSupply = rawToString(raw.TotalSupply)
	return nil
}

// rawToString renders a JSON number or string as a plain string;
// null/absent/other shapes yield nil.
func rawToString(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return &str
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		v := num.String()
		return &v
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
