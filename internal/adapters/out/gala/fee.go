// internal/adapters/out/gala/fee.go
package gala

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
)

// DryRunResponse is the parsed DryRun reply. Only Data.writes matters
// for fee estimation; keys are opaque chain write-keys, values are
// JSON-or-string-encoded write records.
type DryRunResponse struct {
	Data DryRunData `json:"Data"`
}

type DryRunData struct {
	Writes map[string]json.RawMessage `json:"writes"`
}

// feeKey builds the documented fee write-key:
// \x00GCFTU\x00{method}\x00{userAddress}\x00
func feeKey(method, userAddress string) string {
	return "\x00GCFTU\x00" + method + "\x00" + userAddress + "\x00"
}

// ExtractFee recovers cumulativeFeeQuantity from a DryRun response.
//
// The write-key encoding is undocumented and has varied across gateway
// versions, so the lookup degrades in three steps:
//  1. exact key match for the documented encoding;
//  2. any key with the \x00GCFTU\x00{method}\x00 prefix;
//  3. any key merely containing "GCFTU".
//
// Every failure path returns "0"; an unknown fee displays as zero and
// never blocks the caller.
func ExtractFee(resp DryRunResponse, method, userAddress string) string {
	writes := resp.Data.Writes
	if len(writes) == 0 {
		return "0"
	}

	if raw, ok := writes[feeKey(method, userAddress)]; ok {
		if fee := feeFromWrite(raw); fee != "" {
			return fee
		}
		return "0"
	}

	prefix := "\x00GCFTU\x00" + method + "\x00"
	for key, raw := range writes {
		if strings.HasPrefix(key, prefix) {
			if fee := feeFromWrite(raw); fee != "" {
				return fee
			}
		}
	}

	for key, raw := range writes {
		if strings.Contains(key, "GCFTU") {
			if fee := feeFromWrite(raw); fee != "" {
				return fee
			}
		}
	}

	return "0"
}

// feeFromWrite decodes one write record (either an object or a JSON
// string wrapping an object) and pulls cumulativeFeeQuantity out of it.
// Returns "" when the record has no usable fee.
func feeFromWrite(raw json.RawMessage) string {
	var obj map[string]any

	// string-wrapped record first
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &obj); err != nil {
			log.Printf("[gala] fee write record not decodable: %v", err)
			return ""
		}
	} else if err := json.Unmarshal(raw, &obj); err != nil {
		log.Printf("[gala] fee write record not decodable: %v", err)
		return ""
	}

	switch v := obj["cumulativeFeeQuantity"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
