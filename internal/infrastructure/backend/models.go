// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SearchRequest is the body posted to the backend search endpoint
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResult represents one person returned by the backend
type SearchResult struct {
	Metadata SearchMetadata `json:"metadata"`
	Text     string         `json:"text"`
}

// SearchMetadata carries the person's name and profile link
type SearchMetadata struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// rawResult keeps member values undecoded so their JSON type can be inspected
type rawResult struct {
	Metadata json.RawMessage `json:"metadata"`
	Text     json.RawMessage `json:"text"`
}

type rawMetadata struct {
	Name json.RawMessage `json:"name"`
	Link json.RawMessage `json:"link"`
}

// decodeResults decodes the backend response body. The body must be a JSON
// list. Elements are read leniently:
//   - null fails the whole response
//   - anything other than an object becomes an empty result
//   - a non-object metadata value is treated as absent
//   - empty-ish values (null, false, 0, "") of name, link or text become ""
//   - any other non-string name or text fails the whole response
//   - any other non-string link becomes ""
func decodeResults(body []byte) ([]*SearchResult, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, fmt.Errorf("response is not a list: %w", err)
	}
	if elements == nil {
		// a literal null decodes without error
		return nil, fmt.Errorf("response is not a list")
	}

	results := make([]*SearchResult, len(elements))
	for i, element := range elements {
		result, err := decodeResult(element)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		results[i] = result
	}
	return results, nil
}

func decodeResult(element json.RawMessage) (*SearchResult, error) {
	element = bytes.TrimSpace(element)
	if bytes.Equal(element, []byte("null")) {
		return nil, fmt.Errorf("result is null")
	}
	if !isObject(element) {
		return &SearchResult{}, nil
	}

	var raw rawResult
	if err := json.Unmarshal(element, &raw); err != nil {
		return nil, err
	}

	result := &SearchResult{}
	var ok bool
	if result.Text, ok = stringValue(raw.Text); !ok {
		return nil, fmt.Errorf("text is not a string: %s", raw.Text)
	}

	if !isObject(raw.Metadata) {
		return result, nil
	}
	var meta rawMetadata
	if err := json.Unmarshal(raw.Metadata, &meta); err != nil {
		return nil, err
	}
	if result.Metadata.Name, ok = stringValue(meta.Name); !ok {
		return nil, fmt.Errorf("metadata.name is not a string: %s", meta.Name)
	}
	result.Metadata.Link, _ = stringValue(meta.Link)

	return result, nil
}

func isObject(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}

// stringValue returns the string held by raw. Absent, null, false, zero and
// empty values give "" and ok; any other non-string value is not ok.
func stringValue(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", true
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case 'n', 'f':
		return "", true
	case '{', '[', 't':
		return "", false
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil || f != 0 {
			return "", false
		}
		return "", true
	}
}
