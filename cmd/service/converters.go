// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"encoding/json"

	"github.com/linuxfoundation/lfx-v2-people-search/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-people-search/pkg/errors"
)

// payloadToCriteria decodes the raw request body into domain search criteria.
// The body must be a JSON object whose "query" member is a string; an empty
// string is accepted. Other members are ignored.
func payloadToCriteria(body []byte) (model.SearchCriteria, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.SearchCriteria{}, errors.NewBadRequest(constants.ErrInvalidJSON, err)
	}

	object, ok := payload.(map[string]any)
	if !ok {
		return model.SearchCriteria{}, errors.NewValidation(constants.ErrQueryRequired)
	}
	query, ok := object["query"].(string)
	if !ok {
		return model.SearchCriteria{}, errors.NewValidation(constants.ErrQueryRequired)
	}

	return model.SearchCriteria{Query: query}, nil
}

// domainResultToResponse converts domain search result to the wire response
func domainResultToResponse(result *model.SearchResult) *SearchResponse {
	response := &SearchResponse{
		Query:   result.Query,
		Results: make([]*PersonResult, len(result.People)),
		Metadata: &SearchMetadata{
			SearchTime:   result.Metadata.SearchTime,
			TotalResults: result.Metadata.TotalResults,
			Accuracy:     result.Metadata.Accuracy,
			Timestamp:    result.Metadata.Timestamp.UTC().Format(constants.TimestampLayout),
			Degraded:     result.Metadata.Degraded,
		},
	}

	for i, person := range result.People {
		sources := person.Sources
		if sources == nil {
			sources = []string{}
		}
		response.Results[i] = &PersonResult{
			ID:       person.ID,
			Name:     person.Name,
			Title:    person.Title,
			Company:  person.Company,
			Location: person.Location,
			Email:    person.Email,
			LinkedIn: person.LinkedIn,
			Verified: person.Verified,
			Accuracy: person.Accuracy,
			Sources:  sources,
			RawText:  person.RawText,
		}
	}

	return response
}
