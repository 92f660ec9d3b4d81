// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"net/http"

	"github.com/linuxfoundation/lfx-v2-people-search/pkg/constants"

	goahttp "goa.design/goa/v3/http"
)

// MountPoint holds information about a mounted endpoint.
type MountPoint struct {
	// Method is the name of the service method served by the mounted HTTP handler.
	Method string
	// Verb is the HTTP method used to match requests to the mounted handler.
	Verb string
	// Pattern is the HTTP request path pattern used to match requests to the
	// mounted handler.
	Pattern string
}

// anyVerb marks a mount matched by MethodGuard rather than by the mux
const anyVerb = "*"

// Mount configures the mux to serve the people search endpoints. Requests on
// the search path with any other verb are answered by MethodGuard, which must
// wrap the mux.
func Mount(mux goahttp.Muxer, svc *PeopleSearchSvc) []*MountPoint {
	mux.Handle(http.MethodPost, constants.SearchPath, svc.Search)
	mux.Handle(http.MethodGet, "/livez", svc.Livez)
	mux.Handle(http.MethodGet, "/readyz", svc.Readyz)

	return []*MountPoint{
		{Method: "Search", Verb: http.MethodPost, Pattern: constants.SearchPath},
		{Method: "MethodNotAllowed", Verb: anyVerb, Pattern: constants.SearchPath},
		{Method: "Livez", Verb: http.MethodGet, Pattern: "/livez"},
		{Method: "Readyz", Verb: http.MethodGet, Pattern: "/readyz"},
	}
}

// MethodGuard answers every non-POST request on the search path with the JSON
// 405, including extension methods the mux has no route table for.
func (s *PeopleSearchSvc) MethodGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == constants.SearchPath && r.Method != http.MethodPost {
			s.MethodNotAllowed(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
