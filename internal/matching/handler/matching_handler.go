/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package handler

import (
	"net/http"

	"github.com/govsupport/welfare-matching-service/internal/matching/provider"
	"github.com/govsupport/welfare-matching-service/internal/matching/service"
	"github.com/govsupport/welfare-matching-service/internal/system/authn"
	"github.com/govsupport/welfare-matching-service/internal/system/constants"
	errors2 "github.com/govsupport/welfare-matching-service/internal/system/errors"
	"github.com/govsupport/welfare-matching-service/internal/system/pagination"
	"github.com/govsupport/welfare-matching-service/internal/system/utils"
)

// MatchingHandler exposes the welfare catalog search endpoints.
type MatchingHandler struct{}

// NewMatchingHandler creates a new instance of MatchingHandler.
func NewMatchingHandler() *MatchingHandler {

	return &MatchingHandler{}
}

// MatchPersonal handles personal welfare search requests.
func (mh *MatchingHandler) MatchPersonal(w http.ResponseWriter, r *http.Request) {

	mh.match(w, r, func(ms service.MatchingServiceInterface, req service.MatchRequest) (*service.MatchResult, error) {
		return ms.MatchPersonal(r.Context(), req)
	})
}

// MatchBusiness handles enterprise welfare search requests.
func (mh *MatchingHandler) MatchBusiness(w http.ResponseWriter, r *http.Request) {

	mh.match(w, r, func(ms service.MatchingServiceInterface, req service.MatchRequest) (*service.MatchResult, error) {
		return ms.MatchBusiness(r.Context(), req)
	})
}

// GetWelfareService handles single catalog entry lookups.
func (mh *MatchingHandler) GetWelfareService(w http.ResponseWriter, r *http.Request) {

	matchingService, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	row, err := matchingService.GetWelfareService(r.Context(), r.PathValue("serviceId"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, row)
}

// ListServiceIDs returns every known service id.
func (mh *MatchingHandler) ListServiceIDs(w http.ResponseWriter, r *http.Request) {

	matchingService, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	ids, err := matchingService.ListServiceIDs(r.Context())
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string][]string{"service_ids": ids})
}

func (mh *MatchingHandler) match(w http.ResponseWriter, r *http.Request,
	run func(service.MatchingServiceInterface, service.MatchRequest) (*service.MatchResult, error)) {

	req, err := parseMatchRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	matchingService, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	result, err := run(matchingService, req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

func parseMatchRequest(r *http.Request) (service.MatchRequest, error) {

	page, err := pagination.Parse(r)
	if err != nil {
		return service.MatchRequest{}, errors2.NewClientError(errors2.INVALID_PAGINATION, http.StatusBadRequest)
	}

	query := r.URL.Query()
	orderBy := query.Get("order_by")
	if orderBy == "" {
		orderBy = constants.DefaultOrderColumn
	}

	return service.MatchRequest{
		Sub:       authn.RequesterSub(r),
		Tag:       query.Get("tag"),
		Keyword:   query.Get("keyword"),
		OrderBy:   orderBy,
		Ascending: query.Get("sort") == "asc",
		Page:      page.Number,
		Size:      page.Size,
	}, nil
}
