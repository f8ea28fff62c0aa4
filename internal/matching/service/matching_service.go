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

package service

import (
	"context"
	"net/http"
	"time"

	"github.com/govsupport/welfare-matching-service/internal/catalog/model"
	"github.com/govsupport/welfare-matching-service/internal/catalog/predicate"
	"github.com/govsupport/welfare-matching-service/internal/matching/rules"
	profilemodel "github.com/govsupport/welfare-matching-service/internal/profile/model"
	errors2 "github.com/govsupport/welfare-matching-service/internal/system/errors"
	"github.com/govsupport/welfare-matching-service/internal/system/log"
)

// CatalogStoreInterface is the slice of the catalog store the matcher needs.
type CatalogStoreInterface interface {
	Count(ctx context.Context, pred predicate.Predicate) (int, error)
	Page(ctx context.Context, pred predicate.Predicate, columns []string,
		orderBy string, ascending bool, offset, limit int) ([]model.Projection, error)
	GetByServiceID(ctx context.Context, serviceID string) (*model.Projection, error)
	ListServiceIDs(ctx context.Context) ([]string, error)
}

// ProfileLoaderInterface loads requester profiles; (nil, nil) means the
// requester has no profile, which is an expected state, not an error.
type ProfileLoaderInterface interface {
	GetPersonalBySub(ctx context.Context, sub string) (*profilemodel.PersonalProfile, error)
	GetBusinessBySub(ctx context.Context, sub string) (*profilemodel.BusinessProfile, error)
}

// MatchRequest carries one search invocation. Sub is empty for guests.
type MatchRequest struct {
	Sub       string
	Tag       string
	Keyword   string
	OrderBy   string
	Ascending bool
	Page      int
	Size      int
}

// MatchResult is the paginated search outcome.
type MatchResult struct {
	Total int                `json:"total"`
	Items []model.Projection `json:"items"`
}

type MatchingServiceInterface interface {
	MatchPersonal(ctx context.Context, req MatchRequest) (*MatchResult, error)
	MatchBusiness(ctx context.Context, req MatchRequest) (*MatchResult, error)
	GetWelfareService(ctx context.Context, serviceID string) (*model.Projection, error)
	ListServiceIDs(ctx context.Context) ([]string, error)
}

// MatchingService is the default implementation of MatchingServiceInterface.
type MatchingService struct {
	catalog  CatalogStoreInterface
	profiles ProfileLoaderInterface
	now      func() time.Time
}

// NewMatchingService creates a matching service over the given stores.
func NewMatchingService(catalog CatalogStoreInterface, profiles ProfileLoaderInterface) *MatchingService {

	return &MatchingService{
		catalog:  catalog,
		profiles: profiles,
		now:      time.Now,
	}
}

// MatchPersonal filters the catalog down to programs the personal requester
// may qualify for and returns one ordered page. Requesters without a profile
// see the catalog restricted only by tag/keyword filters.
func (ms *MatchingService) MatchPersonal(ctx context.Context, req MatchRequest) (*MatchResult, error) {

	if !model.IsCatalogColumn(req.OrderBy) {
		return nil, errors2.NewClientError(errors2.ORDER_COLUMN_NOT_FOUND, http.StatusNotFound)
	}

	var demographic predicate.Predicate
	if req.Sub != "" {
		profile, err := ms.profiles.GetPersonalBySub(ctx, req.Sub)
		if err != nil {
			return nil, errors2.NewServerError(errors2.GET_USER_DATA, err)
		}
		if profile == nil {
			log.GetLogger().Debug("No personal profile for requester, matching unrestricted",
				log.String("sub", req.Sub))
		}
		demographic = rules.ComposePersonal(profile, ms.now())
	}

	parts := []predicate.Predicate{demographic}
	if req.Tag != "" {
		parts = append(parts, rules.TagFilter(req.Tag), rules.TypeFilter(rules.AudiencePersonal))
	}
	if req.Keyword != "" {
		parts = append(parts, rules.KeywordFilter(req.Keyword))
	}

	return ms.run(ctx, predicate.And(parts...), model.PersonalProjectionColumns, req)
}

// MatchBusiness filters the catalog for an enterprise requester using the
// group-requirement implication across operating status, industry, and
// organization type.
func (ms *MatchingService) MatchBusiness(ctx context.Context, req MatchRequest) (*MatchResult, error) {

	if !model.IsCatalogColumn(req.OrderBy) {
		return nil, errors2.NewClientError(errors2.ORDER_COLUMN_NOT_FOUND, http.StatusNotFound)
	}

	parts := []predicate.Predicate{rules.TypeFilter(rules.AudienceBusiness)}
	if req.Tag != "" {
		parts = append(parts, rules.TagFilter(req.Tag))
	}
	if req.Keyword != "" {
		parts = append(parts, rules.KeywordFilter(req.Keyword))
	}

	if req.Sub != "" {
		profile, err := ms.profiles.GetBusinessBySub(ctx, req.Sub)
		if err != nil {
			return nil, errors2.NewServerError(errors2.GET_USER_DATA, err)
		}
		parts = append(parts, rules.ComposeBusiness(profile))
	}

	return ms.run(ctx, predicate.And(parts...), model.BusinessProjectionColumns, req)
}

// GetWelfareService returns a single catalog entry by service id.
func (ms *MatchingService) GetWelfareService(ctx context.Context, serviceID string) (*model.Projection, error) {

	row, err := ms.catalog.GetByServiceID(ctx, serviceID)
	if err != nil {
		return nil, errors2.NewServerError(errors2.GET_WELFARE, err)
	}
	if row == nil {
		return nil, errors2.NewClientError(errors2.WELFARE_NOT_FOUND, http.StatusNotFound)
	}
	return row, nil
}

// ListServiceIDs returns every service id in the catalog.
func (ms *MatchingService) ListServiceIDs(ctx context.Context) ([]string, error) {

	ids, err := ms.catalog.ListServiceIDs(ctx)
	if err != nil {
		return nil, errors2.NewServerError(errors2.LIST_WELFARE_IDS, err)
	}
	return ids, nil
}

func (ms *MatchingService) run(ctx context.Context, pred predicate.Predicate,
	columns []string, req MatchRequest) (*MatchResult, error) {

	total, err := ms.catalog.Count(ctx, pred)
	if err != nil {
		return nil, errors2.NewServerError(errors2.COUNT_WELFARE, err)
	}

	items, err := ms.catalog.Page(ctx, pred, columns, req.OrderBy, req.Ascending, req.Page*req.Size, req.Size)
	if err != nil {
		return nil, errors2.NewServerError(errors2.MATCH_WELFARE, err)
	}
	if items == nil {
		items = []model.Projection{}
	}

	return &MatchResult{Total: total, Items: items}, nil
}
