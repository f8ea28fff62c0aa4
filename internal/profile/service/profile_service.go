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

	"github.com/govsupport/welfare-matching-service/internal/profile/model"
	"github.com/govsupport/welfare-matching-service/internal/profile/store"
	errors2 "github.com/govsupport/welfare-matching-service/internal/system/errors"
	"github.com/govsupport/welfare-matching-service/internal/system/mongo"
)

// ProfileStoreInterface is the slice of the profile store the service needs.
type ProfileStoreInterface interface {
	GetPersonalBySub(ctx context.Context, sub string) (*model.PersonalProfile, error)
	GetBusinessBySub(ctx context.Context, sub string) (*model.BusinessProfile, error)
	UpsertPersonal(ctx context.Context, profile *model.PersonalProfile) (*model.PersonalProfile, error)
	UpsertBusiness(ctx context.Context, profile *model.BusinessProfile) (*model.BusinessProfile, error)
}

// ProfileServiceInterface defines the service interface for requester
// answer-sheet management.
type ProfileServiceInterface interface {
	GetPersonalProfile(ctx context.Context, sub string) (*model.PersonalProfile, error)
	UpsertPersonalProfile(ctx context.Context, sub string, profile *model.PersonalProfile) (*model.PersonalProfile, error)
	GetBusinessProfile(ctx context.Context, sub string) (*model.BusinessProfile, error)
	UpsertBusinessProfile(ctx context.Context, sub string, profile *model.BusinessProfile) (*model.BusinessProfile, error)
}

// ProfileService is the default implementation of ProfileServiceInterface.
type ProfileService struct {
	store ProfileStoreInterface
}

// NewProfileService creates a profile service over the given store.
func NewProfileService(store ProfileStoreInterface) *ProfileService {

	return &ProfileService{store: store}
}

// GetProfileService returns a profile service bound to the global document
// store.
func GetProfileService() ProfileServiceInterface {

	return NewProfileService(store.NewProfileStore(mongo.GetDocumentStore().Database))
}

// GetPersonalProfile returns the subject's personal profile, or (nil, nil)
// when none was saved yet.
func (ps *ProfileService) GetPersonalProfile(ctx context.Context, sub string) (*model.PersonalProfile, error) {

	profile, err := ps.store.GetPersonalBySub(ctx, sub)
	if err != nil {
		return nil, errors2.NewServerError(errors2.GET_USER_DATA, err)
	}
	return profile, nil
}

// UpsertPersonalProfile validates and saves the subject's personal profile.
func (ps *ProfileService) UpsertPersonalProfile(ctx context.Context, sub string, profile *model.PersonalProfile) (*model.PersonalProfile, error) {

	if err := validatePersonal(profile); err != nil {
		return nil, err
	}
	profile.Sub = sub

	stored, err := ps.store.UpsertPersonal(ctx, profile)
	if err != nil {
		return nil, errors2.NewServerError(errors2.UPSERT_USER_DATA, err)
	}
	return stored, nil
}

// GetBusinessProfile returns the subject's business profile, or (nil, nil)
// when none was saved yet.
func (ps *ProfileService) GetBusinessProfile(ctx context.Context, sub string) (*model.BusinessProfile, error) {

	profile, err := ps.store.GetBusinessBySub(ctx, sub)
	if err != nil {
		return nil, errors2.NewServerError(errors2.GET_USER_DATA, err)
	}
	return profile, nil
}

// UpsertBusinessProfile saves the subject's business profile.
func (ps *ProfileService) UpsertBusinessProfile(ctx context.Context, sub string, profile *model.BusinessProfile) (*model.BusinessProfile, error) {

	profile.Sub = sub

	stored, err := ps.store.UpsertBusiness(ctx, profile)
	if err != nil {
		return nil, errors2.NewServerError(errors2.UPSERT_USER_DATA, err)
	}
	return stored, nil
}

func validatePersonal(profile *model.PersonalProfile) error {

	if profile.HouseholdSize != nil && *profile.HouseholdSize < 1 {
		return errors2.NewClientError(errors2.USER_DATA_VALIDATION, http.StatusBadRequest)
	}
	if profile.Overcome != nil && *profile.Overcome < 0 {
		return errors2.NewClientError(errors2.USER_DATA_VALIDATION, http.StatusBadRequest)
	}
	if profile.AcademicStatus < model.AcademicNone || profile.AcademicStatus > model.AcademicUniversity {
		return errors2.NewClientError(errors2.USER_DATA_VALIDATION, http.StatusBadRequest)
	}
	switch profile.Gender {
	case "", "male", "female":
	default:
		return errors2.NewClientError(errors2.USER_DATA_VALIDATION, http.StatusBadRequest)
	}
	return nil
}
