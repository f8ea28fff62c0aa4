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
	"encoding/json"
	"net/http"

	"github.com/govsupport/welfare-matching-service/internal/profile/model"
	"github.com/govsupport/welfare-matching-service/internal/profile/provider"
	"github.com/govsupport/welfare-matching-service/internal/system/authn"
	errors2 "github.com/govsupport/welfare-matching-service/internal/system/errors"
	"github.com/govsupport/welfare-matching-service/internal/system/utils"
)

// ProfileHandler exposes the requester answer-sheet endpoints. All routes
// operate on the profile of the authenticated subject.
type ProfileHandler struct{}

// NewProfileHandler creates a new instance of ProfileHandler.
func NewProfileHandler() *ProfileHandler {

	return &ProfileHandler{}
}

// GetPersonalProfile returns the caller's personal profile.
func (ph *ProfileHandler) GetPersonalProfile(w http.ResponseWriter, r *http.Request) {

	sub := authn.RequesterSub(r)
	if sub == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized))
		return
	}

	profileService := provider.NewProfileProvider().GetProfileService()
	profile, err := profileService.GetPersonalProfile(r.Context(), sub)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if profile == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.USER_DATA_NOT_FOUND, http.StatusNotFound))
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

// PutPersonalProfile saves the caller's personal profile.
func (ph *ProfileHandler) PutPersonalProfile(w http.ResponseWriter, r *http.Request) {

	sub := authn.RequesterSub(r)
	if sub == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized))
		return
	}

	var profile model.PersonalProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	profileService := provider.NewProfileProvider().GetProfileService()
	stored, err := profileService.UpsertPersonalProfile(r.Context(), sub, &profile)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stored)
}

// GetBusinessProfile returns the caller's business profile.
func (ph *ProfileHandler) GetBusinessProfile(w http.ResponseWriter, r *http.Request) {

	sub := authn.RequesterSub(r)
	if sub == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized))
		return
	}

	profileService := provider.NewProfileProvider().GetProfileService()
	profile, err := profileService.GetBusinessProfile(r.Context(), sub)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if profile == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.USER_DATA_NOT_FOUND, http.StatusNotFound))
		return
	}
	utils.WriteJSON(w, http.StatusOK, profile)
}

// PutBusinessProfile saves the caller's business profile.
func (ph *ProfileHandler) PutBusinessProfile(w http.ResponseWriter, r *http.Request) {

	sub := authn.RequesterSub(r)
	if sub == "" {
		utils.HandleError(w, errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized))
		return
	}

	var profile model.BusinessProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	profileService := provider.NewProfileProvider().GetProfileService()
	stored, err := profileService.UpsertBusinessProfile(r.Context(), sub, &profile)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, stored)
}
