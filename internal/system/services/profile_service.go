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

package services

import (
	"fmt"
	"net/http"

	"github.com/govsupport/welfare-matching-service/internal/profile/handler"
	"github.com/govsupport/welfare-matching-service/internal/system/constants"
)

type ProfileService struct {
	profileHandler *handler.ProfileHandler
}

func NewProfileService(mux *http.ServeMux, apiBasePath string) *ProfileService {

	instance := &ProfileService{
		profileHandler: handler.NewProfileHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *ProfileService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	basePath := fmt.Sprintf("%s/%s", apiBasePath, constants.ProfileApiPath)

	mux.HandleFunc(fmt.Sprintf("GET %s/me/personal", basePath), s.profileHandler.GetPersonalProfile)
	mux.HandleFunc(fmt.Sprintf("PUT %s/me/personal", basePath), s.profileHandler.PutPersonalProfile)
	mux.HandleFunc(fmt.Sprintf("GET %s/me/business", basePath), s.profileHandler.GetBusinessProfile)
	mux.HandleFunc(fmt.Sprintf("PUT %s/me/business", basePath), s.profileHandler.PutBusinessProfile)
}
