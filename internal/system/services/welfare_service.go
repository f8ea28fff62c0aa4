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

	"github.com/govsupport/welfare-matching-service/internal/matching/handler"
	"github.com/govsupport/welfare-matching-service/internal/system/constants"
)

type WelfareService struct {
	matchingHandler *handler.MatchingHandler
}

func NewWelfareService(mux *http.ServeMux, apiBasePath string) *WelfareService {

	instance := &WelfareService{
		matchingHandler: handler.NewMatchingHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)

	return instance
}

func (s *WelfareService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {

	basePath := fmt.Sprintf("%s/%s", apiBasePath, constants.WelfareApiPath)

	mux.HandleFunc(fmt.Sprintf("GET %s", basePath), s.matchingHandler.MatchPersonal)
	mux.HandleFunc(fmt.Sprintf("GET %s/enterprise", basePath), s.matchingHandler.MatchBusiness)
	mux.HandleFunc(fmt.Sprintf("GET %s/ids", basePath), s.matchingHandler.ListServiceIDs)
	mux.HandleFunc(fmt.Sprintf("GET %s/{serviceId}", basePath), s.matchingHandler.GetWelfareService)
}
