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
	catalogstore "github.com/govsupport/welfare-matching-service/internal/catalog/store"
	profilestore "github.com/govsupport/welfare-matching-service/internal/profile/store"
	dbprovider "github.com/govsupport/welfare-matching-service/internal/system/database/provider"
	errors2 "github.com/govsupport/welfare-matching-service/internal/system/errors"
	"github.com/govsupport/welfare-matching-service/internal/system/mongo"
)

// GetMatchingService returns a matching service bound to the shared catalog
// database and document store.
func GetMatchingService() (MatchingServiceInterface, error) {

	db, err := dbprovider.GetDB()
	if err != nil {
		return nil, errors2.NewServerError(errors2.DB_CLIENT_INIT, err)
	}
	docStore := mongo.GetDocumentStore()
	if docStore == nil {
		return nil, errors2.NewServerError(errors2.DOC_STORE_INIT, nil)
	}

	return NewMatchingService(
		catalogstore.NewCatalogStore(db),
		profilestore.NewProfileStore(docStore.Database),
	), nil
}
