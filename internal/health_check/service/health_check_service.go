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
	"errors"
	"fmt"
	"time"

	dbprovider "github.com/govsupport/welfare-matching-service/internal/system/database/provider"
	"github.com/govsupport/welfare-matching-service/internal/system/log"
	"github.com/govsupport/welfare-matching-service/internal/system/mongo"
)

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness() error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct{}

// GetHealthCheckService returns a new instance.
func GetHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{}
}

func (h HealthCheckService) CheckReadiness() error {
	logger := log.GetLogger()
	if logger == nil {
		return errors.New("logger not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := dbprovider.GetDB()
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database connectivity check failed: %v", err)
	}

	docStore := mongo.GetDocumentStore()
	if docStore == nil {
		return errors.New("document store not initialized")
	}
	if err := docStore.Client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("document store connectivity check failed: %v", err)
	}

	return nil
}
