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

package mongo

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/govsupport/welfare-matching-service/internal/system/config"
	"github.com/govsupport/welfare-matching-service/internal/system/log"
)

// DocumentStore holds the client and database for requester profiles.
type DocumentStore struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	instance *DocumentStore
	once     sync.Once
)

// Connect initializes the global MongoDB connection for profile documents.
func Connect(cfg config.DocumentStoreConfig) (*DocumentStore, error) {

	var connectErr error
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			connectErr = err
			return
		}
		if err := client.Ping(ctx, nil); err != nil {
			connectErr = err
			return
		}

		instance = &DocumentStore{
			Client:   client,
			Database: client.Database(cfg.Database),
		}
		log.GetLogger().Info("Connected to document store", log.String("database", cfg.Database))
	})
	return instance, connectErr
}

// GetDocumentStore returns the document store instance. Connect must have
// been called first.
func GetDocumentStore() *DocumentStore {
	return instance
}
