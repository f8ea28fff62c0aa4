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

package provider

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/govsupport/welfare-matching-service/internal/system/config"
)

var (
	db     *sqlx.DB
	dbOnce sync.Once
	dbErr  error
)

// GetDB returns the shared catalog database handle, opening it on first use.
func GetDB() (*sqlx.DB, error) {

	dbOnce.Do(func() {
		runtimeConfig := config.GetWMSRuntime().Config
		db, dbErr = sqlx.Connect("postgres", buildDSN(runtimeConfig.DataSource))
	})
	if dbErr != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", dbErr)
	}
	return db, nil
}

func buildDSN(ds config.DataSourceConfig) string {

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		ds.Hostname, ds.Port, ds.Username, ds.Password, ds.Name, ds.SSLMode)
}
