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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

// DataSourceConfig holds the PostgreSQL connection settings for the welfare
// catalog.
type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DocumentStoreConfig holds the MongoDB connection settings for requester
// profiles.
type DocumentStoreConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type Config struct {
	Addr          AddrConfig          `yaml:"addr"`
	Log           LogConfig           `yaml:"log"`
	DataSource    DataSourceConfig    `yaml:"datasource"`
	DocumentStore DocumentStoreConfig `yaml:"document_store"`
}

// LoadConfig reads and parses the deployment YAML file.
func LoadConfig(path string) (*Config, error) {

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}
