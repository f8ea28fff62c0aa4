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

package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/govsupport/welfare-matching-service/internal/system/config"
	"github.com/govsupport/welfare-matching-service/internal/system/constants"
	dbprovider "github.com/govsupport/welfare-matching-service/internal/system/database/provider"
	"github.com/govsupport/welfare-matching-service/internal/system/log"
	"github.com/govsupport/welfare-matching-service/internal/system/managers"
	"github.com/govsupport/welfare-matching-service/internal/system/mongo"
)

func main() {
	configFile := flag.String("config", filepath.Join("config", "deployment.yaml"), "Path to the deployment configuration file")
	flag.Parse()

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	// Load the configuration file.
	wmsConfig, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize runtime configurations.
	if err := config.InitializeWMSRuntime(wmsConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize runtime configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger.
	if err := log.Init(wmsConfig.Log.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	// Initialize the catalog database.
	if _, err := dbprovider.GetDB(); err != nil {
		logger.Fatal("Failed to connect to the catalog database", log.Error(err))
	}

	// Initialize the profile document store.
	if _, err := mongo.Connect(wmsConfig.DocumentStore); err != nil {
		logger.Fatal("Failed to connect to the document store", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%d", wmsConfig.Addr.Host, wmsConfig.Addr.Port)
	mux := enableCORS(initMultiplexer())

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err))
	}
	logger.Info("Welfare matching service started", log.String("address", serverAddr))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
