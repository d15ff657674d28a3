/*
 * Copyright (c) 2026, HLP Registry Project.
 *
 * HLP Registry Project licenses this file to you under the Apache License,
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
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hlp-registry/property-records-service/internal/system/config"
	"github.com/hlp-registry/property-records-service/internal/system/log"
	"github.com/hlp-registry/property-records-service/internal/system/managers"
)

func main() {

	prsHome := flag.String("prsHome", ".", "Path to the service home directory")
	flag.Parse()

	// Optional .env files for local development.
	envFiles, _ := filepath.Glob(filepath.Join(*prsHome, "config", "*.env"))
	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}

	cfg, err := config.LoadConfig(*prsHome, "repository/conf/deployment.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitializePRSRuntime(*prsHome, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize runtime: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(cfg.Log.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	serviceManager := managers.NewServiceManager()
	serviceManager.RegisterServices()

	addr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	logger.Info("Property records matching service started", log.String("address", addr))

	server := &http.Server{
		Addr:    addr,
		Handler: enableCORS(serviceManager.Mux()),
	}
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Server terminated", log.Error(err))
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
