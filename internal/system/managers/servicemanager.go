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

// Package managers registers the API routes on the HTTP mux.
package managers

import (
	"net/http"

	"github.com/hlp-registry/property-records-service/internal/matching/handler"
	"github.com/hlp-registry/property-records-service/internal/system/constants"
)

// ServiceManager owns the HTTP mux and route registration.
type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a service manager around a fresh mux.
func NewServiceManager() *ServiceManager {

	return &ServiceManager{
		mux: http.NewServeMux(),
	}
}

// Mux returns the underlying HTTP mux.
func (m *ServiceManager) Mux() *http.ServeMux {

	return m.mux
}

// RegisterServices registers all API routes under the base path.
func (m *ServiceManager) RegisterServices() {

	base := constants.ApiBasePath
	matchingHandler := handler.NewMatchingHandler()

	m.mux.HandleFunc("POST "+base+"/match/persons", matchingHandler.HandleMatchPersonRequest)
	m.mux.HandleFunc("POST "+base+"/match/persons/batch", matchingHandler.HandleBatchMatchPersonsRequest)
	m.mux.HandleFunc("POST "+base+"/match/properties", matchingHandler.HandleMatchPropertyRequest)
	m.mux.HandleFunc("POST "+base+"/match/properties/batch", matchingHandler.HandleBatchMatchPropertiesRequest)
	m.mux.HandleFunc("POST "+base+"/duplicates", matchingHandler.HandleEnqueueDuplicateRequest)
	m.mux.HandleFunc("GET "+base+"/duplicates", matchingHandler.HandleGetDuplicateQueueRequest)
	m.mux.HandleFunc("POST "+base+"/duplicates/{id}/resolve", matchingHandler.HandleResolveDuplicateRequest)

	m.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
}
