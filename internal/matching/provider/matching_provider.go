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

// Package provider wires the matching service to its dependencies.
package provider

import (
	"github.com/hlp-registry/property-records-service/internal/matching/model"
	"github.com/hlp-registry/property-records-service/internal/matching/service"
	"github.com/hlp-registry/property-records-service/internal/system/config"
	dbprovider "github.com/hlp-registry/property-records-service/internal/system/database/provider"
)

// MatchingProviderInterface defines the interface for getting the
// matching service.
type MatchingProviderInterface interface {
	GetMatchingService() (service.MatchingServiceInterface, error)
}

// MatchingProvider is the implementation of MatchingProviderInterface.
type MatchingProvider struct{}

// NewMatchingProvider creates a new instance of MatchingProvider.
func NewMatchingProvider() MatchingProviderInterface {

	return &MatchingProvider{}
}

// GetMatchingService returns a matching service bound to the configured
// datasource and matching policy.
func (p *MatchingProvider) GetMatchingService() (service.MatchingServiceInterface, error) {

	dbClient, err := dbprovider.NewDBProvider().GetDBClient()
	if err != nil {
		return nil, err
	}

	policy := model.PolicyFromConfig(config.GetPRSRuntime().Config.Matching)
	return service.NewMatchingService(dbClient, policy), nil
}
