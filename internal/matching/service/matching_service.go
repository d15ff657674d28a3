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

// Package service implements the record-matching engine: person and
// property matchers behind a single façade, plus the duplicate queue.
package service

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hlp-registry/property-records-service/internal/matching/model"
	"github.com/hlp-registry/property-records-service/internal/matching/store"
	"github.com/hlp-registry/property-records-service/internal/system/database/client"
	customerrors "github.com/hlp-registry/property-records-service/internal/system/errors"
	"github.com/hlp-registry/property-records-service/internal/system/log"
)

// MatchingServiceInterface defines the matching and duplicate-queue
// operations exposed to handlers.
type MatchingServiceInterface interface {
	FindPersonMatches(person model.PersonRecord, threshold float64) (model.MatchResult, error)
	FindPropertyMatches(property model.PropertyRecord, threshold float64) (model.MatchResult, error)
	BatchMatchPersons(persons []model.PersonRecord, threshold float64) ([]model.MatchResult, error)
	BatchMatchProperties(properties []model.PropertyRecord, threshold float64) ([]model.MatchResult, error)
	AddToDuplicateQueue(sourceID, sourceType, candidateID string, score float64, matchedFields []string) (string, error)
	GetDuplicateQueue(status string, limit int) ([]model.DuplicateEntry, error)
	ResolveDuplicate(queueID, resolution, resolvedBy string) error
}

// MatchingService is the façade over the person and property matchers
// and the duplicate-resolution queue.
type MatchingService struct {
	client          client.DBClientInterface
	policy          model.MatchingPolicy
	personMatcher   *PersonMatcher
	propertyMatcher *PropertyMatcher
}

// NewMatchingService wires the matchers to a query client under a single
// matching policy.
func NewMatchingService(dbClient client.DBClientInterface, policy model.MatchingPolicy) *MatchingService {

	return &MatchingService{
		client:          dbClient,
		policy:          policy,
		personMatcher:   NewPersonMatcher(dbClient, policy),
		propertyMatcher: NewPropertyMatcher(dbClient, policy),
	}
}

// FindPersonMatches matches a person record against stored persons. A
// zero threshold falls back to the policy's low-confidence floor.
func (s *MatchingService) FindPersonMatches(person model.PersonRecord, threshold float64) (model.MatchResult, error) {

	if threshold == 0 {
		threshold = s.policy.LowConfidence
	}
	result, err := s.personMatcher.FindMatches(person, threshold, s.policy.CandidateLimit)
	if err != nil {
		return model.MatchResult{}, customerrors.NewServerError(customerrors.PERSON_MATCH, err)
	}
	return result, nil
}

// FindPropertyMatches matches a property record against stored
// buildings. A zero threshold falls back to the policy's low-confidence
// floor.
func (s *MatchingService) FindPropertyMatches(property model.PropertyRecord, threshold float64) (model.MatchResult, error) {

	if threshold == 0 {
		threshold = s.policy.LowConfidence
	}
	result, err := s.propertyMatcher.FindMatches(property, threshold, s.policy.CandidateLimit)
	if err != nil {
		return model.MatchResult{}, customerrors.NewServerError(customerrors.PROPERTY_MATCH, err)
	}
	return result, nil
}

// BatchMatchPersons matches each record in order. The first error aborts
// the batch; results up to that point are discarded.
func (s *MatchingService) BatchMatchPersons(persons []model.PersonRecord, threshold float64) ([]model.MatchResult, error) {

	results := make([]model.MatchResult, 0, len(persons))
	for _, person := range persons {
		result, err := s.FindPersonMatches(person, threshold)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// BatchMatchProperties matches each record in order. The first error
// aborts the batch; results up to that point are discarded.
func (s *MatchingService) BatchMatchProperties(properties []model.PropertyRecord, threshold float64) ([]model.MatchResult, error) {

	results := make([]model.MatchResult, 0, len(properties))
	for _, property := range properties {
		result, err := s.FindPropertyMatches(property, threshold)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// AddToDuplicateQueue records a matched pair for human review and
// returns the generated queue entry id.
func (s *MatchingService) AddToDuplicateQueue(sourceID, sourceType, candidateID string,
	score float64, matchedFields []string) (string, error) {

	entry := model.DuplicateEntry{
		ID:            uuid.New().String(),
		SourceID:      sourceID,
		SourceType:    sourceType,
		CandidateID:   candidateID,
		Score:         score,
		MatchedFields: matchedFields,
		Status:        model.QueueStatusPending,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	if err := store.AddDuplicateEntry(s.client, entry); err != nil {
		return "", err
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   "system",
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      entry.ID,
		TargetType:    log.TargetTypeDuplicateEntry,
		ActionID:      log.ActionEnqueueDuplicate,
		Data: map[string]interface{}{
			"source_id":    sourceID,
			"candidate_id": candidateID,
			"score":        score,
		},
	})

	return entry.ID, nil
}

// GetDuplicateQueue lists queue entries by status, best matches first.
// An empty status defaults to pending.
func (s *MatchingService) GetDuplicateQueue(status string, limit int) ([]model.DuplicateEntry, error) {

	if status == "" {
		status = model.QueueStatusPending
	}
	if !model.IsValidQueueStatus(status) {
		return nil, customerrors.NewClientError(customerrors.INVALID_QUEUE_STATUS, http.StatusBadRequest)
	}
	if limit <= 0 {
		limit = s.policy.DuplicateQueueLimit
	}

	return store.GetDuplicateQueue(s.client, status, limit)
}

// ResolveDuplicate records a reviewer's decision on a pending queue
// entry. Resolving an unknown or already-resolved entry is an error.
func (s *MatchingService) ResolveDuplicate(queueID, resolution, resolvedBy string) error {

	if !model.IsValidResolution(resolution) {
		return customerrors.NewClientError(customerrors.INVALID_RESOLUTION, http.StatusBadRequest)
	}

	resolvedAt := time.Now().UTC().Format(time.RFC3339)
	affected, err := store.ResolveDuplicateEntry(s.client, queueID, resolution, resolvedBy, resolvedAt)
	if err != nil {
		return err
	}
	if affected == 0 {
		return customerrors.NewClientError(customerrors.DUPLICATE_ENTRY_NOT_FOUND, http.StatusNotFound)
	}

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   resolvedBy,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      queueID,
		TargetType:    log.TargetTypeDuplicateEntry,
		ActionID:      log.ActionResolveDuplicate,
		Data: map[string]interface{}{
			"resolution": resolution,
		},
	})

	return nil
}
