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

// Package handler exposes the matching engine over HTTP.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hlp-registry/property-records-service/internal/matching/model"
	"github.com/hlp-registry/property-records-service/internal/matching/provider"
	customerrors "github.com/hlp-registry/property-records-service/internal/system/errors"
	"github.com/hlp-registry/property-records-service/internal/system/utils"
)

// MatchingHandler handles matching and duplicate-queue API requests.
type MatchingHandler struct{}

// NewMatchingHandler creates a new instance of MatchingHandler.
func NewMatchingHandler() *MatchingHandler {

	return &MatchingHandler{}
}

// HandleMatchPersonRequest matches one person record against the store.
func (h *MatchingHandler) HandleMatchPersonRequest(w http.ResponseWriter, r *http.Request) {

	var req model.PersonMatchRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	svc, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	result, err := svc.FindPersonMatches(req.Person, req.Threshold)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// HandleBatchMatchPersonsRequest matches a batch of person records.
func (h *MatchingHandler) HandleBatchMatchPersonsRequest(w http.ResponseWriter, r *http.Request) {

	var req model.PersonBatchMatchRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	svc, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	results, err := svc.BatchMatchPersons(req.Persons, req.Threshold)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, results)
}

// HandleMatchPropertyRequest matches one property record against the store.
func (h *MatchingHandler) HandleMatchPropertyRequest(w http.ResponseWriter, r *http.Request) {

	var req model.PropertyMatchRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	svc, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	result, err := svc.FindPropertyMatches(req.Property, req.Threshold)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// HandleBatchMatchPropertiesRequest matches a batch of property records.
func (h *MatchingHandler) HandleBatchMatchPropertiesRequest(w http.ResponseWriter, r *http.Request) {

	var req model.PropertyBatchMatchRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	svc, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	results, err := svc.BatchMatchProperties(req.Properties, req.Threshold)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, results)
}

// HandleEnqueueDuplicateRequest adds a matched pair to the review queue.
func (h *MatchingHandler) HandleEnqueueDuplicateRequest(w http.ResponseWriter, r *http.Request) {

	var req model.EnqueueDuplicateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if req.SourceID == "" || req.CandidateID == "" {
		utils.WriteErrorResponse(w, customerrors.NewClientError(customerrors.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	svc, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	queueID, err := svc.AddToDuplicateQueue(req.SourceID, req.SourceType, req.CandidateID,
		req.Score, req.MatchedFields)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, model.EnqueueDuplicateResponse{QueueID: queueID})
}

// HandleGetDuplicateQueueRequest lists duplicate queue entries. Status
// defaults to pending; limit falls back to the configured cap.
func (h *MatchingHandler) HandleGetDuplicateQueueRequest(w http.ResponseWriter, r *http.Request) {

	status := r.URL.Query().Get("status")

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			utils.WriteErrorResponse(w, customerrors.NewClientError(customerrors.BAD_REQUEST, http.StatusBadRequest))
			return
		}
		limit = parsed
	}

	svc, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	entries, err := svc.GetDuplicateQueue(status, limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, entries)
}

// HandleResolveDuplicateRequest records a reviewer's decision on a
// pending queue entry.
func (h *MatchingHandler) HandleResolveDuplicateRequest(w http.ResponseWriter, r *http.Request) {

	queueID := r.PathValue("id")
	if queueID == "" {
		utils.WriteErrorResponse(w, customerrors.NewClientError(customerrors.BAD_REQUEST, http.StatusBadRequest))
		return
	}

	var req model.ResolveDuplicateRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	svc, err := provider.NewMatchingProvider().GetMatchingService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	if err := svc.ResolveDuplicate(queueID, req.Resolution, req.ResolvedBy); err != nil {
		utils.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeRequest decodes a JSON request body, rejecting unknown fields.
// On failure it writes a bad-request response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		utils.WriteErrorResponse(w, customerrors.NewClientError(customerrors.BAD_REQUEST, http.StatusBadRequest))
		return false
	}
	return true
}
