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

// Package store persists the duplicate-resolution queue.
package store

import (
	"strings"

	"github.com/hlp-registry/property-records-service/internal/matching/model"
	"github.com/hlp-registry/property-records-service/internal/system/database/client"
	"github.com/hlp-registry/property-records-service/internal/system/database/scripts"
	customerrors "github.com/hlp-registry/property-records-service/internal/system/errors"
	"github.com/hlp-registry/property-records-service/internal/system/log"
	"github.com/hlp-registry/property-records-service/internal/system/utils"
)

// AddDuplicateEntry inserts a new pending entry into the duplicate queue.
func AddDuplicateEntry(dbClient client.DBClientInterface, entry model.DuplicateEntry) error {

	logger := log.GetLogger()

	query := scripts.InsertDuplicateEntry[dbClient.DBType()]
	_, err := dbClient.ExecuteUpdate(query, entry.ID, entry.SourceID, entry.SourceType,
		entry.CandidateID, entry.Score, strings.Join(entry.MatchedFields, ","),
		entry.Status, entry.CreatedAt)
	if err != nil {
		logger.Debug("Error while inserting a duplicate queue entry", log.Error(err))
		return customerrors.NewServerError(customerrors.ADD_DUPLICATE_ENTRY, err)
	}

	return nil
}

// GetDuplicateQueue returns queue entries with the given status, highest
// score first and oldest first within a score.
func GetDuplicateQueue(dbClient client.DBClientInterface, status string, limit int) ([]model.DuplicateEntry, error) {

	logger := log.GetLogger()

	query := scripts.SelectDuplicateQueue[dbClient.DBType()]
	rows, err := dbClient.ExecuteQuery(query, status, limit)
	if err != nil {
		logger.Debug("Error while fetching the duplicate queue", log.Error(err))
		return nil, customerrors.NewServerError(customerrors.GET_DUPLICATE_QUEUE, err)
	}

	entries := make([]model.DuplicateEntry, 0, len(rows))
	for _, row := range rows {
		score, _ := utils.RowFloat(row, "score")
		entry := model.DuplicateEntry{
			ID:          utils.RowString(row, "id"),
			SourceID:    utils.RowString(row, "source_id"),
			SourceType:  utils.RowString(row, "source_type"),
			CandidateID: utils.RowString(row, "candidate_id"),
			Score:       score,
			Status:      utils.RowString(row, "status"),
			CreatedAt:   utils.RowString(row, "created_at"),
			ResolvedAt:  utils.RowString(row, "resolved_at"),
			ResolvedBy:  utils.RowString(row, "resolved_by"),
			Resolution:  utils.RowString(row, "resolution"),
		}
		if fields := utils.RowString(row, "matched_fields"); fields != "" {
			entry.MatchedFields = strings.Split(fields, ",")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ResolveDuplicateEntry marks a pending entry as resolved and returns the
// number of rows updated. Zero means the entry does not exist or was
// already resolved.
func ResolveDuplicateEntry(dbClient client.DBClientInterface, queueID, resolution, resolvedBy,
	resolvedAt string) (int64, error) {

	logger := log.GetLogger()

	query := scripts.ResolveDuplicateEntry[dbClient.DBType()]
	affected, err := dbClient.ExecuteUpdate(query, model.QueueStatusResolved, resolution,
		resolvedAt, resolvedBy, queueID)
	if err != nil {
		logger.Debug("Error while resolving a duplicate queue entry", log.Error(err))
		return 0, customerrors.NewServerError(customerrors.RESOLVE_DUPLICATE, err)
	}

	return affected, nil
}
