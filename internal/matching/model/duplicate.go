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

package model

// Duplicate queue statuses.
const (
	QueueStatusPending  = "pending"
	QueueStatusResolved = "resolved"
)

// Duplicate resolutions.
const (
	ResolutionMerge        = "merge"
	ResolutionKeepExisting = "keep_existing"
	ResolutionKeepNew      = "keep_new"
	ResolutionSkip         = "skip"
)

// IsValidResolution reports whether a resolution value is one of the
// accepted decisions.
func IsValidResolution(resolution string) bool {
	switch resolution {
	case ResolutionMerge, ResolutionKeepExisting, ResolutionKeepNew, ResolutionSkip:
		return true
	}
	return false
}

// IsValidQueueStatus reports whether a queue status value is known.
func IsValidQueueStatus(status string) bool {
	return status == QueueStatusPending || status == QueueStatusResolved
}

// DuplicateEntry is a persisted matched pair awaiting a human decision.
// Entries are never deleted; resolution is recorded in place.
type DuplicateEntry struct {
	ID            string   `json:"id"`
	SourceID      string   `json:"source_id"`
	SourceType    string   `json:"source_type"`
	CandidateID   string   `json:"candidate_id"`
	Score         float64  `json:"score"`
	MatchedFields []string `json:"matched_fields"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
	ResolvedAt    string   `json:"resolved_at,omitempty"`
	ResolvedBy    string   `json:"resolved_by,omitempty"`
	Resolution    string   `json:"resolution,omitempty"`
}
