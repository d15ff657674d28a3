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

// PersonMatchRequest asks for matches against one person record. A zero
// threshold means "use the configured low-confidence floor".
type PersonMatchRequest struct {
	Person    PersonRecord `json:"person"`
	Threshold float64      `json:"threshold,omitempty"`
}

// PersonBatchMatchRequest asks for matches against many person records.
type PersonBatchMatchRequest struct {
	Persons   []PersonRecord `json:"persons"`
	Threshold float64        `json:"threshold,omitempty"`
}

// PropertyMatchRequest asks for matches against one property record.
type PropertyMatchRequest struct {
	Property  PropertyRecord `json:"property"`
	Threshold float64        `json:"threshold,omitempty"`
}

// PropertyBatchMatchRequest asks for matches against many property records.
type PropertyBatchMatchRequest struct {
	Properties []PropertyRecord `json:"properties"`
	Threshold  float64          `json:"threshold,omitempty"`
}

// EnqueueDuplicateRequest records a matched pair for human review.
type EnqueueDuplicateRequest struct {
	SourceID      string   `json:"source_id"`
	SourceType    string   `json:"source_type"`
	CandidateID   string   `json:"candidate_id"`
	Score         float64  `json:"score"`
	MatchedFields []string `json:"matched_fields,omitempty"`
}

// EnqueueDuplicateResponse carries the id of the created queue entry.
type EnqueueDuplicateResponse struct {
	QueueID string `json:"queue_id"`
}

// ResolveDuplicateRequest records a reviewer's decision on a queue entry.
type ResolveDuplicateRequest struct {
	Resolution string `json:"resolution"`
	ResolvedBy string `json:"resolved_by,omitempty"`
}
