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

import "time"

// MatchType is the confidence band derived from a candidate score.
type MatchType string

const (
	MatchTypeExact  MatchType = "exact"
	MatchTypeHigh   MatchType = "high"
	MatchTypeMedium MatchType = "medium"
	MatchTypeLow    MatchType = "low"
	MatchTypeNone   MatchType = "no_match"
)

// MatchField identifies a record attribute that contributed to a match.
type MatchField string

const (
	FieldNationalID  MatchField = "national_id"
	FieldPhone       MatchField = "phone"
	FieldName        MatchField = "name"
	FieldFatherName  MatchField = "father_name"
	FieldYearOfBirth MatchField = "year_of_birth"
	FieldGender      MatchField = "gender"

	FieldBuildingID  MatchField = "building_id"
	FieldUnitID      MatchField = "unit_id"
	FieldAddress     MatchField = "address"
	FieldCoordinates MatchField = "coordinates"
)

// MatchCandidate is a scored potential duplicate.
type MatchCandidate struct {
	EntityID      string                 `json:"entity_id"`
	EntityType    EntityType             `json:"entity_type"`
	Score         float64                `json:"score"`
	MatchType     MatchType              `json:"match_type"`
	MatchedFields []MatchField           `json:"matched_fields"`
	FieldScores   map[string]float64     `json:"field_scores"`
	EntityData    map[string]interface{} `json:"entity_data"`
}

// MatchResult is the outcome of one matching request. Candidates are
// ordered descending by score and capped at the caller-supplied limit.
type MatchResult struct {
	SourceID   string           `json:"source_id"`
	SourceType EntityType       `json:"source_type"`
	Candidates []MatchCandidate `json:"candidates"`
	BestMatch  *MatchCandidate  `json:"best_match,omitempty"`
	MatchType  MatchType        `json:"match_type"`
	Timestamp  time.Time        `json:"timestamp"`
}
