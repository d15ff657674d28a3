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

import "github.com/hlp-registry/property-records-service/internal/system/config"

// PersonWeights holds the per-field weights for person scoring.
type PersonWeights struct {
	NationalID  float64
	Phone       float64
	Name        float64
	FatherName  float64
	YearOfBirth float64
	Gender      float64
}

// FieldWeight pairs an administrative-code column with its weight.
type FieldWeight struct {
	Field  string
	Weight float64
}

// MatchingPolicy is the immutable configuration for the matchers: field
// weights, confidence bands, staging gates and spatial radii. Matchers
// receive it at construction time so alternative policies can be compared
// without code changes.
type MatchingPolicy struct {
	ExactScore       float64
	HighConfidence   float64
	MediumConfidence float64
	LowConfidence    float64

	PersonWeights PersonWeights
	CodeWeights   []FieldWeight

	// Spatial proximity bands, meters.
	SpatialExactMeters    float64
	SpatialNearMeters     float64
	SpatialNeighborMeters float64

	PhoneSuffixDigits int
	NamePrefixLength  int

	CandidateLimit      int
	DuplicateQueueLimit int
}

// DefaultMatchingPolicy returns the policy the original field deployment
// was tuned with.
func DefaultMatchingPolicy() MatchingPolicy {

	return MatchingPolicy{
		ExactScore:       1.0,
		HighConfidence:   0.85,
		MediumConfidence: 0.70,
		LowConfidence:    0.50,
		PersonWeights: PersonWeights{
			NationalID:  0.40,
			Phone:       0.15,
			Name:        0.25,
			FatherName:  0.10,
			YearOfBirth: 0.05,
			Gender:      0.05,
		},
		CodeWeights: []FieldWeight{
			{Field: "governorate_code", Weight: 0.25},
			{Field: "district_code", Weight: 0.20},
			{Field: "subdistrict_code", Weight: 0.20},
			{Field: "community_code", Weight: 0.15},
			{Field: "neighborhood_code", Weight: 0.10},
			{Field: "building_number", Weight: 0.10},
		},
		SpatialExactMeters:    5,
		SpatialNearMeters:     20,
		SpatialNeighborMeters: 50,
		PhoneSuffixDigits:     9,
		NamePrefixLength:      3,
		CandidateLimit:        10,
		DuplicateQueueLimit:   50,
	}
}

// PolicyFromConfig applies deployment overrides on top of the defaults.
// Zero values keep the default.
func PolicyFromConfig(cfg config.MatchingConfig) MatchingPolicy {

	policy := DefaultMatchingPolicy()
	if cfg.HighConfidence > 0 {
		policy.HighConfidence = cfg.HighConfidence
	}
	if cfg.MediumConfidence > 0 {
		policy.MediumConfidence = cfg.MediumConfidence
	}
	if cfg.LowConfidence > 0 {
		policy.LowConfidence = cfg.LowConfidence
	}
	if cfg.SpatialRadiusMeters > 0 {
		policy.SpatialNeighborMeters = cfg.SpatialRadiusMeters
	}
	if cfg.CandidateLimit > 0 {
		policy.CandidateLimit = cfg.CandidateLimit
	}
	if cfg.DuplicateQueueLimit > 0 {
		policy.DuplicateQueueLimit = cfg.DuplicateQueueLimit
	}
	return policy
}

// MatchTypeForScore maps a score to its confidence band.
func (p MatchingPolicy) MatchTypeForScore(score float64) MatchType {

	switch {
	case score >= p.HighConfidence:
		return MatchTypeHigh
	case score >= p.MediumConfidence:
		return MatchTypeMedium
	case score >= p.LowConfidence:
		return MatchTypeLow
	default:
		return MatchTypeNone
	}
}
