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

package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hlp-registry/property-records-service/internal/matching/model"
	"github.com/hlp-registry/property-records-service/internal/matching/names"
	"github.com/hlp-registry/property-records-service/internal/system/database/client"
	"github.com/hlp-registry/property-records-service/internal/system/database/scripts"
	"github.com/hlp-registry/property-records-service/internal/system/utils"
)

// PersonMatcher resolves person identities across records using staged
// blocking: cheap exact lookups first, broadening to fuzzy name search
// only when no strong signal has been found.
type PersonMatcher struct {
	client client.DBClientInterface
	policy model.MatchingPolicy
}

// NewPersonMatcher creates a person matcher bound to a query client and
// a matching policy.
func NewPersonMatcher(dbClient client.DBClientInterface, policy model.MatchingPolicy) *PersonMatcher {

	return &PersonMatcher{
		client: dbClient,
		policy: policy,
	}
}

// FindMatches finds existing person records that are likely the same
// individual as the given record. Candidates are scored, filtered by the
// threshold, sorted descending and capped at limit. Exact national-ID
// hits bypass threshold filtering by construction.
func (m *PersonMatcher) FindMatches(person model.PersonRecord, threshold float64, limit int) (model.MatchResult, error) {

	sourceID := person.PersonID
	if sourceID == "" {
		sourceID = "new"
	}
	var candidates []model.MatchCandidate

	// Stage 1: exact national ID match (blocking).
	if person.NationalID != "" {
		rows, err := m.findByNationalID(person.NationalID)
		if err != nil {
			return model.MatchResult{}, err
		}
		for _, row := range rows {
			personID := utils.RowString(row, "person_id")
			if personID == sourceID {
				continue
			}
			candidates = append(candidates, model.MatchCandidate{
				EntityID:      personID,
				EntityType:    model.EntityTypePerson,
				Score:         m.policy.ExactScore,
				MatchType:     model.MatchTypeExact,
				MatchedFields: []model.MatchField{model.FieldNationalID},
				FieldScores:   map[string]float64{"national_id": 1.0},
				EntityData:    row,
			})
		}
	}

	// Stage 2: phone number match, only when stage 1 found nothing.
	if phone := person.Phone(); phone != "" && len(candidates) == 0 {
		rows, err := m.findByPhone(phone)
		if err != nil {
			return model.MatchResult{}, err
		}
		for _, row := range rows {
			personID := utils.RowString(row, "person_id")
			if personID == sourceID {
				continue
			}
			score, fieldScores := m.calculateScore(person, row)
			if score >= threshold {
				candidates = append(candidates, model.MatchCandidate{
					EntityID:      personID,
					EntityType:    model.EntityTypePerson,
					Score:         score,
					MatchType:     m.policy.MatchTypeForScore(score),
					MatchedFields: []model.MatchField{model.FieldPhone},
					FieldScores:   fieldScores,
					EntityData:    row,
				})
			}
		}
	}

	// Stage 3: loose name search, only when no strong match exists yet.
	if !hasHighConfidence(candidates, m.policy.HighConfidence) && (person.FirstName != "" || person.LastName != "") {
		rows, err := m.findByName(person.FirstName, person.LastName)
		if err != nil {
			return model.MatchResult{}, err
		}
		for _, row := range rows {
			personID := utils.RowString(row, "person_id")
			if personID == sourceID || containsCandidate(candidates, personID) {
				continue
			}
			score, fieldScores := m.calculateScore(person, row)
			if score >= threshold {
				matchedFields := []model.MatchField{model.FieldName}
				if fieldScores["father_name"] > 0.5 {
					matchedFields = append(matchedFields, model.FieldFatherName)
				}
				candidates = append(candidates, model.MatchCandidate{
					EntityID:      personID,
					EntityType:    model.EntityTypePerson,
					Score:         score,
					MatchType:     m.policy.MatchTypeForScore(score),
					MatchedFields: matchedFields,
					FieldScores:   fieldScores,
					EntityData:    row,
				})
			}
		}
	}

	sortCandidates(candidates)
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return assembleResult(sourceID, model.EntityTypePerson, candidates), nil
}

func (m *PersonMatcher) findByNationalID(nationalID string) ([]map[string]interface{}, error) {

	query := scripts.SelectPersonsByNationalID[m.client.DBType()]
	return m.client.ExecuteQuery(query, nationalID)
}

func (m *PersonMatcher) findByPhone(phone string) ([]map[string]interface{}, error) {

	suffix := phoneSuffix(phone, m.policy.PhoneSuffixDigits)
	pattern := "%" + suffix

	query := scripts.SelectPersonsByPhoneSuffix[m.client.DBType()]
	return m.client.ExecuteQuery(query, pattern, pattern)
}

func (m *PersonMatcher) findByName(firstName, lastName string) ([]map[string]interface{}, error) {

	normFirst := names.NormalizeArabic(firstName)
	normLast := names.NormalizeArabic(lastName)

	dbType := m.client.DBType()
	var conditions []string
	var params []interface{}

	if normFirst != "" {
		conditions = append(conditions, fmt.Sprintf("first_name LIKE %s", scripts.Placeholder(dbType, len(params)+1)))
		params = append(params, "%"+namePrefix(normFirst, m.policy.NamePrefixLength)+"%")
	}
	if normLast != "" {
		conditions = append(conditions, fmt.Sprintf("last_name LIKE %s", scripts.Placeholder(dbType, len(params)+1)))
		params = append(params, "%"+namePrefix(normLast, m.policy.NamePrefixLength)+"%")
	}
	if len(conditions) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(scripts.SelectPersonsByNamePrefix[dbType], strings.Join(conditions, " OR "))
	return m.client.ExecuteQuery(query, params...)
}

// calculateScore computes the weighted multi-attribute score between the
// source record and a stored row. Only fields present on both sides
// participate; the sum is normalized by the weights actually used so
// missing fields do not deflate the score.
func (m *PersonMatcher) calculateScore(source model.PersonRecord, target map[string]interface{}) (float64, map[string]float64) {

	weights := m.policy.PersonWeights
	fieldScores := map[string]float64{}
	totalScore := 0.0
	totalWeight := 0.0

	// National ID
	tgtNationalID := utils.RowString(target, "national_id")
	if source.NationalID != "" && tgtNationalID != "" {
		fieldScores["national_id"] = exactScore(source.NationalID == tgtNationalID)
		totalScore += fieldScores["national_id"] * weights.NationalID
		totalWeight += weights.NationalID
	}

	// Phone, compared on the digit suffix to absorb country-code variation.
	srcPhone := source.Phone()
	tgtPhone := utils.RowString(target, "phone_number")
	if tgtPhone == "" {
		tgtPhone = utils.RowString(target, "mobile_number")
	}
	if srcPhone != "" && tgtPhone != "" {
		srcSuffix := phoneSuffix(srcPhone, m.policy.PhoneSuffixDigits)
		tgtSuffix := phoneSuffix(tgtPhone, m.policy.PhoneSuffixDigits)
		fieldScores["phone"] = exactScore(srcSuffix == tgtSuffix)
		totalScore += fieldScores["phone"] * weights.Phone
		totalWeight += weights.Phone
	}

	// Full name similarity
	srcName := strings.TrimSpace(source.FirstName + " " + source.LastName)
	tgtName := strings.TrimSpace(utils.RowString(target, "first_name") + " " + utils.RowString(target, "last_name"))
	if srcName != "" && tgtName != "" {
		fieldScores["name"] = names.CalculateSimilarity(srcName, tgtName)
		totalScore += fieldScores["name"] * weights.Name
		totalWeight += weights.Name
	}

	// Father name
	tgtFather := utils.RowString(target, "father_name")
	if source.FatherName != "" && tgtFather != "" {
		fieldScores["father_name"] = names.CalculateSimilarity(source.FatherName, tgtFather)
		totalScore += fieldScores["father_name"] * weights.FatherName
		totalWeight += weights.FatherName
	}

	// Year of birth: operator-entered, so a non-numeric value on either
	// side makes the field not comparable rather than failing the match.
	if source.YearOfBirth != "" {
		srcYear, srcErr := strconv.Atoi(strings.TrimSpace(source.YearOfBirth))
		tgtYear, tgtOK := utils.RowInt(target, "year_of_birth")
		if srcErr == nil && tgtOK {
			diff := srcYear - tgtYear
			if diff < 0 {
				diff = -diff
			}
			switch {
			case diff == 0:
				fieldScores["year_of_birth"] = 1.0
			case diff <= 2:
				fieldScores["year_of_birth"] = 0.5
			default:
				fieldScores["year_of_birth"] = 0.0
			}
			totalScore += fieldScores["year_of_birth"] * weights.YearOfBirth
			totalWeight += weights.YearOfBirth
		}
	}

	// Gender
	tgtGender := utils.RowString(target, "gender")
	if source.Gender != "" && tgtGender != "" {
		fieldScores["gender"] = exactScore(strings.EqualFold(source.Gender, tgtGender))
		totalScore += fieldScores["gender"] * weights.Gender
		totalWeight += weights.Gender
	}

	if totalWeight == 0 {
		return 0.0, fieldScores
	}
	return totalScore / totalWeight, fieldScores
}

func exactScore(equal bool) float64 {
	if equal {
		return 1.0
	}
	return 0.0
}

// phoneSuffix strips non-digits and keeps the last n digits, absorbing
// leading country-code and zero variation.
func phoneSuffix(phone string, n int) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > n {
		return digits[len(digits)-n:]
	}
	return digits
}

func namePrefix(name string, n int) string {
	runes := []rune(name)
	if len(runes) > n {
		return string(runes[:n])
	}
	return name
}

func hasHighConfidence(candidates []model.MatchCandidate, threshold float64) bool {
	for _, c := range candidates {
		if c.Score >= threshold {
			return true
		}
	}
	return false
}

func containsCandidate(candidates []model.MatchCandidate, entityID string) bool {
	for _, c := range candidates {
		if c.EntityID == entityID {
			return true
		}
	}
	return false
}

func sortCandidates(candidates []model.MatchCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

func assembleResult(sourceID string, sourceType model.EntityType, candidates []model.MatchCandidate) model.MatchResult {

	result := model.MatchResult{
		SourceID:   sourceID,
		SourceType: sourceType,
		Candidates: candidates,
		MatchType:  model.MatchTypeNone,
		Timestamp:  time.Now().UTC(),
	}
	if len(candidates) > 0 {
		best := candidates[0]
		result.BestMatch = &best
		result.MatchType = best.MatchType
	}
	return result
}
