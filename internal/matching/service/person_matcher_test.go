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
	"database/sql"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlp-registry/property-records-service/internal/matching/model"
	"github.com/hlp-registry/property-records-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

// fakeDBClient routes queries to test-provided functions. It reports the
// sqlite dialect so script lookups resolve without a spatial extension.
type fakeDBClient struct {
	queryFn  func(query string, args ...interface{}) ([]map[string]interface{}, error)
	updateFn func(query string, args ...interface{}) (int64, error)
}

func (f *fakeDBClient) ExecuteQuery(query string, args ...interface{}) ([]map[string]interface{}, error) {
	if f.queryFn == nil {
		return nil, nil
	}
	return f.queryFn(query, args...)
}

func (f *fakeDBClient) ExecuteUpdate(query string, args ...interface{}) (int64, error) {
	if f.updateFn == nil {
		return 0, nil
	}
	return f.updateFn(query, args...)
}

func (f *fakeDBClient) BeginTx() (*sql.Tx, error) { return nil, nil }

func (f *fakeDBClient) DBType() string { return "sqlite" }

func (f *fakeDBClient) Close() error { return nil }

func (f *fakeDBClient) InitDatabase(prsHome, file string) error { return nil }

func personRow(id, nationalID, first, last string) map[string]interface{} {
	return map[string]interface{}{
		"person_id":   id,
		"national_id": nationalID,
		"first_name":  first,
		"last_name":   last,
	}
}

// ---------------------------------------------------------------------------
// Stage 1 – exact national ID
// ---------------------------------------------------------------------------

func TestPersonMatcher_ExactNationalID(t *testing.T) {
	dbClient := &fakeDBClient{
		queryFn: func(query string, args ...interface{}) ([]map[string]interface{}, error) {
			if strings.Contains(query, "national_id = ?") {
				return []map[string]interface{}{personRow("p-1", "12345", "محمد", "أحمد")}, nil
			}
			return nil, nil
		},
	}
	matcher := NewPersonMatcher(dbClient, model.DefaultMatchingPolicy())

	result, err := matcher.FindMatches(model.PersonRecord{NationalID: "12345"}, 0.5, 10)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "p-1", result.Candidates[0].EntityID)
	assert.Equal(t, model.MatchTypeExact, result.Candidates[0].MatchType)
	assert.Equal(t, 1.0, result.Candidates[0].Score)
	assert.Equal(t, []model.MatchField{model.FieldNationalID}, result.Candidates[0].MatchedFields)
	require.NotNil(t, result.BestMatch)
	assert.Equal(t, model.MatchTypeExact, result.MatchType)
}

func TestPersonMatcher_ExactMatchExcludesSelf(t *testing.T) {
	dbClient := &fakeDBClient{
		queryFn: func(query string, args ...interface{}) ([]map[string]interface{}, error) {
			if strings.Contains(query, "national_id = ?") {
				return []map[string]interface{}{personRow("p-1", "12345", "محمد", "أحمد")}, nil
			}
			return nil, nil
		},
	}
	matcher := NewPersonMatcher(dbClient, model.DefaultMatchingPolicy())

	result, err := matcher.FindMatches(model.PersonRecord{PersonID: "p-1", NationalID: "12345"}, 0.5, 10)
	require.NoError(t, err)

	assert.Empty(t, result.Candidates)
	assert.Nil(t, result.BestMatch)
	assert.Equal(t, model.MatchTypeNone, result.MatchType)
}

// ---------------------------------------------------------------------------
// Stage 2 – phone suffix
// ---------------------------------------------------------------------------

func TestPersonMatcher_PhoneMatchSkippedAfterExactHit(t *testing.T) {
	phoneQueried := false
	dbClient := &fakeDBClient{
		queryFn: func(query string, args ...interface{}) ([]map[string]interface{}, error) {
			switch {
			case strings.Contains(query, "national_id = ?"):
				return []map[string]interface{}{personRow("p-1", "12345", "محمد", "أحمد")}, nil
			case strings.Contains(query, "LIKE"):
				phoneQueried = true
			}
			return nil, nil
		},
	}
	matcher := NewPersonMatcher(dbClient, model.DefaultMatchingPolicy())

	_, err := matcher.FindMatches(model.PersonRecord{NationalID: "12345", PhoneNumber: "0912345678"}, 0.5, 10)
	require.NoError(t, err)
	assert.False(t, phoneQueried)
}

func TestPersonMatcher_PhoneSuffixAbsorbsCountryCode(t *testing.T) {
	row := personRow("p-2", "", "محمد", "أحمد")
	row["phone_number"] = "+963 912 345 678"
	dbClient := &fakeDBClient{
		queryFn: func(query string, args ...interface{}) ([]map[string]interface{}, error) {
			if strings.Contains(query, "phone_number") && strings.Contains(query, "LIKE") {
				return []map[string]interface{}{row}, nil
			}
			return nil, nil
		},
	}
	matcher := NewPersonMatcher(dbClient, model.DefaultMatchingPolicy())

	result, err := matcher.FindMatches(model.PersonRecord{
		PhoneNumber: "0912345678",
		FirstName:   "محمد",
		LastName:    "أحمد",
	}, 0.5, 10)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "p-2", result.Candidates[0].EntityID)
	// Last nine digits agree, so the phone field scores full marks.
	assert.Equal(t, 1.0, result.Candidates[0].FieldScores["phone"])
	assert.Equal(t, 1.0, result.Candidates[0].FieldScores["name"])
}

// ---------------------------------------------------------------------------
// Stage 3 – loose name search
// ---------------------------------------------------------------------------

func TestPersonMatcher_NameStageSkippedWhenHighConfidenceExists(t *testing.T) {
	nameQueried := false
	row := personRow("p-2", "", "محمد", "أحمد")
	row["phone_number"] = "0912345678"
	dbClient := &fakeDBClient{
		queryFn: func(query string, args ...interface{}) ([]map[string]interface{}, error) {
			switch {
			case strings.Contains(query, "phone_number") && strings.Contains(query, "REPLACE"):
				return []map[string]interface{}{row}, nil
			case strings.Contains(query, "first_name LIKE"):
				nameQueried = true
			}
			return nil, nil
		},
	}
	matcher := NewPersonMatcher(dbClient, model.DefaultMatchingPolicy())

	_, err := matcher.FindMatches(model.PersonRecord{
		PhoneNumber: "0912345678",
		FirstName:   "محمد",
		LastName:    "أحمد",
	}, 0.5, 10)
	require.NoError(t, err)
	assert.False(t, nameQueried)
}

func TestPersonMatcher_NameStageDeduplicatesCandidates(t *testing.T) {
	row := personRow("p-2", "", "محمد", "أحمد")
	row["phone_number"] = "0911111111"
	dbClient := &fakeDBClient{
		queryFn: func(query string, args ...interface{}) ([]map[string]interface{}, error) {
			switch {
			case strings.Contains(query, "REPLACE"):
				return []map[string]interface{}{row}, nil
			case strings.Contains(query, "first_name LIKE"):
				return []map[string]interface{}{row}, nil
			}
			return nil, nil
		},
	}
	matcher := NewPersonMatcher(dbClient, model.DefaultMatchingPolicy())

	// The weak name similarity keeps the stage-2 candidate below high
	// confidence, so stage 3 still runs and returns the same person.
	result, err := matcher.FindMatches(model.PersonRecord{
		PhoneNumber: "0911111111",
		FirstName:   "محمد",
		LastName:    "يوسف",
	}, 0.3, 10)
	require.NoError(t, err)

	ids := map[string]int{}
	for _, c := range result.Candidates {
		ids[c.EntityID]++
	}
	assert.LessOrEqual(t, ids["p-2"], 1)
}

// ---------------------------------------------------------------------------
// Scoring
// ---------------------------------------------------------------------------

func TestPersonMatcher_ScoreNormalizedByWeightsUsed(t *testing.T) {
	matcher := NewPersonMatcher(&fakeDBClient{}, model.DefaultMatchingPolicy())

	// Only names are comparable; identical names must score 1.0 even with
	// every other field missing.
	score, fieldScores := matcher.calculateScore(
		model.PersonRecord{FirstName: "محمد", LastName: "أحمد"},
		personRow("p-9", "", "محمد", "أحمد"),
	)
	assert.Equal(t, 1.0, score)
	assert.Equal(t, 1.0, fieldScores["name"])
}

func TestPersonMatcher_YearOfBirthBands(t *testing.T) {
	matcher := NewPersonMatcher(&fakeDBClient{}, model.DefaultMatchingPolicy())

	target := personRow("p-9", "", "محمد", "أحمد")
	target["year_of_birth"] = int64(1980)

	_, exact := matcher.calculateScore(model.PersonRecord{FirstName: "محمد", LastName: "أحمد", YearOfBirth: "1980"}, target)
	assert.Equal(t, 1.0, exact["year_of_birth"])

	_, near := matcher.calculateScore(model.PersonRecord{FirstName: "محمد", LastName: "أحمد", YearOfBirth: "1982"}, target)
	assert.Equal(t, 0.5, near["year_of_birth"])

	_, far := matcher.calculateScore(model.PersonRecord{FirstName: "محمد", LastName: "أحمد", YearOfBirth: "1990"}, target)
	assert.Equal(t, 0.0, far["year_of_birth"])
}

func TestPersonMatcher_NonNumericYearNotComparable(t *testing.T) {
	matcher := NewPersonMatcher(&fakeDBClient{}, model.DefaultMatchingPolicy())

	target := personRow("p-9", "", "محمد", "أحمد")
	target["year_of_birth"] = int64(1980)

	score, fieldScores := matcher.calculateScore(
		model.PersonRecord{FirstName: "محمد", LastName: "أحمد", YearOfBirth: "unknown"},
		target,
	)
	_, compared := fieldScores["year_of_birth"]
	assert.False(t, compared)
	assert.Equal(t, 1.0, score)
}

func TestPersonMatcher_NoComparableFieldsScoresZero(t *testing.T) {
	matcher := NewPersonMatcher(&fakeDBClient{}, model.DefaultMatchingPolicy())

	score, fieldScores := matcher.calculateScore(model.PersonRecord{}, map[string]interface{}{})
	assert.Equal(t, 0.0, score)
	assert.Empty(t, fieldScores)
}

// ---------------------------------------------------------------------------
// Result shaping
// ---------------------------------------------------------------------------

func TestPersonMatcher_CandidatesSortedAndCapped(t *testing.T) {
	rows := []map[string]interface{}{
		personRow("p-1", "", "محمد", "أحمد"),
		personRow("p-2", "", "محمد", "خالد"),
		personRow("p-3", "", "محمد", "يوسف"),
	}
	dbClient := &fakeDBClient{
		queryFn: func(query string, args ...interface{}) ([]map[string]interface{}, error) {
			if strings.Contains(query, "first_name LIKE") {
				return rows, nil
			}
			return nil, nil
		},
	}
	matcher := NewPersonMatcher(dbClient, model.DefaultMatchingPolicy())

	result, err := matcher.FindMatches(model.PersonRecord{FirstName: "محمد", LastName: "أحمد"}, 0.1, 2)
	require.NoError(t, err)

	require.Len(t, result.Candidates, 2)
	assert.GreaterOrEqual(t, result.Candidates[0].Score, result.Candidates[1].Score)
	assert.Equal(t, "p-1", result.Candidates[0].EntityID)
}

func TestPhoneSuffix(t *testing.T) {
	assert.Equal(t, "912345678", phoneSuffix("+963 912-345-678", 9))
	assert.Equal(t, "12345", phoneSuffix("12345", 9))
	assert.Equal(t, "", phoneSuffix("no digits", 9))
}

func TestNamePrefix_RuneSafe(t *testing.T) {
	assert.Equal(t, "محم", namePrefix("محمد", 3))
	assert.Equal(t, "مح", namePrefix("مح", 3))
}
