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

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlp-registry/property-records-service/internal/matching/model"
	customerrors "github.com/hlp-registry/property-records-service/internal/system/errors"
)

func TestDuplicateQueue_EnqueueAndList(t *testing.T) {
	svc := getService(t)

	lowID, err := svc.AddToDuplicateQueue("q-src-1", "person", "q-cand-1", 0.72, []string{"name"})
	require.NoError(t, err)
	highID, err := svc.AddToDuplicateQueue("q-src-2", "person", "q-cand-2", 0.95, []string{"national_id", "name"})
	require.NoError(t, err)

	entries, err := svc.GetDuplicateQueue("", 0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(entries), 2)

	// Highest score first.
	positions := map[string]int{}
	for i, e := range entries {
		positions[e.ID] = i
		assert.Equal(t, model.QueueStatusPending, e.Status)
	}
	require.Contains(t, positions, lowID)
	require.Contains(t, positions, highID)
	assert.Less(t, positions[highID], positions[lowID])
}

func TestDuplicateQueue_MatchedFieldsRoundTrip(t *testing.T) {
	svc := getService(t)

	id, err := svc.AddToDuplicateQueue("q-src-3", "building", "q-cand-3", 0.88, []string{"coordinates", "address"})
	require.NoError(t, err)

	entries, err := svc.GetDuplicateQueue(model.QueueStatusPending, 100)
	require.NoError(t, err)

	var entry *model.DuplicateEntry
	for i := range entries {
		if entries[i].ID == id {
			entry = &entries[i]
			break
		}
	}
	require.NotNil(t, entry)
	assert.Equal(t, []string{"coordinates", "address"}, entry.MatchedFields)
	assert.Equal(t, "building", entry.SourceType)
	assert.Equal(t, 0.88, entry.Score)
}

func TestDuplicateQueue_ResolveLifecycle(t *testing.T) {
	svc := getService(t)

	id, err := svc.AddToDuplicateQueue("q-src-4", "person", "q-cand-4", 0.91, []string{"national_id"})
	require.NoError(t, err)

	err = svc.ResolveDuplicate(id, model.ResolutionMerge, "reviewer-1")
	require.NoError(t, err)

	resolved, err := svc.GetDuplicateQueue(model.QueueStatusResolved, 100)
	require.NoError(t, err)

	var entry *model.DuplicateEntry
	for i := range resolved {
		if resolved[i].ID == id {
			entry = &resolved[i]
			break
		}
	}
	require.NotNil(t, entry)
	assert.Equal(t, model.ResolutionMerge, entry.Resolution)
	assert.Equal(t, "reviewer-1", entry.ResolvedBy)
	assert.NotEmpty(t, entry.ResolvedAt)

	// A second resolve of the same entry must report not-found.
	err = svc.ResolveDuplicate(id, model.ResolutionSkip, "reviewer-2")
	require.Error(t, err)
	clientErr, ok := err.(*customerrors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestDuplicateQueue_ResolveUnknownEntry(t *testing.T) {
	svc := getService(t)

	err := svc.ResolveDuplicate("00000000-0000-0000-0000-000000000000", model.ResolutionKeepExisting, "reviewer-1")
	require.Error(t, err)

	clientErr, ok := err.(*customerrors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}
