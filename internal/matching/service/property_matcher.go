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
	"math"
	"sort"
	"strings"

	"github.com/hlp-registry/property-records-service/internal/matching/model"
	"github.com/hlp-registry/property-records-service/internal/system/database/client"
	"github.com/hlp-registry/property-records-service/internal/system/database/scripts"
	"github.com/hlp-registry/property-records-service/internal/system/log"
	"github.com/hlp-registry/property-records-service/internal/system/utils"
)

const earthRadiusMeters = 6371000

// PropertyMatcher resolves building and unit identities using exact-ID
// blocking, spatial proximity and administrative-code agreement, in that
// order of cost and certainty. Geodesic distance is computed server-side
// when a spatial extension is available; otherwise a bounding-box
// prefilter plus in-process Haversine distance is used.
type PropertyMatcher struct {
	client     client.DBClientInterface
	policy     model.MatchingPolicy
	hasSpatial bool
}

// NewPropertyMatcher creates a property matcher bound to a query client
// and a matching policy. The spatial capability probe runs once here;
// any probe failure downgrades to the in-process fallback.
func NewPropertyMatcher(dbClient client.DBClientInterface, policy model.MatchingPolicy) *PropertyMatcher {

	m := &PropertyMatcher{
		client: dbClient,
		policy: policy,
	}
	m.hasSpatial = m.checkSpatialSupport()
	return m
}

func (m *PropertyMatcher) checkSpatialSupport() bool {

	query, ok := scripts.SpatialSupportProbe[m.client.DBType()]
	if !ok {
		return false
	}
	rows, err := m.client.ExecuteQuery(query)
	if err != nil {
		log.GetLogger().Debug("Spatial extension probe failed, using in-process distance fallback", log.Error(err))
		return false
	}
	return len(rows) > 0
}

// FindMatches finds existing buildings that likely describe the same
// property as the given record. The staging mirrors the person matcher:
// certain and cheap first, broad and fuzzy last.
func (m *PropertyMatcher) FindMatches(property model.PropertyRecord, threshold float64, limit int) (model.MatchResult, error) {

	entityType := property.EntityType
	if entityType == "" {
		entityType = model.EntityTypeBuilding
	}
	sourceID := property.SourceID()
	var candidates []model.MatchCandidate

	// Stage 1: exact building ID match.
	if entityType == model.EntityTypeBuilding && property.BuildingID != "" {
		rows, err := m.findBuildingByID(property.BuildingID)
		if err != nil {
			return model.MatchResult{}, err
		}
		for _, row := range rows {
			buildingID := utils.RowString(row, "building_id")
			if buildingID == sourceID {
				continue
			}
			candidates = append(candidates, model.MatchCandidate{
				EntityID:      buildingID,
				EntityType:    model.EntityTypeBuilding,
				Score:         m.policy.ExactScore,
				MatchType:     model.MatchTypeExact,
				MatchedFields: []model.MatchField{model.FieldBuildingID},
				FieldScores:   map[string]float64{"building_id": 1.0},
				EntityData:    row,
			})
		}
	}

	// Stage 2: spatial proximity, only when stage 1 found nothing.
	if len(candidates) == 0 && property.Latitude != nil && property.Longitude != nil {
		rows, err := m.findBySpatialProximity(*property.Latitude, *property.Longitude, m.policy.SpatialNeighborMeters)
		if err != nil {
			return model.MatchResult{}, err
		}
		for _, row := range rows {
			buildingID := utils.RowString(row, "building_id")
			if buildingID == sourceID {
				continue
			}
			distance, ok := utils.RowFloat(row, "distance")
			if !ok {
				continue
			}
			score := m.distanceToScore(distance)
			if score >= threshold {
				candidates = append(candidates, model.MatchCandidate{
					EntityID:      buildingID,
					EntityType:    model.EntityTypeBuilding,
					Score:         score,
					MatchType:     m.policy.MatchTypeForScore(score),
					MatchedFields: []model.MatchField{model.FieldCoordinates},
					FieldScores:   map[string]float64{"coordinates": score, "distance_m": distance},
					EntityData:    row,
				})
			}
		}
	}

	// Stage 3: administrative code agreement, only when no strong match
	// exists yet.
	if !hasHighConfidence(candidates, m.policy.HighConfidence) {
		rows, err := m.findByAdminCodes(property)
		if err != nil {
			return model.MatchResult{}, err
		}
		for _, row := range rows {
			buildingID := utils.RowString(row, "building_id")
			if buildingID == sourceID || containsCandidate(candidates, buildingID) {
				continue
			}
			score, fieldScores := m.calculateCodeScore(property, row)
			if score >= threshold {
				candidates = append(candidates, model.MatchCandidate{
					EntityID:      buildingID,
					EntityType:    model.EntityTypeBuilding,
					Score:         score,
					MatchType:     m.policy.MatchTypeForScore(score),
					MatchedFields: []model.MatchField{model.FieldAddress},
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

	return assembleResult(sourceID, entityType, candidates), nil
}

func (m *PropertyMatcher) findBuildingByID(buildingID string) ([]map[string]interface{}, error) {

	query := scripts.SelectBuildingByID[m.client.DBType()]
	return m.client.ExecuteQuery(query, buildingID)
}

// findBySpatialProximity returns buildings within radiusMeters of the
// point, each row carrying a "distance" column in meters.
func (m *PropertyMatcher) findBySpatialProximity(lat, lng, radiusMeters float64) ([]map[string]interface{}, error) {

	if m.hasSpatial {
		query := scripts.SelectBuildingsWithinRadius[m.client.DBType()]
		rows, err := m.client.ExecuteQuery(query, lng, lat, lng, lat, radiusMeters)
		if err == nil {
			return rows, nil
		}
		log.GetLogger().Warn("Spatial query failed, using bounding-box fallback", log.Error(err))
	}
	return m.findByBoundingBox(lat, lng, radiusMeters)
}

// findByBoundingBox prefilters with a degree box and computes Haversine
// distance in-process. The longitude correction uses cos(35°), the
// latitude band of the registry's coverage area.
func (m *PropertyMatcher) findByBoundingBox(lat, lng, radiusMeters float64) ([]map[string]interface{}, error) {

	degLat := radiusMeters / 111000
	degLng := radiusMeters / (111000 * 0.85)

	query := scripts.SelectBuildingsInBoundingBox[m.client.DBType()]
	rows, err := m.client.ExecuteQuery(query, lat-degLat, lat+degLat, lng-degLng, lng+degLng)
	if err != nil {
		return nil, err
	}

	var matches []map[string]interface{}
	for _, row := range rows {
		rowLat, latOK := utils.RowFloat(row, "latitude")
		rowLng, lngOK := utils.RowFloat(row, "longitude")
		if !latOK || !lngOK {
			continue
		}
		distance := haversineDistance(lat, lng, rowLat, rowLng)
		if distance <= radiusMeters {
			row["distance"] = distance
			matches = append(matches, row)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		di, _ := utils.RowFloat(matches[i], "distance")
		dj, _ := utils.RowFloat(matches[j], "distance")
		return di < dj
	})
	return matches, nil
}

// findByAdminCodes blocks on whichever administrative codes are present,
// AND-combined. This is a coarse filter; the final score comes from
// calculateCodeScore.
func (m *PropertyMatcher) findByAdminCodes(property model.PropertyRecord) ([]map[string]interface{}, error) {

	codes := []struct {
		column string
		value  string
	}{
		{"governorate_code", property.GovernorateCode},
		{"district_code", property.DistrictCode},
		{"subdistrict_code", property.SubdistrictCode},
		{"community_code", property.CommunityCode},
		{"neighborhood_code", property.NeighborhoodCode},
	}

	dbType := m.client.DBType()
	var conditions []string
	var params []interface{}

	for _, code := range codes {
		if code.value != "" {
			conditions = append(conditions, fmt.Sprintf("%s = %s", code.column, scripts.Placeholder(dbType, len(params)+1)))
			params = append(params, code.value)
		}
	}
	if len(conditions) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(scripts.SelectBuildingsByAdminCodes[dbType], strings.Join(conditions, " AND "))
	return m.client.ExecuteQuery(query, params...)
}

func (m *PropertyMatcher) calculateCodeScore(source model.PropertyRecord, target map[string]interface{}) (float64, map[string]float64) {

	sourceValues := map[string]string{
		"governorate_code":  source.GovernorateCode,
		"district_code":     source.DistrictCode,
		"subdistrict_code":  source.SubdistrictCode,
		"community_code":    source.CommunityCode,
		"neighborhood_code": source.NeighborhoodCode,
		"building_number":   source.BuildingNumber,
	}

	fieldScores := map[string]float64{}
	totalScore := 0.0
	totalWeight := 0.0

	for _, fw := range m.policy.CodeWeights {
		srcVal := sourceValues[fw.Field]
		tgtVal := utils.RowString(target, fw.Field)
		if srcVal != "" && tgtVal != "" {
			fieldScores[fw.Field] = exactScore(srcVal == tgtVal)
			totalScore += fieldScores[fw.Field] * fw.Weight
			totalWeight += fw.Weight
		}
	}

	if totalWeight == 0 {
		return 0.0, fieldScores
	}
	return totalScore / totalWeight, fieldScores
}

// distanceToScore converts a distance in meters to a match score via a
// piecewise-linear decay. Monotonically non-increasing in distance.
func (m *PropertyMatcher) distanceToScore(distance float64) float64 {

	switch {
	case distance <= m.policy.SpatialExactMeters:
		return 0.98
	case distance <= m.policy.SpatialNearMeters:
		return 0.90 - (distance/m.policy.SpatialNearMeters)*0.10
	case distance <= m.policy.SpatialNeighborMeters:
		return 0.80 - ((distance-m.policy.SpatialNearMeters)/(m.policy.SpatialNeighborMeters-m.policy.SpatialNearMeters))*0.20
	default:
		return math.Max(0.5, 0.60-(distance/1000)*0.10)
	}
}

// haversineDistance returns the great-circle distance in meters.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
