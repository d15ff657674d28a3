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

package scripts

import "fmt"

// Placeholder returns the positional parameter marker for the given dialect.
// Postgres uses $n, SQLite uses ?.
func Placeholder(dbType string, n int) string {
	if dbType == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// SpatialSupportProbe checks whether spatial-extension functions are
// available. Only defined for postgres; a missing entry means no support.
var SpatialSupportProbe = map[string]string{
	"postgres": `SELECT PostGIS_Version()`,
}

var SelectPersonsByNationalID = map[string]string{
	"postgres": `SELECT person_id, national_id, first_name, father_name, last_name,
       phone_number, mobile_number, gender, year_of_birth
FROM persons WHERE national_id = $1`,
	"sqlite": `SELECT person_id, national_id, first_name, father_name, last_name,
       phone_number, mobile_number, gender, year_of_birth
FROM persons WHERE national_id = ?`,
}

var SelectPersonsByPhoneSuffix = map[string]string{
	"postgres": `SELECT person_id, national_id, first_name, father_name, last_name,
       phone_number, mobile_number, gender, year_of_birth
FROM persons
WHERE REPLACE(REPLACE(phone_number, ' ', ''), '-', '') LIKE $1
   OR REPLACE(REPLACE(mobile_number, ' ', ''), '-', '') LIKE $2
LIMIT 20`,
	"sqlite": `SELECT person_id, national_id, first_name, father_name, last_name,
       phone_number, mobile_number, gender, year_of_birth
FROM persons
WHERE REPLACE(REPLACE(phone_number, ' ', ''), '-', '') LIKE ?
   OR REPLACE(REPLACE(mobile_number, ' ', ''), '-', '') LIKE ?
LIMIT 20`,
}

// SelectPersonsByNamePrefix is the base of the loose name-blocking query;
// the matcher appends LIKE conditions with dialect placeholders.
var SelectPersonsByNamePrefix = map[string]string{
	"postgres": `SELECT person_id, national_id, first_name, father_name, last_name,
       phone_number, mobile_number, gender, year_of_birth
FROM persons
WHERE %s
LIMIT 50`,
	"sqlite": `SELECT person_id, national_id, first_name, father_name, last_name,
       phone_number, mobile_number, gender, year_of_birth
FROM persons
WHERE %s
LIMIT 50`,
}

var SelectBuildingByID = map[string]string{
	"postgres": `SELECT building_id, governorate_code, district_code, subdistrict_code,
       community_code, neighborhood_code, building_number,
       building_type, latitude, longitude
FROM buildings WHERE building_id = $1`,
	"sqlite": `SELECT building_id, governorate_code, district_code, subdistrict_code,
       community_code, neighborhood_code, building_number,
       building_type, latitude, longitude
FROM buildings WHERE building_id = ?`,
}

// SelectBuildingsWithinRadius computes true geodesic distance server-side.
// PostGIS only; the bounding-box query below is the fallback.
var SelectBuildingsWithinRadius = map[string]string{
	"postgres": `SELECT building_id, governorate_code, district_code, subdistrict_code,
       community_code, neighborhood_code, building_number,
       building_type, latitude, longitude,
       ST_Distance(
           ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
           ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography
       ) AS distance
FROM buildings
WHERE ST_DWithin(
    ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
    ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography,
    $5
)
ORDER BY distance
LIMIT 20`,
}

var SelectBuildingsInBoundingBox = map[string]string{
	"postgres": `SELECT building_id, governorate_code, district_code, subdistrict_code,
       community_code, neighborhood_code, building_number,
       building_type, latitude, longitude
FROM buildings
WHERE latitude BETWEEN $1 AND $2
  AND longitude BETWEEN $3 AND $4
LIMIT 50`,
	"sqlite": `SELECT building_id, governorate_code, district_code, subdistrict_code,
       community_code, neighborhood_code, building_number,
       building_type, latitude, longitude
FROM buildings
WHERE latitude BETWEEN ? AND ?
  AND longitude BETWEEN ? AND ?
LIMIT 50`,
}

// SelectBuildingsByAdminCodes is the base of the administrative-code
// blocking query; the matcher appends equality conditions.
var SelectBuildingsByAdminCodes = map[string]string{
	"postgres": `SELECT building_id, governorate_code, district_code, subdistrict_code,
       community_code, neighborhood_code, building_number,
       building_type, latitude, longitude
FROM buildings
WHERE %s
LIMIT 50`,
	"sqlite": `SELECT building_id, governorate_code, district_code, subdistrict_code,
       community_code, neighborhood_code, building_number,
       building_type, latitude, longitude
FROM buildings
WHERE %s
LIMIT 50`,
}

var InsertDuplicateEntry = map[string]string{
	"postgres": `INSERT INTO duplicate_candidates (
    id, source_id, source_type, candidate_id,
    score, matched_fields, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
	"sqlite": `INSERT INTO duplicate_candidates (
    id, source_id, source_type, candidate_id,
    score, matched_fields, status, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
}

var SelectDuplicateQueue = map[string]string{
	"postgres": `SELECT id, source_id, source_type, candidate_id,
       score, matched_fields, status, created_at, resolved_at, resolved_by, resolution
FROM duplicate_candidates
WHERE status = $1
ORDER BY score DESC, created_at ASC
LIMIT $2`,
	"sqlite": `SELECT id, source_id, source_type, candidate_id,
       score, matched_fields, status, created_at, resolved_at, resolved_by, resolution
FROM duplicate_candidates
WHERE status = ?
ORDER BY score DESC, created_at ASC
LIMIT ?`,
}

// ResolveDuplicateEntry guards on the pending status so a second resolve
// of the same entry affects zero rows.
var ResolveDuplicateEntry = map[string]string{
	"postgres": `UPDATE duplicate_candidates
SET status = $1, resolution = $2, resolved_at = $3, resolved_by = $4
WHERE id = $5 AND status = 'pending'`,
	"sqlite": `UPDATE duplicate_candidates
SET status = ?, resolution = ?, resolved_at = ?, resolved_by = ?
WHERE id = ? AND status = 'pending'`,
}
