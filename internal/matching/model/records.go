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

// EntityType identifies the kind of record being matched.
type EntityType string

const (
	EntityTypePerson   EntityType = "person"
	EntityTypeBuilding EntityType = "building"
	EntityTypeUnit     EntityType = "unit"
)

// PersonRecord is a candidate person submitted for matching. Any subset
// of fields may be present; empty strings mean the field is absent.
// YearOfBirth stays a string because the data is operator-entered and a
// non-numeric value must degrade to "not comparable", not fail the match.
type PersonRecord struct {
	PersonID     string `json:"person_id,omitempty"`
	NationalID   string `json:"national_id,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	FatherName   string `json:"father_name,omitempty"`
	YearOfBirth  string `json:"year_of_birth,omitempty"`
	Gender       string `json:"gender,omitempty"`
}

// Phone returns the preferred contact number for comparison.
func (p PersonRecord) Phone() string {
	if p.PhoneNumber != "" {
		return p.PhoneNumber
	}
	return p.MobileNumber
}

// PropertyRecord is a candidate building or unit submitted for matching.
// EntityType is stated explicitly by the caller rather than inferred from
// which id fields happen to be set.
type PropertyRecord struct {
	EntityType       EntityType `json:"entity_type"`
	BuildingID       string     `json:"building_id,omitempty"`
	UnitID           string     `json:"unit_id,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	GovernorateCode  string     `json:"governorate_code,omitempty"`
	DistrictCode     string     `json:"district_code,omitempty"`
	SubdistrictCode  string     `json:"subdistrict_code,omitempty"`
	CommunityCode    string     `json:"community_code,omitempty"`
	NeighborhoodCode string     `json:"neighborhood_code,omitempty"`
	BuildingNumber   string     `json:"building_number,omitempty"`
}

// SourceID returns the identifier of the submitted record, or "new" for
// records that do not exist in the store yet.
func (p PropertyRecord) SourceID() string {
	if p.BuildingID != "" {
		return p.BuildingID
	}
	if p.UnitID != "" {
		return p.UnitID
	}
	return "new"
}
