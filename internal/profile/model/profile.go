/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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

// Academic status values carried on the personal profile.
const (
	AcademicNone       = 0
	AcademicElementary = 1
	AcademicMiddle     = 2
	AcademicHigh       = 3
	AcademicUniversity = 4
)

// PersonalProfile is the sparse personal answer sheet for matching. Optional
// numeric fields are pointers; nil means the requester never answered, which
// downstream treats as "do not filter on this dimension".
type PersonalProfile struct {
	ProfileID string     `bson:"profile_id" json:"profile_id"`
	Sub       string     `bson:"sub" json:"sub"`
	Birthdate *time.Time `bson:"birthdate,omitempty" json:"birthdate,omitempty"`
	Gender    string     `bson:"gender,omitempty" json:"gender,omitempty"`

	// Income: self-reported monthly income and household size feed the
	// median-income bracket resolver.
	Overcome      *int64 `bson:"overcome,omitempty" json:"overcome,omitempty"`
	HouseholdSize *int   `bson:"household_size,omitempty" json:"household_size,omitempty"`

	Multicultural             bool `bson:"multicultural" json:"multicultural"`
	NorthKorean               bool `bson:"north_korean" json:"north_korean"`
	SingleParentOrGrandparent bool `bson:"single_parent_or_grandparent" json:"single_parent_or_grandparent"`
	Homeless                  bool `bson:"homeless" json:"homeless"`
	NewResident               bool `bson:"new_resident" json:"new_resident"`
	MultiChildFamily          bool `bson:"multi_child_family" json:"multi_child_family"`
	ExtendFamily              bool `bson:"extend_family" json:"extend_family"`

	Disable bool `bson:"disable" json:"disable"`
	Veteran bool `bson:"veteran" json:"veteran"`
	Disease bool `bson:"disease" json:"disease"`

	ProspectiveParentsOrInfertility bool `bson:"prospective_parents_or_infertility" json:"prospective_parents_or_infertility"`
	Pregnant                        bool `bson:"pregnant" json:"pregnant"`
	ChildbirthOrAdoption            bool `bson:"childbirth_or_adoption" json:"childbirth_or_adoption"`

	Farmers          bool `bson:"farmers" json:"farmers"`
	Fishermen        bool `bson:"fishermen" json:"fishermen"`
	LivestockFarmers bool `bson:"livestock_farmers" json:"livestock_farmers"`
	ForestryWorkers  bool `bson:"forestry_workers" json:"forestry_workers"`

	AcademicStatus int `bson:"academic_status" json:"academic_status"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BusinessProfile carries the requester's business classification flags
// across the three requirement groups (operating status, industry,
// organization type).
type BusinessProfile struct {
	ProfileID string `bson:"profile_id" json:"profile_id"`
	Sub       string `bson:"sub" json:"sub"`

	// Operating status
	JA1101 bool `bson:"ja1101" json:"ja1101"` // prospective founder
	JA1102 bool `bson:"ja1102" json:"ja1102"` // currently operating
	JA1103 bool `bson:"ja1103" json:"ja1103"` // struggling / closing

	// Industry
	JA1201 bool `bson:"ja1201" json:"ja1201"` // food service
	JA1202 bool `bson:"ja1202" json:"ja1202"` // manufacturing
	JA1299 bool `bson:"ja1299" json:"ja1299"` // other industry
	JA2201 bool `bson:"ja2201" json:"ja2201"` // manufacturing (org)
	JA2202 bool `bson:"ja2202" json:"ja2202"` // agriculture, forestry, fishery
	JA2203 bool `bson:"ja2203" json:"ja2203"` // information & communication
	JA2299 bool `bson:"ja2299" json:"ja2299"` // other industry (org)

	// Organization type
	JA2101 bool `bson:"ja2101" json:"ja2101"` // SME
	JA2102 bool `bson:"ja2102" json:"ja2102"` // social welfare facility
	JA2103 bool `bson:"ja2103" json:"ja2103"` // institution / organization

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TrueFlags returns the set of catalog flag codes the business actually
// holds.
func (b *BusinessProfile) TrueFlags() map[string]bool {
	flags := map[string]bool{
		"JA1101": b.JA1101, "JA1102": b.JA1102, "JA1103": b.JA1103,
		"JA1201": b.JA1201, "JA1202": b.JA1202, "JA1299": b.JA1299,
		"JA2201": b.JA2201, "JA2202": b.JA2202, "JA2203": b.JA2203,
		"JA2299": b.JA2299, "JA2101": b.JA2101, "JA2102": b.JA2102,
		"JA2103": b.JA2103,
	}
	held := make(map[string]bool)
	for code, set := range flags {
		if set {
			held[code] = true
		}
	}
	return held
}

// Age derives the requester's western age from the birthdate at the given
// time. Returns nil when the birthdate is unknown.
func (p *PersonalProfile) Age(now time.Time) *int {
	if p == nil || p.Birthdate == nil {
		return nil
	}
	b := *p.Birthdate
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return &age
}
