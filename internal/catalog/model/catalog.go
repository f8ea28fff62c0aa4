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

// Eligibility flag columns of the gov_welfare catalog. Each flag belongs to
// exactly one dimension; the JA codes come from the upstream government data
// feed and are preserved verbatim.
const (
	// Age bounds (integers, nullable; absent bound means unbounded)
	FlagAgeMin = "JA0110"
	FlagAgeMax = "JA0111"

	// Gender
	FlagMale   = "JA0101"
	FlagFemale = "JA0102"

	// Income brackets (median-income ratio)
	FlagIncomeLTE50   = "JA0201" // <= 50%
	FlagIncome51To75  = "JA0202" // 51-75%
	FlagIncome76To100 = "JA0203" // 76-100%
	FlagIncome101To200 = "JA0204" // 101-200%
	FlagIncomeGTE201  = "JA0205" // >= 201%

	// Life stage
	FlagProspectiveParents = "JA0301"
	FlagPregnant           = "JA0302"
	FlagChildbirthAdoption = "JA0303"

	// Primary industry
	FlagFarmers          = "JA0313"
	FlagFishermen        = "JA0314"
	FlagLivestockFarmers = "JA0315"
	FlagForestryWorkers  = "JA0316"

	// Academic status
	FlagElementaryStudent = "JA0317"
	FlagMiddleStudent     = "JA0318"
	FlagHighStudent       = "JA0319"
	FlagUniversityStudent = "JA0320"
	FlagAcademicNA        = "JA0322" // not applicable

	// Working status (present in the feed; no matching rule consumes these)
	FlagEmployed  = "JA0326"
	FlagJobSeeker = "JA0327"

	// Other status
	FlagDisability = "JA0328"
	FlagVeteran    = "JA0329"
	FlagDisease    = "JA0330"

	// Family status
	FlagMulticultural     = "JA0401"
	FlagNorthKoreanDefector = "JA0402"
	FlagSingleParent      = "JA0403"
	FlagSinglePerson      = "JA0404"
	FlagFamilyNA          = "JA0410" // not applicable
	FlagMultiChild        = "JA0411"
	FlagHomeless          = "JA0412"
	FlagNewResident       = "JA0413"
	FlagExtendedFamily    = "JA0414"

	// Business operating status
	FlagProspectiveFounder = "JA1101"
	FlagOperating          = "JA1102"
	FlagStruggling         = "JA1103"

	// Business industry
	FlagFoodService       = "JA1201"
	FlagManufacturing     = "JA1202"
	FlagOtherIndustry     = "JA1299"
	FlagOrgManufacturing  = "JA2201"
	FlagOrgAgriculture    = "JA2202"
	FlagOrgIT             = "JA2203"
	FlagOrgOtherIndustry  = "JA2299"

	// Organization type
	FlagSME             = "JA2101"
	FlagWelfareFacility = "JA2102"
	FlagInstitution     = "JA2103"
)

// Dimension flag sets. The composer and the business group resolver iterate
// these; order matters only for deterministic SQL output.
var (
	IncomeFlags = []string{
		FlagIncomeLTE50, FlagIncome51To75, FlagIncome76To100,
		FlagIncome101To200, FlagIncomeGTE201,
	}

	AcademicEnumFlags = []string{
		FlagElementaryStudent, FlagMiddleStudent, FlagHighStudent,
		FlagUniversityStudent,
	}

	FamilyFlags = []string{
		FlagMulticultural, FlagNorthKoreanDefector, FlagSingleParent,
		FlagSinglePerson, FlagFamilyNA, FlagMultiChild, FlagHomeless,
		FlagNewResident, FlagExtendedFamily,
	}

	BusinessStatusFlags = []string{
		FlagProspectiveFounder, FlagOperating, FlagStruggling,
	}

	BusinessIndustryFlags = []string{
		FlagFoodService, FlagManufacturing, FlagOtherIndustry,
		FlagOrgManufacturing, FlagOrgAgriculture, FlagOrgIT,
		FlagOrgOtherIndustry,
	}

	BusinessOrgTypeFlags = []string{
		FlagSME, FlagWelfareFacility, FlagInstitution,
	}
)

// AllFlagColumns lists every boolean eligibility flag on the catalog table.
var AllFlagColumns = []string{
	FlagMale, FlagFemale,
	FlagIncomeLTE50, FlagIncome51To75, FlagIncome76To100, FlagIncome101To200, FlagIncomeGTE201,
	FlagProspectiveParents, FlagPregnant, FlagChildbirthAdoption,
	FlagFarmers, FlagFishermen, FlagLivestockFarmers, FlagForestryWorkers,
	FlagElementaryStudent, FlagMiddleStudent, FlagHighStudent, FlagUniversityStudent, FlagAcademicNA,
	FlagEmployed, FlagJobSeeker,
	FlagDisability, FlagVeteran, FlagDisease,
	FlagMulticultural, FlagNorthKoreanDefector, FlagSingleParent, FlagSinglePerson,
	FlagFamilyNA, FlagMultiChild, FlagHomeless, FlagNewResident, FlagExtendedFamily,
	FlagProspectiveFounder, FlagOperating, FlagStruggling,
	FlagFoodService, FlagManufacturing, FlagOtherIndustry,
	FlagSME, FlagWelfareFacility, FlagInstitution,
	FlagOrgManufacturing, FlagOrgAgriculture, FlagOrgIT, FlagOrgOtherIndustry,
}
