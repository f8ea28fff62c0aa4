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

// Package rules translates requester profiles into catalog predicates.
// Every builder is a pure function of the profile; a nil result means the
// dimension has no opinion and must not restrict the catalog.
package rules

import (
	"time"

	"github.com/govsupport/welfare-matching-service/internal/catalog/model"
	"github.com/govsupport/welfare-matching-service/internal/catalog/predicate"
	profilemodel "github.com/govsupport/welfare-matching-service/internal/profile/model"
	"github.com/govsupport/welfare-matching-service/internal/system/constants"
)

// CombineKind says how a dimension participates in the composed predicate.
// OR-group dimensions are circumstantial: matching any one of them is enough.
// AND-group dimensions are hard gates that must all hold.
type CombineKind int

const (
	OrGroup CombineKind = iota
	AndGroup
)

// Audience discriminates household-facing from enterprise-facing programs.
type Audience string

const (
	AudiencePersonal Audience = "personal"
	AudienceBusiness Audience = "business"
)

// dimensionRule binds one eligibility dimension to its predicate builder.
// The composer interprets this table; builders never see each other.
type dimensionRule struct {
	name    string
	combine CombineKind
	build   func(p *profilemodel.PersonalProfile, now time.Time) predicate.Predicate
}

var personalRules = []dimensionRule{
	{"family_status", OrGroup, familyStatus},
	{"life_stage", OrGroup, lifeStage},
	{"other_status", OrGroup, otherStatus},
	{"primary_industry", OrGroup, primaryIndustry},
	{"academic_status", AndGroup, academicStatus},
	{"income_bracket", AndGroup, incomeBracket},
	{"gender", AndGroup, gender},
	{"age_range", AndGroup, ageRange},
}

// ComposePersonal merges the per-dimension predicates for a personal
// requester: any one OR-group dimension may qualify the requester, while
// every AND-group gate must hold. A nil profile composes to nil, leaving the
// catalog unrestricted.
func ComposePersonal(p *profilemodel.PersonalProfile, now time.Time) predicate.Predicate {
	if p == nil {
		return nil
	}

	var orParts, andParts []predicate.Predicate
	for _, rule := range personalRules {
		built := rule.build(p, now)
		if built == nil {
			continue
		}
		if rule.combine == OrGroup {
			orParts = append(orParts, built)
		} else {
			andParts = append(andParts, built)
		}
	}

	if len(orParts) == 0 && len(andParts) == 0 {
		return nil
	}
	if len(orParts) == 0 {
		return predicate.And(andParts...)
	}
	return predicate.And(append([]predicate.Predicate{predicate.Or(orParts...)}, andParts...)...)
}

// TypeFilter restricts the catalog to programs facing the given audience.
func TypeFilter(a Audience) predicate.Predicate {
	labels := constants.PersonalUserTypes
	if a == AudienceBusiness {
		labels = constants.BusinessUserTypes
	}
	terms := make([]predicate.Predicate, len(labels))
	for i, label := range labels {
		terms[i] = predicate.Contains("user_type", label)
	}
	return predicate.Or(terms...)
}

// TagFilter restricts the catalog to programs carrying the support-type tag.
func TagFilter(tag string) predicate.Predicate {
	return predicate.Contains("support_type", tag)
}

// KeywordFilter restricts the catalog by full-text search over name+summary.
func KeywordFilter(keyword string) predicate.Predicate {
	return predicate.TextSearch(keyword)
}

// ---------------------------------------------------------------------------
// OR-group dimensions
// ---------------------------------------------------------------------------

type flagBinding struct {
	flag  string
	value func(p *profilemodel.PersonalProfile) bool
}

func equalityTerms(p *profilemodel.PersonalProfile, bindings []flagBinding) []predicate.Predicate {
	terms := make([]predicate.Predicate, len(bindings))
	for i, b := range bindings {
		terms[i] = predicate.FlagEquals(b.flag, b.value(p))
	}
	return terms
}

var familyBindings = []flagBinding{
	{model.FlagMulticultural, func(p *profilemodel.PersonalProfile) bool { return p.Multicultural }},
	{model.FlagNorthKoreanDefector, func(p *profilemodel.PersonalProfile) bool { return p.NorthKorean }},
	{model.FlagSingleParent, func(p *profilemodel.PersonalProfile) bool { return p.SingleParentOrGrandparent }},
	{model.FlagMultiChild, func(p *profilemodel.PersonalProfile) bool { return p.MultiChildFamily }},
	{model.FlagHomeless, func(p *profilemodel.PersonalProfile) bool { return p.Homeless }},
	{model.FlagNewResident, func(p *profilemodel.PersonalProfile) bool { return p.NewResident }},
	{model.FlagExtendedFamily, func(p *profilemodel.PersonalProfile) bool { return p.ExtendFamily }},
}

// familyStatus matches by family circumstance. Programs declaring no family
// preference at all (every family flag false) stay eligible for everyone.
func familyStatus(p *profilemodel.PersonalProfile, _ time.Time) predicate.Predicate {
	terms := equalityTerms(p, familyBindings)

	if p.HouseholdSize != nil && *p.HouseholdSize == 1 {
		terms = append(terms, predicate.FlagEquals(model.FlagSinglePerson, true))
	}
	terms = append(terms, predicate.FlagEquals(model.FlagFamilyNA, true))

	noPreference := make([]predicate.Predicate, len(model.FamilyFlags))
	for i, flag := range model.FamilyFlags {
		noPreference[i] = predicate.FlagEquals(flag, false)
	}
	terms = append(terms, predicate.And(noPreference...))

	return predicate.Or(terms...)
}

var lifeBindings = []flagBinding{
	{model.FlagProspectiveParents, func(p *profilemodel.PersonalProfile) bool { return p.ProspectiveParentsOrInfertility }},
	{model.FlagPregnant, func(p *profilemodel.PersonalProfile) bool { return p.Pregnant }},
	{model.FlagChildbirthAdoption, func(p *profilemodel.PersonalProfile) bool { return p.ChildbirthOrAdoption }},
}

func lifeStage(p *profilemodel.PersonalProfile, _ time.Time) predicate.Predicate {
	return predicate.Or(equalityTerms(p, lifeBindings)...)
}

var otherBindings = []flagBinding{
	{model.FlagDisability, func(p *profilemodel.PersonalProfile) bool { return p.Disable }},
	{model.FlagVeteran, func(p *profilemodel.PersonalProfile) bool { return p.Veteran }},
	{model.FlagDisease, func(p *profilemodel.PersonalProfile) bool { return p.Disease }},
}

func otherStatus(p *profilemodel.PersonalProfile, _ time.Time) predicate.Predicate {
	return predicate.Or(equalityTerms(p, otherBindings)...)
}

var primaryIndustryBindings = []flagBinding{
	{model.FlagFarmers, func(p *profilemodel.PersonalProfile) bool { return p.Farmers }},
	{model.FlagFishermen, func(p *profilemodel.PersonalProfile) bool { return p.Fishermen }},
	{model.FlagLivestockFarmers, func(p *profilemodel.PersonalProfile) bool { return p.LivestockFarmers }},
	{model.FlagForestryWorkers, func(p *profilemodel.PersonalProfile) bool { return p.ForestryWorkers }},
}

func primaryIndustry(p *profilemodel.PersonalProfile, _ time.Time) predicate.Predicate {
	return predicate.Or(equalityTerms(p, primaryIndustryBindings)...)
}

// ---------------------------------------------------------------------------
// AND-group dimensions
// ---------------------------------------------------------------------------

var academicFlagByStatus = map[int]string{
	profilemodel.AcademicElementary: model.FlagElementaryStudent,
	profilemodel.AcademicMiddle:     model.FlagMiddleStudent,
	profilemodel.AcademicHigh:       model.FlagHighStudent,
	profilemodel.AcademicUniversity: model.FlagUniversityStudent,
}

// academicStatus handles the closed student-level enumeration. A requester
// with a known level matches programs targeting that level, programs setting
// no level at all, or programs flagged not-applicable. An unanswered status
// imposes no filter; a requester outside the enumeration only matches the
// no-preference and not-applicable shapes.
func academicStatus(p *profilemodel.PersonalProfile, _ time.Time) predicate.Predicate {
	if p.AcademicStatus == profilemodel.AcademicNone {
		return nil
	}
	allFalse := make([]predicate.Predicate, len(model.AcademicEnumFlags))
	allTrue := make([]predicate.Predicate, len(model.AcademicEnumFlags))
	for i, flag := range model.AcademicEnumFlags {
		allFalse[i] = predicate.FlagEquals(flag, false)
		allTrue[i] = predicate.FlagEquals(flag, true)
	}
	notApplicable := predicate.FlagEquals(model.FlagAcademicNA, true)

	if primary, ok := academicFlagByStatus[p.AcademicStatus]; ok {
		return predicate.Or(
			predicate.FlagEquals(primary, true),
			predicate.And(allFalse...),
			notApplicable,
		)
	}
	return predicate.Or(
		predicate.And(allTrue...),
		predicate.And(allFalse...),
		notApplicable,
	)
}

func incomeBracket(p *profilemodel.PersonalProfile, _ time.Time) predicate.Predicate {
	if p.Overcome == nil || p.HouseholdSize == nil {
		return nil
	}
	return IncomeBracket(*p.Overcome, *p.HouseholdSize)
}

func gender(p *profilemodel.PersonalProfile, _ time.Time) predicate.Predicate {
	switch p.Gender {
	case "male":
		return predicate.FlagEquals(model.FlagMale, true)
	case "female":
		return predicate.FlagEquals(model.FlagFemale, true)
	}
	return nil
}

func ageRange(p *profilemodel.PersonalProfile, now time.Time) predicate.Predicate {
	age := p.Age(now)
	if age == nil {
		return nil
	}
	return predicate.RangeWithin(model.FlagAgeMin, model.FlagAgeMax, *age)
}
