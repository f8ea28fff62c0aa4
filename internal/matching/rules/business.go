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

package rules

import (
	"github.com/govsupport/welfare-matching-service/internal/catalog/model"
	"github.com/govsupport/welfare-matching-service/internal/catalog/predicate"
	profilemodel "github.com/govsupport/welfare-matching-service/internal/profile/model"
)

// requirementGroup is one independent axis of business classification. A
// program that sets any flag in a group imposes a requirement on that axis;
// the business must then hold at least one of the flags the program set.
type requirementGroup struct {
	name  string
	flags []string
}

var requirementGroups = []requirementGroup{
	{"status", model.BusinessStatusFlags},
	{"industry", model.BusinessIndustryFlags},
	{"org_type", model.BusinessOrgTypeFlags},
}

// ComposeBusiness builds the implication check across all three requirement
// groups: for each group, either the program imposes no requirement or the
// business satisfies one of them. A business holding no flags at all is not
// restricted (unknown profile means do not filter).
func ComposeBusiness(b *profilemodel.BusinessProfile) predicate.Predicate {
	if b == nil {
		return nil
	}
	held := b.TrueFlags()
	if len(held) == 0 {
		return nil
	}

	checks := make([]predicate.Predicate, 0, len(requirementGroups))
	for _, group := range requirementGroups {
		requires := make([]predicate.Predicate, len(group.flags))
		var matches []predicate.Predicate
		for i, flag := range group.flags {
			requires[i] = predicate.FlagEquals(flag, true)
			if held[flag] {
				matches = append(matches, predicate.FlagEquals(flag, true))
			}
		}
		checks = append(checks, predicate.Or(
			predicate.Not(predicate.Or(requires...)),
			predicate.Or(matches...),
		))
	}
	return predicate.And(checks...)
}
