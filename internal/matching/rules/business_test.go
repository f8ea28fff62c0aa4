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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govsupport/welfare-matching-service/internal/catalog/model"
	"github.com/govsupport/welfare-matching-service/internal/catalog/predicate"
	profilemodel "github.com/govsupport/welfare-matching-service/internal/profile/model"
)

func TestComposeBusiness_NilProfile_NoFilter(t *testing.T) {
	assert.Nil(t, ComposeBusiness(nil))
}

func TestComposeBusiness_NoFlagsHeld_NoFilter(t *testing.T) {
	assert.Nil(t, ComposeBusiness(&profilemodel.BusinessProfile{}))
}

// An operating business with no industry flags. A program
// requiring a specific industry excludes it even though the status group
// imposes nothing.
func TestComposeBusiness_IndustryRequirementExcludesUnclassified(t *testing.T) {
	business := &profilemodel.BusinessProfile{JA1102: true} // operating
	pred := ComposeBusiness(business)
	require.NotNil(t, pred)

	foodServiceOnly := predicate.Row{model.FlagFoodService: true}
	assert.False(t, pred.Eval(foodServiceOnly))
}

func TestComposeBusiness_NoRequirementGroupPasses(t *testing.T) {
	business := &profilemodel.BusinessProfile{JA1102: true}
	pred := ComposeBusiness(business)
	require.NotNil(t, pred)

	// Program imposing nothing in any group passes for every business.
	assert.True(t, pred.Eval(predicate.Row{}))
}

func TestComposeBusiness_MatchingRequirementPasses(t *testing.T) {
	business := &profilemodel.BusinessProfile{
		JA1102: true, // operating
		JA1201: true, // food service
	}
	pred := ComposeBusiness(business)
	require.NotNil(t, pred)

	cases := []struct {
		name string
		row  predicate.Row
		want bool
	}{
		{"requires held status", predicate.Row{model.FlagOperating: true}, true},
		{"requires held industry", predicate.Row{model.FlagFoodService: true}, true},
		{"requires unheld status", predicate.Row{model.FlagProspectiveFounder: true}, false},
		{"requires unheld org type", predicate.Row{model.FlagSME: true}, false},
		{"any held flag satisfies its group", predicate.Row{model.FlagOperating: true, model.FlagFoodService: true}, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pred.Eval(tc.row), tc.name)
	}
}

func TestComposeBusiness_GroupsAreIndependent(t *testing.T) {
	business := &profilemodel.BusinessProfile{
		JA1103: true, // struggling
		JA2102: true, // welfare facility
	}
	pred := ComposeBusiness(business)
	require.NotNil(t, pred)

	// Status group satisfied, org-type group requires an unheld flag.
	row := predicate.Row{model.FlagStruggling: true, model.FlagSME: true}
	assert.False(t, pred.Eval(row))

	row = predicate.Row{model.FlagStruggling: true, model.FlagWelfareFacility: true}
	assert.True(t, pred.Eval(row))
}
