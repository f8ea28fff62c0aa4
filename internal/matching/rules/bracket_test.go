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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/govsupport/welfare-matching-service/internal/catalog/model"
	"github.com/govsupport/welfare-matching-service/internal/catalog/predicate"
)

// ---------------------------------------------------------------------------
// Threshold table
// ---------------------------------------------------------------------------

func TestHouseholdThreshold_TabulatedSizes(t *testing.T) {
	assert.Equal(t, int64(2392013), householdThreshold(1))
	assert.Equal(t, int64(3932658), householdThreshold(2))
	assert.Equal(t, int64(5025253), householdThreshold(3))
	assert.Equal(t, int64(6097773), householdThreshold(4))
	assert.Equal(t, int64(7108192), householdThreshold(5))
	assert.Equal(t, int64(8064805), householdThreshold(6))
	assert.Equal(t, int64(8988428), householdThreshold(7))
}

func TestHouseholdThreshold_ExtrapolatesPastTable(t *testing.T) {
	assert.Equal(t, int64(8988428+923623), householdThreshold(8))
	assert.Equal(t, int64(8988428+3*923623), householdThreshold(10))
}

func TestHouseholdThreshold_Monotonic(t *testing.T) {
	prev := householdThreshold(1)
	for size := 2; size <= 12; size++ {
		cur := householdThreshold(size)
		assert.Greater(t, cur, prev, "threshold must grow with household size %d", size)
		prev = cur
	}
}

// ---------------------------------------------------------------------------
// Bracket selection
// ---------------------------------------------------------------------------

func TestSelectBracket_FirstCeilingAtOrAboveRatio(t *testing.T) {
	cases := []struct {
		ratio float64
		flag  string
	}{
		{0.0, model.FlagIncomeLTE50},
		{0.5, model.FlagIncomeLTE50},
		{0.51, model.FlagIncome51To75},
		{0.75, model.FlagIncome51To75},
		{0.76, model.FlagIncome76To100},
		{1.0, model.FlagIncome76To100},
		{1.5, model.FlagIncome101To200},
		{2.0, model.FlagIncome101To200},
		{2.01, model.FlagIncomeGTE201},
		{10.0, model.FlagIncomeGTE201},
	}
	for _, tc := range cases {
		_, flag := selectBracket(tc.ratio)
		assert.Equal(t, tc.flag, flag, "ratio %v", tc.ratio)
	}
}

func TestSelectBracket_TopBracketUnbounded(t *testing.T) {
	ceiling, flag := selectBracket(math.Inf(1))
	assert.True(t, math.IsInf(ceiling, 1))
	assert.Equal(t, model.FlagIncomeGTE201, flag)
}

// ---------------------------------------------------------------------------
// Composed income predicate
// ---------------------------------------------------------------------------

func TestIncomeBracket_MatchesSelectedBracketOrNoRestriction(t *testing.T) {
	// Single household earning half the median lands in the lowest bracket.
	p := IncomeBracket(1196006, 1)

	noRestriction := predicate.Row{}
	targetsLowest := predicate.Row{model.FlagIncomeLTE50: true}
	targetsHigher := predicate.Row{model.FlagIncome101To200: true}

	assert.True(t, p.Eval(noRestriction), "programs without income flags stay eligible")
	assert.True(t, p.Eval(targetsLowest))
	assert.False(t, p.Eval(targetsHigher), "other brackets must not match")
}

func TestIncomeBracket_BracketIsExactNotCumulative(t *testing.T) {
	// Ratio just above 1.0 selects the 101-200% bracket only.
	p := IncomeBracket(2500000, 1)

	assert.True(t, p.Eval(predicate.Row{model.FlagIncome101To200: true}))
	assert.False(t, p.Eval(predicate.Row{model.FlagIncomeLTE50: true}))
	assert.False(t, p.Eval(predicate.Row{model.FlagIncomeGTE201: true}))
}
