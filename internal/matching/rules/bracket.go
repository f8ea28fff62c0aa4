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

	"github.com/govsupport/welfare-matching-service/internal/catalog/model"
	"github.com/govsupport/welfare-matching-service/internal/catalog/predicate"
)

// Median-income thresholds (KRW/month) by household size, published annually
// with the catalog feed. Sizes past the table extrapolate linearly.
var incomeThresholds = map[int]int64{
	1: 2392013,
	2: 3932658,
	3: 5025253,
	4: 6097773,
	5: 7108192,
	6: 8064805,
	7: 8988428,
}

const (
	maxTabulatedHousehold = 7
	thresholdStep         = 923623
)

// incomeBrackets maps ratio ceilings to bracket flags, ascending. Bracket
// selection takes the first ceiling at or above the requester's ratio, not a
// cumulative union of lower brackets.
var incomeBrackets = []struct {
	ceiling float64
	flag    string
}{
	{0.5, model.FlagIncomeLTE50},
	{0.75, model.FlagIncome51To75},
	{1.0, model.FlagIncome76To100},
	{2.0, model.FlagIncome101To200},
	{math.Inf(1), model.FlagIncomeGTE201},
}

func householdThreshold(size int) int64 {
	if t, ok := incomeThresholds[size]; ok {
		return t
	}
	return incomeThresholds[maxTabulatedHousehold] + thresholdStep*int64(size-maxTabulatedHousehold)
}

func selectBracket(ratio float64) (float64, string) {
	for _, b := range incomeBrackets {
		if ratio <= b.ceiling {
			return b.ceiling, b.flag
		}
	}
	last := incomeBrackets[len(incomeBrackets)-1]
	return last.ceiling, last.flag
}

// IncomeBracket resolves the minimal qualifying income bracket for the
// requester and matches programs targeting that bracket, or programs that
// declare no income restriction at all (every bracket flag false).
func IncomeBracket(overcome int64, householdSize int) predicate.Predicate {
	ratio := float64(overcome) / float64(householdThreshold(householdSize))
	_, flag := selectBracket(ratio)

	noRestriction := make([]predicate.Predicate, len(model.IncomeFlags))
	for i, f := range model.IncomeFlags {
		noRestriction[i] = predicate.FlagEquals(f, false)
	}

	return predicate.Or(
		predicate.And(noRestriction...),
		predicate.FlagEquals(flag, true),
	)
}
