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

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFrom(t *testing.T, target string) (Page, error) {
	t.Helper()
	return Parse(httptest.NewRequest("GET", target, nil))
}

func TestParse_Defaults(t *testing.T) {
	page, err := parseFrom(t, "/api/v1/welfare")
	require.NoError(t, err)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, 10, page.Size)
}

func TestParse_ExplicitValues(t *testing.T) {
	page, err := parseFrom(t, "/api/v1/welfare?page=3&size=15")
	require.NoError(t, err)
	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 15, page.Size)
	assert.Equal(t, 45, page.Offset())
}

func TestParse_SizeCapped(t *testing.T) {
	page, err := parseFrom(t, "/api/v1/welfare?size=500")
	require.NoError(t, err)
	assert.Equal(t, 20, page.Size)
}

func TestParse_NegativePageRejected(t *testing.T) {
	_, err := parseFrom(t, "/api/v1/welfare?page=-1")
	assert.Error(t, err)
}

func TestParse_ZeroSizeRejected(t *testing.T) {
	_, err := parseFrom(t, "/api/v1/welfare?size=0")
	assert.Error(t, err)
}

func TestParse_NonNumericRejected(t *testing.T) {
	_, err := parseFrom(t, "/api/v1/welfare?page=abc")
	assert.Error(t, err)
}
