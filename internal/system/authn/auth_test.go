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

package authn

import (
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govsupport/welfare-matching-service/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func unsignedToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "."
}

func TestRequesterSub_NoAuthorizationHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/welfare", nil)
	assert.Empty(t, RequesterSub(r))
}

func TestRequesterSub_NonBearerScheme(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/welfare", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	assert.Empty(t, RequesterSub(r))
}

func TestRequesterSub_OpaqueToken_TreatedAsGuest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/welfare", nil)
	r.Header.Set("Authorization", "Bearer not-a-jwt")
	assert.Empty(t, RequesterSub(r))
}

func TestRequesterSub_ExtractsSubject(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/welfare", nil)
	r.Header.Set("Authorization", "Bearer "+unsignedToken(t, map[string]interface{}{"sub": "user-42"}))
	assert.Equal(t, "user-42", RequesterSub(r))
}

func TestRequesterSub_MissingSubClaim(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/welfare", nil)
	r.Header.Set("Authorization", "Bearer "+unsignedToken(t, map[string]interface{}{"aud": "wms"}))
	assert.Empty(t, RequesterSub(r))
}

func TestParseJWTClaims_CachesParsedClaims(t *testing.T) {
	token := unsignedToken(t, map[string]interface{}{"sub": "cached-user"})

	first, err := ParseJWTClaims(token)
	require.NoError(t, err)
	second, err := ParseJWTClaims(token)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "cached-user", second["sub"])
}
