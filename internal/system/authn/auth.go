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
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/govsupport/welfare-matching-service/internal/system/cache"
	errors2 "github.com/govsupport/welfare-matching-service/internal/system/errors"
	"github.com/govsupport/welfare-matching-service/internal/system/log"
)

var claimsCache = cache.NewCache(5 * time.Minute)

// RequesterSub extracts the subject claim from the Authorization header.
// Token verification is the gateway's concern; an absent or unparseable
// token yields an empty sub, which downstream treats as a guest requester.
func RequesterSub(r *http.Request) string {

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := ParseJWTClaims(token)
	if err != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// ParseJWTClaims parses claims from a JWT without verifying the signature.
func ParseJWTClaims(tokenString string) (map[string]interface{}, error) {

	if cached, ok := claimsCache.Get(tokenString); ok {
		return cached.(map[string]interface{}), nil
	}

	if strings.Count(tokenString, ".") != 2 {
		logger := log.GetLogger()
		logger.Debug("Expecting a JWT token but received an opaque token.")
		return nil, errors2.NewClientError(errors2.UN_AUTHORIZED, http.StatusUnauthorized)
	}

	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims)
	if err != nil {
		logger := log.GetLogger()
		logger.Debug("Error occurred when parsing claims from JWT token.", log.Error(err))
		return nil, errors2.NewServerError(errors2.PARSING_ERROR, err)
	}

	claimsCache.Set(tokenString, map[string]interface{}(claims))
	return claims, nil
}
