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

package constants

const ApiBasePath = "/api/v1"
const WelfareApiPath = "welfare"
const ProfileApiPath = "profiles"

// Default ordering column for welfare search results.
const DefaultOrderColumn = "views"

// user_type labels as they appear in the ingested catalog data. The catalog
// records Korean audience labels; personal requesters match household-facing
// programs, business requesters match enterprise-facing ones.
var (
	PersonalUserTypes = []string{"개인", "가구"}
	BusinessUserTypes = []string{"법인", "시설", "단체", "소상공인"}
)
