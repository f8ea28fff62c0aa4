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

// TableName is the catalog table populated by the ingestion pipeline.
const TableName = "gov_welfare"

// Non-flag columns of the catalog table.
var metadataColumns = []string{
	"id", "created_at", "updated_at", "views",
	"user_type",
	"service_id", "service_name", "service_summary", "service_category",
	"service_conditions", "service_description",
	"offc_name", "dept_name", "dept_type", "dept_code",
	"apply_period", "apply_method", "apply_url", "document",
	"receiving_agency", "contact",
	"support_details", "support_targets", "support_type",
	"detail_url", "law",
}

var orderableColumns = buildColumnSet()

func buildColumnSet() map[string]struct{} {
	set := make(map[string]struct{}, len(metadataColumns)+len(AllFlagColumns)+2)
	for _, c := range metadataColumns {
		set[c] = struct{}{}
	}
	for _, c := range AllFlagColumns {
		set[c] = struct{}{}
	}
	set[FlagAgeMin] = struct{}{}
	set[FlagAgeMax] = struct{}{}
	return set
}

// IsCatalogColumn reports whether name is a known column of the catalog
// table. Order-by parameters are validated against this set.
func IsCatalogColumn(name string) bool {
	_, ok := orderableColumns[name]
	return ok
}

// PersonalProjectionColumns is the reduced column set returned to personal
// requesters. Eligibility flags are matching-internal and never projected.
var PersonalProjectionColumns = []string{
	"id", "views", "service_id", "service_name", "service_summary",
	"service_category", "service_conditions", "service_description",
	"apply_period", "apply_url", "detail_url", "document",
	"receiving_agency", "offc_name", "contact", "support_details",
}

// BusinessProjectionColumns extends the personal set with the department and
// support-target fields shown to enterprise requesters.
var BusinessProjectionColumns = append(append([]string{}, PersonalProjectionColumns...),
	"dept_name", "dept_type", "support_targets")

// numericProjectionColumns are projected without text coalescing.
var numericProjectionColumns = map[string]struct{}{
	"id":    {},
	"views": {},
}

// IsNumericColumn reports whether a projection column is numeric.
func IsNumericColumn(name string) bool {
	_, ok := numericProjectionColumns[name]
	return ok
}

// Projection is the API shape of a catalog row. Business-only fields are
// omitted from personal responses.
type Projection struct {
	ID                 int64  `db:"id" json:"id"`
	Views              int64  `db:"views" json:"views"`
	ServiceID          string `db:"service_id" json:"service_id"`
	ServiceName        string `db:"service_name" json:"service_name"`
	ServiceSummary     string `db:"service_summary" json:"service_summary"`
	ServiceCategory    string `db:"service_category" json:"service_category"`
	ServiceConditions  string `db:"service_conditions" json:"service_conditions"`
	ServiceDescription string `db:"service_description" json:"service_description"`
	ApplyPeriod        string `db:"apply_period" json:"apply_period"`
	ApplyURL           string `db:"apply_url" json:"apply_url"`
	DetailURL          string `db:"detail_url" json:"detail_url"`
	Document           string `db:"document" json:"document"`
	ReceivingAgency    string `db:"receiving_agency" json:"receiving_agency"`
	OffcName           string `db:"offc_name" json:"offc_name"`
	Contact            string `db:"contact" json:"contact"`
	SupportDetails     string `db:"support_details" json:"support_details"`
	DeptName           string `db:"dept_name" json:"dept_name,omitempty"`
	DeptType           string `db:"dept_type" json:"dept_type,omitempty"`
	SupportTargets     string `db:"support_targets" json:"support_targets,omitempty"`
}
