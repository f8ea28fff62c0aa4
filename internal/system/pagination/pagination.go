/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
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
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultSize = 10
	maxSize     = 20
)

// Page holds a zero-based page number and a bounded page size.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Parse reads "page" and "size" query parameters. Page is zero-based and
// defaults to 0; size defaults to 10 and is capped at 20.
func Parse(r *http.Request) (Page, error) {
	page := Page{Number: 0, Size: defaultSize}

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Page{}, fmt.Errorf("invalid page")
		}
		page.Number = n
	}

	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Page{}, fmt.Errorf("invalid size")
		}
		if n > maxSize {
			n = maxSize
		}
		page.Size = n
	}

	return page, nil
}
