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

// Package predicate defines the boolean filter algebra the matching engine
// composes over the welfare catalog. Predicates compile to parameterized SQL
// for the catalog store and evaluate in memory against a row map, which keeps
// the matching rules testable without a database.
package predicate

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Row is an in-memory catalog row keyed by column name. Missing boolean
// columns read as false, missing numeric bounds as unbounded.
type Row map[string]interface{}

// Predicate is a boolean expression over catalog columns.
type Predicate interface {
	sql(c *compiler) string
	Eval(row Row) bool
}

type compiler struct {
	args []interface{}
}

func (c *compiler) bind(v interface{}) string {
	c.args = append(c.args, v)
	return fmt.Sprintf("$%d", len(c.args))
}

// Compile renders a predicate as a SQL boolean expression with positional
// arguments. A nil predicate compiles to the empty string.
func Compile(p Predicate) (string, []interface{}) {
	if p == nil {
		return "", nil
	}
	c := &compiler{}
	clause := p.sql(c)
	return clause, c.args
}

// ---------------------------------------------------------------------------
// Conjunction / disjunction / negation
// ---------------------------------------------------------------------------

type and struct{ ps []Predicate }

// And combines predicates conjunctively. Nil members are dropped; a
// conjunction with no members collapses to nil (no opinion).
func And(ps ...Predicate) Predicate {
	kept := compact(ps)
	if len(kept) == 0 {
		return nil
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return and{ps: kept}
}

func (a and) sql(c *compiler) string {
	parts := make([]string, len(a.ps))
	for i, p := range a.ps {
		parts[i] = p.sql(c)
	}
	return "(" + strings.Join(parts, " AND ") + ")"
}

func (a and) Eval(row Row) bool {
	for _, p := range a.ps {
		if !p.Eval(row) {
			return false
		}
	}
	return true
}

type or struct{ ps []Predicate }

// Or combines predicates disjunctively. Nil members are dropped; a
// disjunction with no members collapses to nil (no opinion).
func Or(ps ...Predicate) Predicate {
	kept := compact(ps)
	if len(kept) == 0 {
		return nil
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return or{ps: kept}
}

func (o or) sql(c *compiler) string {
	parts := make([]string, len(o.ps))
	for i, p := range o.ps {
		parts[i] = p.sql(c)
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func (o or) Eval(row Row) bool {
	for _, p := range o.ps {
		if p.Eval(row) {
			return true
		}
	}
	return false
}

type not struct{ p Predicate }

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return not{p: p}
}

func (n not) sql(c *compiler) string {
	return "NOT " + n.p.sql(c)
}

func (n not) Eval(row Row) bool {
	return !n.p.Eval(row)
}

// ---------------------------------------------------------------------------
// Leaf predicates
// ---------------------------------------------------------------------------

type flagEquals struct {
	col   string
	value bool
}

// FlagEquals matches rows whose boolean flag equals value. NULL flags are
// read as false, so a program that never sets a flag cannot accidentally
// exclude requesters on it.
func FlagEquals(col string, value bool) Predicate {
	return flagEquals{col: col, value: value}
}

func (f flagEquals) sql(c *compiler) string {
	return fmt.Sprintf("COALESCE(%s, FALSE) = %s", pq.QuoteIdentifier(f.col), c.bind(f.value))
}

func (f flagEquals) Eval(row Row) bool {
	return rowBool(row, f.col) == f.value
}

type rangeWithin struct {
	minCol, maxCol string
	value          int
}

// RangeWithin matches rows whose [minCol, maxCol] interval contains value,
// treating an absent bound as unbounded.
func RangeWithin(minCol, maxCol string, value int) Predicate {
	return rangeWithin{minCol: minCol, maxCol: maxCol, value: value}
}

func (r rangeWithin) sql(c *compiler) string {
	minIdent := pq.QuoteIdentifier(r.minCol)
	maxIdent := pq.QuoteIdentifier(r.maxCol)
	return fmt.Sprintf("((%s IS NULL OR %s <= %s) AND (%s IS NULL OR %s >= %s))",
		minIdent, minIdent, c.bind(r.value), maxIdent, maxIdent, c.bind(r.value))
}

func (r rangeWithin) Eval(row Row) bool {
	if min, ok := rowInt(row, r.minCol); ok && min > r.value {
		return false
	}
	if max, ok := rowInt(row, r.maxCol); ok && max < r.value {
		return false
	}
	return true
}

type contains struct {
	col, value string
}

// Contains matches rows whose text column contains value as a substring.
func Contains(col, value string) Predicate {
	return contains{col: col, value: value}
}

func (s contains) sql(c *compiler) string {
	return fmt.Sprintf("COALESCE(%s, '') LIKE %s", pq.QuoteIdentifier(s.col), c.bind("%"+s.value+"%"))
}

func (s contains) Eval(row Row) bool {
	return strings.Contains(rowString(row, s.col), s.value)
}

type textSearch struct {
	keyword string
}

// TextSearch matches rows whose name or summary satisfies a websearch query.
// The in-memory evaluation approximates the engine with case-insensitive
// substring containment.
func TextSearch(keyword string) Predicate {
	return textSearch{keyword: keyword}
}

func (t textSearch) sql(c *compiler) string {
	return fmt.Sprintf(
		"(to_tsvector('simple', COALESCE(service_name, '')) || to_tsvector('simple', COALESCE(service_summary, ''))) @@ websearch_to_tsquery('simple', %s)",
		c.bind(t.keyword))
}

func (t textSearch) Eval(row Row) bool {
	haystack := strings.ToLower(rowString(row, "service_name") + " " + rowString(row, "service_summary"))
	return strings.Contains(haystack, strings.ToLower(t.keyword))
}

// ---------------------------------------------------------------------------
// Row access helpers
// ---------------------------------------------------------------------------

func compact(ps []Predicate) []Predicate {
	kept := make([]Predicate, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return kept
}

func rowBool(row Row, col string) bool {
	v, ok := row[col]
	if !ok || v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

func rowInt(row Row, col string) (int, bool) {
	v, ok := row[col]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func rowString(row Row, col string) string {
	v, ok := row[col]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
