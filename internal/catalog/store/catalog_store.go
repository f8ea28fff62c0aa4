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

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/govsupport/welfare-matching-service/internal/catalog/model"
	"github.com/govsupport/welfare-matching-service/internal/catalog/predicate"
)

const queryTimeout = 5 * time.Second

// CatalogStore executes composed predicates against the welfare catalog.
type CatalogStore struct {
	db *sqlx.DB
}

// NewCatalogStore creates a store over the given database handle.
func NewCatalogStore(db *sqlx.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Count returns the number of catalog rows matching the predicate.
func (s *CatalogStore) Count(ctx context.Context, pred predicate.Predicate) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := "SELECT COUNT(*) FROM " + model.TableName
	clause, args := predicate.Compile(pred)
	if clause != "" {
		query += " WHERE " + clause
	}

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "failed to count welfare catalog")
	}
	return count, nil
}

// Page returns one ordered page of projected catalog rows matching the
// predicate. Ties on the order column are broken by ascending id so that
// pagination is stable regardless of storage order.
func (s *CatalogStore) Page(ctx context.Context, pred predicate.Predicate, columns []string,
	orderBy string, ascending bool, offset, limit int) ([]model.Projection, error) {

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	clause, args := predicate.Compile(pred)

	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	var b strings.Builder
	b.WriteString("SELECT " + selectList(columns) + " FROM " + model.TableName)
	if clause != "" {
		b.WriteString(" WHERE " + clause)
	}
	b.WriteString(fmt.Sprintf(" ORDER BY %s %s, id ASC", pq.QuoteIdentifier(orderBy), direction))
	b.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	var rows []model.Projection
	if err := s.db.SelectContext(ctx, &rows, b.String(), args...); err != nil {
		return nil, errors.Wrap(err, "failed to fetch welfare catalog page")
	}
	return rows, nil
}

// All returns every projected catalog row matching the predicate, in storage
// order. Used by maintenance flows, not by the paginated search path.
func (s *CatalogStore) All(ctx context.Context, pred predicate.Predicate, columns []string) ([]model.Projection, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	clause, args := predicate.Compile(pred)
	query := "SELECT " + selectList(columns) + " FROM " + model.TableName
	if clause != "" {
		query += " WHERE " + clause
	}

	var rows []model.Projection
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to fetch welfare catalog rows")
	}
	return rows, nil
}

// GetByServiceID returns the projected catalog row for one service id, or
// nil when no such service exists.
func (s *CatalogStore) GetByServiceID(ctx context.Context, serviceID string) (*model.Projection, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := "SELECT " + selectList(model.BusinessProjectionColumns) +
		" FROM " + model.TableName + " WHERE service_id = $1"

	var row model.Projection
	err := s.db.GetContext(ctx, &row, query, serviceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch welfare service %s", serviceID)
	}
	return &row, nil
}

// ListServiceIDs returns every service id in the catalog.
func (s *CatalogStore) ListServiceIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var ids []string
	query := "SELECT COALESCE(service_id, '') AS service_id FROM " + model.TableName
	if err := s.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, errors.Wrap(err, "failed to list welfare service ids")
	}
	return ids, nil
}

// selectList renders the projection columns, coalescing NULLs so that rows
// from partially ingested feeds scan cleanly.
func selectList(columns []string) string {
	parts := make([]string, len(columns))
	for i, col := range columns {
		if model.IsNumericColumn(col) {
			parts[i] = fmt.Sprintf("COALESCE(%s, 0) AS %s", pq.QuoteIdentifier(col), col)
		} else {
			parts[i] = fmt.Sprintf("COALESCE(%s, '') AS %s", pq.QuoteIdentifier(col), col)
		}
	}
	return strings.Join(parts, ", ")
}
