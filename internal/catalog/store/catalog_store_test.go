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
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govsupport/welfare-matching-service/internal/catalog/model"
	"github.com/govsupport/welfare-matching-service/internal/catalog/predicate"
)

func newMockStore(t *testing.T) (*CatalogStore, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	db := sqlx.NewDb(mockDb, "sqlmock")
	return NewCatalogStore(db), mock
}

func TestCount_NoPredicate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM gov_welfare")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := store.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount_WithPredicate(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM gov_welfare WHERE COALESCE("JA0102", FALSE) = $1`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := store.Count(context.Background(), predicate.FlagEquals(model.FlagFemale, true))
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPage_OrderingAndPaginationArguments(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "views", "service_id", "service_name"}).
		AddRow(3, 120, "WLF003", "전세자금 대출 이자 지원").
		AddRow(1, 120, "WLF001", "청년 월세 지원")

	// Ties on the order column break by ascending id; limit/offset bind last.
	mock.ExpectQuery(regexp.QuoteMeta(
		`ORDER BY "views" DESC, id ASC LIMIT $2 OFFSET $3`)).
		WithArgs("%가구%", 10, 20).
		WillReturnRows(rows)

	got, err := store.Page(context.Background(),
		predicate.Contains("user_type", "가구"),
		model.PersonalProjectionColumns, "views", false, 20, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "WLF003", got[0].ServiceID)
	assert.Equal(t, "WLF001", got[1].ServiceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPage_AscendingOrder(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY "id" ASC, id ASC LIMIT $1 OFFSET $2`)).
		WithArgs(5, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.Page(context.Background(), nil,
		model.PersonalProjectionColumns, "id", true, 0, 5)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByServiceID_ProjectsBusinessColumns(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "service_id", "service_name", "dept_name"}).
		AddRow(11, "WLF011", "소상공인 경영 안정 자금", "지역경제과")

	mock.ExpectQuery(regexp.QuoteMeta(`FROM gov_welfare WHERE service_id = $1`)).
		WithArgs("WLF011").
		WillReturnRows(rows)

	got, err := store.GetByServiceID(context.Background(), "WLF011")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "소상공인 경영 안정 자금", got.ServiceName)
	assert.Equal(t, "지역경제과", got.DeptName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByServiceID_Missing_ReturnsNil(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE service_id = $1`)).
		WithArgs("WLF404").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := store.GetByServiceID(context.Background(), "WLF404")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListServiceIDs(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(service_id, '') AS service_id FROM gov_welfare`)).
		WillReturnRows(sqlmock.NewRows([]string{"service_id"}).
			AddRow("WLF001").AddRow("WLF002"))

	ids, err := store.ListServiceIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"WLF001", "WLF002"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
