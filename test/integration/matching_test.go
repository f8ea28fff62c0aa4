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

package integration

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogstore "github.com/govsupport/welfare-matching-service/internal/catalog/store"
	"github.com/govsupport/welfare-matching-service/internal/matching/service"
	profilemodel "github.com/govsupport/welfare-matching-service/internal/profile/model"
	"github.com/govsupport/welfare-matching-service/internal/system/log"
	"github.com/govsupport/welfare-matching-service/test/setup"
)

var testDB *setup.TestPostgres

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")

	ctx := context.Background()
	var err error
	testDB, err = setup.SetupTestPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	testDB.Terminate(ctx)
	os.Exit(code)
}

// stubProfiles serves fixed profiles without a document store.
type stubProfiles struct {
	personal *profilemodel.PersonalProfile
	business *profilemodel.BusinessProfile
}

func (s *stubProfiles) GetPersonalBySub(_ context.Context, _ string) (*profilemodel.PersonalProfile, error) {
	return s.personal, nil
}

func (s *stubProfiles) GetBusinessBySub(_ context.Context, _ string) (*profilemodel.BusinessProfile, error) {
	return s.business, nil
}

type entry struct {
	userType  string
	serviceID string
	name      string
	views     int
	flags     map[string]interface{}
}

func insertEntry(t *testing.T, e entry) {
	t.Helper()

	columns := []string{"user_type", "service_id", "service_name", "views"}
	values := []interface{}{e.userType, e.serviceID, e.name, e.views}
	for col, v := range e.flags {
		columns = append(columns, pq.QuoteIdentifier(col))
		values = append(values, v)
	}

	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO gov_welfare (%s) VALUES (%s)",
		strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	_, err := testDB.DB.Exec(query, values...)
	require.NoError(t, err)
}

func truncateCatalog(t *testing.T) {
	t.Helper()
	_, err := testDB.DB.Exec("TRUNCATE gov_welfare RESTART IDENTITY")
	require.NoError(t, err)
}

func newService(profiles service.ProfileLoaderInterface) service.MatchingServiceInterface {
	return service.NewMatchingService(catalogstore.NewCatalogStore(testDB.DB), profiles)
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

// ---------------------------------------------------------------------------
// Personal matching end to end
// ---------------------------------------------------------------------------

func TestMatchPersonal_EndToEnd(t *testing.T) {
	truncateCatalog(t)

	// Entry targeting the requester's bracket, gender, and academic level.
	insertEntry(t, entry{
		userType: "개인", serviceID: "WLF-A", name: "여성 대학생 장학 지원", views: 30,
		flags: map[string]interface{}{
			"JA0202": true, "JA0102": true, "JA0320": true,
		},
	})
	// Entry for the lowest income bracket only.
	insertEntry(t, entry{
		userType: "개인", serviceID: "WLF-B", name: "기초생활 수급 지원", views: 20,
		flags: map[string]interface{}{
			"JA0201": true, "JA0101": true, "JA0102": true,
		},
	})
	// Entry with no eligibility flags: open to every gender and bracket.
	insertEntry(t, entry{
		userType: "가구", serviceID: "WLF-C", name: "전 가구 에너지 바우처", views: 10,
		flags: map[string]interface{}{
			"JA0101": true, "JA0102": true,
		},
	})

	profile := &profilemodel.PersonalProfile{
		HouseholdSize:  intPtr(1),
		Overcome:       int64Ptr(1435208), // ratio 0.6
		Gender:         "female",
		AcademicStatus: profilemodel.AcademicUniversity,
	}
	ms := newService(&stubProfiles{personal: profile})

	result, err := ms.MatchPersonal(context.Background(), service.MatchRequest{
		Sub: "user-1", OrderBy: "views", Page: 0, Size: 10,
	})
	require.NoError(t, err)

	var ids []string
	for _, item := range result.Items {
		ids = append(ids, item.ServiceID)
	}
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, []string{"WLF-A", "WLF-C"}, ids, "ordered by views descending")
}

func TestMatchPersonal_GuestSeesEverything(t *testing.T) {
	truncateCatalog(t)

	insertEntry(t, entry{userType: "개인", serviceID: "WLF-1", name: "청년 지원", views: 5,
		flags: map[string]interface{}{"JA0201": true}})
	insertEntry(t, entry{userType: "소상공인", serviceID: "WLF-2", name: "사업자 지원", views: 3})

	ms := newService(&stubProfiles{})

	result, err := ms.MatchPersonal(context.Background(), service.MatchRequest{
		OrderBy: "views", Page: 0, Size: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total, "guest without tag sees the whole catalog")
}

func TestMatchPersonal_Idempotent(t *testing.T) {
	truncateCatalog(t)

	for i := 0; i < 5; i++ {
		insertEntry(t, entry{userType: "개인", serviceID: fmt.Sprintf("WLF-%d", i),
			name: fmt.Sprintf("지원 %d", i), views: i})
	}

	ms := newService(&stubProfiles{personal: &profilemodel.PersonalProfile{Gender: "male"}})
	req := service.MatchRequest{Sub: "user-1", OrderBy: "views", Page: 0, Size: 10}

	first, err := ms.MatchPersonal(context.Background(), req)
	require.NoError(t, err)
	second, err := ms.MatchPersonal(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Concatenating every page, deduplicated by id, recovers the full result set.
func TestMatchPersonal_PaginationCompleteness(t *testing.T) {
	truncateCatalog(t)

	const total = 23
	const size = 10
	for i := 0; i < total; i++ {
		insertEntry(t, entry{userType: "개인", serviceID: fmt.Sprintf("WLF-%02d", i),
			name: fmt.Sprintf("지원 %02d", i), views: 100}) // equal views force the id tiebreak
	}

	ms := newService(&stubProfiles{})

	seen := make(map[int64]bool)
	collected := 0
	for page := 0; page*size < total; page++ {
		result, err := ms.MatchPersonal(context.Background(), service.MatchRequest{
			OrderBy: "views", Page: page, Size: size,
		})
		require.NoError(t, err)
		assert.Equal(t, total, result.Total)

		for _, item := range result.Items {
			assert.False(t, seen[item.ID], "entry %d served twice", item.ID)
			seen[item.ID] = true
			collected++
		}
	}
	assert.Equal(t, total, collected)
}

// ---------------------------------------------------------------------------
// Business matching end to end
// ---------------------------------------------------------------------------

func TestMatchBusiness_EndToEnd(t *testing.T) {
	truncateCatalog(t)

	insertEntry(t, entry{userType: "소상공인", serviceID: "BIZ-A", name: "운영 자금 지원", views: 9,
		flags: map[string]interface{}{"JA1102": true}})
	insertEntry(t, entry{userType: "소상공인", serviceID: "BIZ-B", name: "외식업 특화 지원", views: 8,
		flags: map[string]interface{}{"JA1201": true}})
	insertEntry(t, entry{userType: "소상공인", serviceID: "BIZ-C", name: "전 업종 공통 지원", views: 7})
	insertEntry(t, entry{userType: "개인", serviceID: "WLF-X", name: "개인 대상 지원", views: 99})

	ms := newService(&stubProfiles{business: &profilemodel.BusinessProfile{JA1102: true}})

	result, err := ms.MatchBusiness(context.Background(), service.MatchRequest{
		Sub: "biz-1", OrderBy: "views", Page: 0, Size: 10,
	})
	require.NoError(t, err)

	var ids []string
	for _, item := range result.Items {
		ids = append(ids, item.ServiceID)
	}
	assert.Equal(t, []string{"BIZ-A", "BIZ-C"}, ids,
		"industry requirement excludes the unclassified business; personal entries never appear")
}

// ---------------------------------------------------------------------------
// Single entry lookup
// ---------------------------------------------------------------------------

func TestGetWelfareService_RoundTrip(t *testing.T) {
	truncateCatalog(t)

	insertEntry(t, entry{userType: "개인", serviceID: "WLF-42", name: "난방비 지원", views: 1})

	ms := newService(&stubProfiles{})

	row, err := ms.GetWelfareService(context.Background(), "WLF-42")
	require.NoError(t, err)
	assert.Equal(t, "난방비 지원", row.ServiceName)

	_, err = ms.GetWelfareService(context.Background(), "WLF-404")
	assert.Error(t, err)

	ids, err := ms.ListServiceIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"WLF-42"}, ids)
}

// queryTimeout guard: a cancelled context surfaces promptly as an error.
func TestMatchPersonal_CancelledContext(t *testing.T) {
	truncateCatalog(t)

	ms := newService(&stubProfiles{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := ms.MatchPersonal(ctx, service.MatchRequest{OrderBy: "views", Size: 10})
	assert.Error(t, err)
}
