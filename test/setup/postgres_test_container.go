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

package setup

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/govsupport/welfare-matching-service/internal/catalog/model"
)

type TestPostgres struct {
	Container testcontainers.Container
	DB        *sqlx.DB
}

// SetupTestPostgres starts a throwaway Postgres container with an empty
// welfare catalog schema.
func SetupTestPostgres(ctx context.Context) (*TestPostgres, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable", host, port.Port())
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if _, err := db.ExecContext(ctx, catalogDDL()); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	log.Printf("Postgres container started at %s:%s", host, port.Port())

	return &TestPostgres{
		Container: container,
		DB:        db,
	}, nil
}

// Terminate closes the connection and stops the container.
func (tp *TestPostgres) Terminate(ctx context.Context) {
	_ = tp.DB.Close()
	_ = tp.Container.Terminate(ctx)
}

// catalogDDL renders the gov_welfare table. Flag columns are quoted so their
// upstream uppercase names survive Postgres folding.
func catalogDDL() string {
	textColumns := []string{
		"user_type", "service_id", "service_name", "service_summary",
		"service_category", "service_conditions", "service_description",
		"offc_name", "dept_name", "dept_type", "dept_code",
		"apply_period", "apply_method", "apply_url", "document",
		"receiving_agency", "contact",
		"support_details", "support_targets", "support_type",
		"detail_url", "law",
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS gov_welfare (\n")
	b.WriteString("  id SERIAL PRIMARY KEY,\n")
	b.WriteString("  created_at TIMESTAMPTZ DEFAULT now(),\n")
	b.WriteString("  updated_at TIMESTAMPTZ DEFAULT now(),\n")
	b.WriteString("  views BIGINT DEFAULT 0,\n")
	for _, col := range textColumns {
		b.WriteString(fmt.Sprintf("  %s TEXT,\n", col))
	}
	b.WriteString(fmt.Sprintf("  %q INT,\n", model.FlagAgeMin))
	b.WriteString(fmt.Sprintf("  %q INT,\n", model.FlagAgeMax))
	for i, col := range model.AllFlagColumns {
		b.WriteString(fmt.Sprintf("  %q BOOLEAN DEFAULT FALSE", col))
		if i < len(model.AllFlagColumns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}
