//go:build integration

package containers

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_scoring_system/pkg/postgres"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresContainer - контейнер PostGIS с примененными миграциями
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
	DB        *pgxpool.Pool
}

// NewPostgresContainer запускает PostGIS и применяет миграции из каталога migrations
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgis/postgis:16-3.4-alpine",
		tcpostgres.WithDatabase("safety"),
		tcpostgres.WithUsername("safety"),
		tcpostgres.WithPassword("safety"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	if err := postgres.RunMigrations(migrationsSource(), url); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	db, err := postgres.NewPostgresDB(ctx, url, 5)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(db.Close)

	return &PostgresContainer{Container: container, URL: url, DB: db}
}

// TruncateTables очищает таблицы между тестами
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	_, err := p.DB.Exec(ctx, fmt.Sprintf("TRUNCATE %s CASCADE", strings.Join(tables, ", ")))
	return err
}

// migrationsSource указывает на каталог migrations в корне модуля
func migrationsSource() string {
	_, file, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(file), "..", "..", "..")
	return "file://" + filepath.ToSlash(filepath.Join(root, "migrations"))
}
