//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property_booking/internal/app"
	"property_booking/internal/domain"
	mysqlrepo "property_booking/internal/storage/mysql"
	"property_booking/internal/storage/memory"
)

// ---------- small helpers ----------

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("..", "..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir()

	ents, err := os.ReadDir(dir)
	require.NoError(t, err, "read migrations dir %s", dir)

	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	require.NotEmpty(t, files, "no .sql files in %s", dir)
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = db.Exec(string(sqlBytes))
		require.NoError(t, err, "exec %s", f)
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "dockertest")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=listing",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "run mysql")
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/listing?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	require.NoError(t, pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}), "connect mysql")
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

// ---------- the test ----------

func TestRepo_MySQL_SeedAndQuery(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	props, err := memory.SampleProperties()
	require.NoError(t, err)
	reviews, err := memory.SampleReviews()
	require.NoError(t, err)

	seed := app.NewSeedService(repo)
	for i, p := range props {
		p.ID = fmt.Sprint(i)
		require.NoError(t, seed.SeedProperty(ctx, i, p))
	}
	require.NoError(t, seed.SeedReviews(ctx, reviews))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(props))
	assert.Equal(t, props[0].Name, all[0].Name)
	assert.Equal(t, props[0].Category, all[0].Category)

	p, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, props[2].Name, p.Name)
	assert.Equal(t, props[2].Address, p.Address)

	_, err = repo.Get(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rs, err := repo.Reviews(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 5)
	assert.Equal(t, "2024-10-15", rs[0].Date)

	// the query service behaves the same over MySQL as over the sample
	q := app.NewQueryService(repo, repo)
	page, err := q.ListProperties(ctx, domain.FilterCriteria{Location: "usa"}, domain.PageRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Len(t, page.Items, 2)
}
