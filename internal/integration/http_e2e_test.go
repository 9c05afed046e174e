//go:build integration

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"

	server "property_booking/internal/adapters/http_server"
	"property_booking/internal/adapters/payment"
	"property_booking/internal/app"
	"property_booking/internal/domain"
	mysqlrepo "property_booking/internal/storage/mysql"
	"property_booking/internal/storage/memory"
)

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = filepath.Join("..", "..", "migrations")
	}
	ents, err := os.ReadDir(dir)
	require.NoError(t, err, "read migrations dir %s", dir)

	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = db.Exec(string(b))
		require.NoError(t, err, "exec %s", f)
	}
}

// ---------- the test ----------
func TestHTTP_EndToEnd_MySQLBackedListing(t *testing.T) {
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "dockertest")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=listing"},
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

	// seed the sample through the same path the seeder binary uses
	repo := mysqlrepo.New(db)
	seed := app.NewSeedService(repo)
	ctx := context.Background()

	props, err := memory.SampleProperties()
	require.NoError(t, err)
	for i, p := range props {
		p.ID = fmt.Sprint(i)
		require.NoError(t, seed.SeedProperty(ctx, i, p))
	}
	reviews, err := memory.SampleReviews()
	require.NoError(t, err)
	require.NoError(t, seed.SeedReviews(ctx, reviews))

	srv := server.New(server.Options{})
	srv.MountHandlers(&server.Handlers{
		Q: app.NewQueryService(repo, repo),
		B: app.NewBookingService(app.NewBookingValidator(), payment.NewSimulated(0)),
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// listing
	res, err := http.Get(ts.URL + "/properties?location=bali&limit=5")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Success    bool              `json:"success"`
		Data       []domain.Property `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	require.True(t, list.Success)
	require.Equal(t, 2, list.Pagination.Total)
	require.Equal(t, "0", list.Data[0].ID)

	// detail
	res2, err := http.Get(ts.URL + "/properties/5")
	require.NoError(t, err)
	defer res2.Body.Close()
	require.Equal(t, http.StatusOK, res2.StatusCode)

	// booking
	body := `{"firstName":"A","lastName":"B","email":"a@b.co","phoneNumber":"1","cardNumber":"4111111111111111","expirationDate":"01/30","cvv":"123","billingAddress":"x"}`
	res3, err := http.Post(ts.URL+"/bookings", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res3.Body.Close()
	require.Equal(t, http.StatusOK, res3.StatusCode)
}
