package initialize

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"hanviet-cards/backend/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, autoSeed bool) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`server:
  host: 127.0.0.1
  port: 0
db:
  driver: sqlite
  path: %q
jwt:
  secret: test-secret
seed:
  auto: %v
`, filepath.Join(dir, "test.db"), autoSeed)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuild_AutoSeedsEmptyDatabase(t *testing.T) {
	app, err := Build(writeConfig(t, true))
	require.NoError(t, err)

	srv := httptest.NewServer(app.Router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cards")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cards []models.Card
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cards))
	assert.Len(t, cards, 15)
	for _, c := range cards {
		assert.True(t, c.IsSystemCard)
		assert.Nil(t, c.AuthorID)
	}
}

func TestBuild_SeedDisabled(t *testing.T) {
	app, err := Build(writeConfig(t, false))
	require.NoError(t, err)

	srv := httptest.NewServer(app.Router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/cards")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cards []models.Card
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cards))
	assert.Empty(t, cards)
}

func TestBuild_Healthcheck(t *testing.T) {
	app, err := Build(writeConfig(t, false))
	require.NoError(t, err)

	srv := httptest.NewServer(app.Router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBuild_MissingConfigFile(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
