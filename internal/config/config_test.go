package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, adminToken string) string {
	t.Helper()

	content := `api:
  environment: "test"
  base_url: "localhost:4000"
  port: "4000"
  allowed_cors_domains:
    - "http://localhost:4000"
  admin_token: "` + adminToken + `"
  public_backend_url: ""

gin:
  mode: "test"

postgres:
  host: "localhost"
  port: "5432"
  user: "postgres"
  password: "postgres"
  db_name: "wordhunt_test"
  ssl_mode: "disable"
`

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, "s3cret"))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "4000", conf.API.Port)
	assert.Equal(t, "s3cret", conf.API.AdminToken)
	assert.Equal(t, "wordhunt_test", conf.Postgres.DBName)
}

func TestLoad_MissingAdminToken(t *testing.T) {
	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrAdminTokenMissing)
}

func TestLoad_PlaceholderAdminToken(t *testing.T) {
	_, err := Load(writeConfig(t, "changeme"))
	assert.ErrorIs(t, err, ErrAdminTokenPlaceholder)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "from-env")

	conf, err := Load(writeConfig(t, "s3cret"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", conf.API.AdminToken)
}
