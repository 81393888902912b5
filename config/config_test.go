package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("PORT", "8081")
	os.Setenv("ATLASDB_URL", "mongodb://localhost:27017")
	os.Setenv("DB_NAME", "employeeDB-test")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ATLASDB_URL")
		os.Unsetenv("DB_NAME")
	}()

	cfg := LoadConfig()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoString)
	assert.Equal(t, "employeeDB-test", cfg.DBName)
}

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ATLASDB_URL")
	os.Unsetenv("DB_NAME")

	cfg := LoadConfig()
	assert.Equal(t, "3000", cfg.Port)
	assert.Empty(t, cfg.MongoString)
	assert.Equal(t, "employeeDB", cfg.DBName)
}
