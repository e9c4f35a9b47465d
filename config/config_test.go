package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ENABLE_RATING_SYNC", "")

	LoadConfig()

	assert.Equal(t, "3000", AppConfig.Port)
	assert.Equal(t, "postgres", AppConfig.DBDriver)
	assert.True(t, AppConfig.EnableRatingSync)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("ENABLE_RATING_SYNC", "false")

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.Port)
	assert.Equal(t, "sqlite", AppConfig.DBDriver)
	assert.False(t, AppConfig.EnableRatingSync)
}

func TestGetEnvBoolBadValue(t *testing.T) {
	t.Setenv("SOME_FLAG", "definitely")
	assert.True(t, getEnvBool("SOME_FLAG", true))
	assert.False(t, getEnvBool("SOME_FLAG", false))
}
