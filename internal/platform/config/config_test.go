package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost/ledger")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REIMBURSE_TO_LOCK_AFTER_DECISION", "true")
	t.Setenv("REQUIRE_SAVING_TOGGLE_CONFIRMATION", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://ledger@localhost/ledger", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.ReimburseToLockAfterDecision)
	assert.False(t, cfg.RequireSavingToggleConfirmation)
	assert.Equal(t, "workspace.invited", cfg.AMQPInviteRoutingKey)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a"}, splitList(" a ,,"))
}
