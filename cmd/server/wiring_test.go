package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubledger/internal/platform/config"
	id "clubledger/pkg/domain"
)

func testConfig(t *testing.T) config.Server {
	t.Helper()
	t.Setenv("CLUB_DEV_ENDOWMENTS", "alice:5000")
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	return cfg
}

func TestParamsFromConfig(t *testing.T) {
	cfg := testConfig(t)

	params := paramsFromConfig(cfg.Club)

	assert.Equal(t, id.DeriveAccountID("membersp"), params.Treasury)
	assert.Equal(t, id.BlockNumber(5_256_000), params.YearLength)
	assert.Equal(t, id.Balance(10), params.ClubCreationDeposit)
	assert.NoError(t, params.Validate())
}

func TestBuildAppInMemory(t *testing.T) {
	cfg := testConfig(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a, err := buildApp(t.Context(), cfg, logger)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "memory", a.backend)
	assert.Nil(t, a.relay, "no sink is configured")
	assert.NotNil(t, a.limiter)

	balance, err := a.clubs.TreasuryBalance(t.Context())
	require.NoError(t, err)
	assert.Zero(t, balance)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	assert.NoError(t, a.ready(req))
}

func TestHashAdminToken(t *testing.T) {
	assert.NoError(t, hashAdminToken([]string{"root-token"}))
	assert.NoError(t, hashAdminToken(nil))
}
