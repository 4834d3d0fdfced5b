package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/iwr-crediario/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 30, cfg.POS.DueDays)
	assert.Equal(t, "https://wa.me", cfg.WhatsApp.BaseURL)
}

func TestLoadDesdeEnv(t *testing.T) {
	t.Setenv("POS_DUE_DAYS", "45")
	t.Setenv("POS_STORE_NAME", "Loja Teste")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.POS.DueDays)
	assert.Equal(t, "Loja Teste", cfg.POS.StoreName)
}

func TestLoadEnteroMalformadoUsaDefault(t *testing.T) {
	t.Setenv("POS_DUE_DAYS", "treinta")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.POS.DueDays,
		"un valor no numérico cae al default, nunca a 0")
}
