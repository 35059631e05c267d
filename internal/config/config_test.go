package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "facepay")
	t.Setenv("DB_NAME", "facepay")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t,
		"host=localhost user=facepay password=secret dbname=facepay port=5432 sslmode=disable",
		cfg.DB.ResolvedDSN(),
	)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PostgresNeedsCredentials(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestAuthConfig(t *testing.T) {
	a := AuthConfig{Domain: "facepay.us.auth0.com", Audience: "https://api.facepay"}
	assert.NoError(t, a.Validate())
	assert.Equal(t, "https://facepay.us.auth0.com/", a.ResolvedIssuer())

	a.Issuer = "https://issuer.example/"
	assert.Equal(t, "https://issuer.example/", a.ResolvedIssuer())

	err := AuthConfig{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH0_DOMAIN")
	assert.Contains(t, err.Error(), "AUTH0_AUDIENCE")
}

func TestKafkaConfig_Validate(t *testing.T) {
	assert.Error(t, KafkaConfig{}.Validate())
	assert.NoError(t, KafkaConfig{Broker: "localhost:9092"}.Validate())
}
