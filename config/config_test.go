package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "mock", AppConfig.DataSource)
	assert.Equal(t, "INR", AppConfig.Currency)
	assert.False(t, UsesMongo())
	assert.Equal(t, 2*time.Second, PaymentDelay())
	assert.Equal(t, 30*time.Minute, SessionTTL())
	assert.Equal(t, time.Hour, ReminderLead())
	assert.Empty(t, AppConfig.AdminPassword)
	assert.NoError(t, Validate())
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("DATA_SOURCE", "mongo")
	t.Setenv("PAYMENT_DELAY_MS", "250")
	t.Setenv("ENV", "production")

	LoadConfig()

	require.True(t, UsesMongo())
	assert.Equal(t, 250*time.Millisecond, PaymentDelay())
	assert.True(t, IsProduction())
}

func TestAdminPasswordComesFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	LoadConfig()

	assert.Equal(t, "s3cret", AppConfig.AdminPassword)
}

func TestValidateRequiresJWTSecretInProduction(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("ENV", "production")

	LoadConfig()
	assert.ErrorIs(t, Validate(), ErrMissingJWTSecret)

	AppConfig.JWTSecret = "configured"
	assert.NoError(t, Validate())
}
