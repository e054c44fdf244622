package contact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fezwebco/getintouch/pkg/config"
	"github.com/fezwebco/getintouch/svc/contact"
)

func TestConfig_Location(t *testing.T) {
	t.Parallel()

	loc, err := contact.Config{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = contact.Config{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = contact.Config{Timezone: "Mars/Olympus_Mons"}.Location()
	assert.ErrorIs(t, err, contact.ErrInvalidConfig)
}

func TestConfig_Load(t *testing.T) {
	t.Setenv("CONTACT_OWNER_EMAIL", "owner@example.com")
	t.Setenv("CONTACT_NOTIFY_FROM_EMAIL", "notify@example.com")
	t.Setenv("CONTACT_REPLY_FROM_EMAIL", "hello@example.com")
	t.Setenv("CONTACT_SIGNATURE_NAME", "Ben Hicks")

	var cfg contact.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "owner@example.com", cfg.OwnerEmail)
	assert.Equal(t, "Portfolio Contact Form", cfg.NotifyFromName)
	assert.Equal(t, "Portfolio", cfg.ReplyFromName)
	assert.Equal(t, "Full Stack Developer", cfg.SignatureTitle)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, int64(65536), cfg.MaxBodyBytes)
}

func TestConfig_LoadRejectsBadOwner(t *testing.T) {
	t.Setenv("CONTACT_OWNER_EMAIL", "not-an-address")
	t.Setenv("CONTACT_NOTIFY_FROM_EMAIL", "notify@example.com")
	t.Setenv("CONTACT_REPLY_FROM_EMAIL", "hello@example.com")
	t.Setenv("CONTACT_SIGNATURE_NAME", "Ben Hicks")

	var cfg contact.Config
	assert.ErrorIs(t, config.Load(&cfg), config.ErrInvalidConfig)
}
