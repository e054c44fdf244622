package contact

import (
	"fmt"
	"time"
)

// Config holds the addresses and signature used for contact emails.
type Config struct {
	OwnerEmail      string `env:"CONTACT_OWNER_EMAIL,required" validate:"required,email"`
	NotifyFromEmail string `env:"CONTACT_NOTIFY_FROM_EMAIL,required" validate:"required,email"`
	NotifyFromName  string `env:"CONTACT_NOTIFY_FROM_NAME" envDefault:"Portfolio Contact Form"`
	ReplyFromEmail  string `env:"CONTACT_REPLY_FROM_EMAIL,required" validate:"required,email"`
	ReplyFromName   string `env:"CONTACT_REPLY_FROM_NAME" envDefault:"Portfolio"`
	SignatureName   string `env:"CONTACT_SIGNATURE_NAME,required" validate:"required"`
	SignatureTitle  string `env:"CONTACT_SIGNATURE_TITLE" envDefault:"Full Stack Developer"`
	Timezone        string `env:"CONTACT_TIMEZONE" envDefault:"UTC"`
	MaxBodyBytes    int64  `env:"CONTACT_MAX_BODY_BYTES" envDefault:"65536" validate:"gt=0"`
}

// Location resolves Timezone. An empty value means UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: CONTACT_TIMEZONE %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}
