package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"time"
)

// DevSender implements Sender for local development.
// Each message becomes an HTML file plus a JSON metadata file in dir.
type DevSender struct {
	dir string
	seq atomic.Uint64
	now func() time.Time
}

// NewDevSender creates a development sender. The directory is created on first send.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

// Dir returns the output directory.
func (d *DevSender) Dir() string { return d.dir }

type emailMetadata struct {
	Timestamp string  `json:"timestamp"`
	To        string  `json:"to"`
	From      Address `json:"from"`
	ReplyTo   string  `json:"reply_to,omitempty"`
	Subject   string  `json:"subject"`
	Tag       string  `json:"tag,omitempty"`
	HTMLFile  string  `json:"html_file"`
}

// SendEmail writes the message to disk instead of delivering it.
func (d *DevSender) SendEmail(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()

	identifier := msg.Tag
	if identifier == "" {
		identifier = msg.Subject
	}
	// The sequence number keeps names unique when two messages with the same
	// tag are written within the same second (the two emails of one submission).
	baseFilename := fmt.Sprintf("%s_%04d_%s", now.Format("2006_01_02_150405"), d.seq.Add(1), sanitizeFilename(identifier))

	htmlName := baseFilename + ".html"
	if err := os.WriteFile(filepath.Join(d.dir, htmlName), []byte(msg.BodyHTML), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}

	jsonData, err := json.MarshalIndent(emailMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		From:      msg.From,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
		Tag:       msg.Tag,
		HTMLFile:  htmlName,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}

	if err := os.WriteFile(filepath.Join(d.dir, baseFilename+".json"), jsonData, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	return nil
}

// HealthCheck reports whether the output directory can be created.
func (d *DevSender) HealthCheck(context.Context) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: output directory unavailable: %v", ErrInvalidConfig, err)
	}
	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename keeps [A-Za-z0-9-_.], maps spaces to underscores,
// lowercases and truncates to 100 bytes.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
