package email

import "time"

var SanitizeFilename = sanitizeFilename

// SetClock fixes the time used for file names and metadata.
func (d *DevSender) SetClock(now func() time.Time) { d.now = now }
