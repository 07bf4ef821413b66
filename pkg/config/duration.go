package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a timing setting such as the skeleton pulse interval. Files
// may write a Go duration ("600ms", "1.5s") or a bare number of
// milliseconds (600 or "600").
type Duration struct {
	time.Duration
}

// UnmarshalText accepts a Go duration or bare milliseconds. Empty means
// unset; negative values are rejected.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}

	var parsed time.Duration
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		parsed = time.Duration(ms) * time.Millisecond
	} else {
		parsed, err = time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("config: invalid duration %q: %w", s, err)
		}
	}
	if parsed < 0 {
		return fmt.Errorf("config: negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText writes unset as "" so a printed config keeps the default.
func (d Duration) MarshalText() ([]byte, error) {
	if d.Duration == 0 {
		return []byte{}, nil
	}
	return []byte(d.Duration.String()), nil
}

// Or returns def when d is unset.
func (d Duration) Or(def time.Duration) time.Duration {
	if d.Duration <= 0 {
		return def
	}
	return d.Duration
}
