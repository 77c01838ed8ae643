package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned for targets outside the supported range or
// with malformed text.
var ErrInvalidDuration = errors.New("invalid duration")

// Duration limits.
const (
	// MinSeconds is the shortest allowed target.
	MinSeconds = 1

	// MaxSeconds is the longest target the MM:SS display can show.
	MaxSeconds = 99*60 + 59
)

// Duration is a timer target in minutes and seconds.
type Duration struct {
	Minutes uint32
	Seconds uint32
}

// New creates a Duration and normalizes seconds >= 60 into minutes.
func New(minutes, seconds uint32) (Duration, error) {
	return FromSeconds(minutes*60 + seconds)
}

// FromSeconds creates a Duration from a total number of seconds.
func FromSeconds(total uint32) (Duration, error) {
	if total < MinSeconds || total > MaxSeconds {
		return Duration{}, fmt.Errorf("%w: %ds out of range [%d, %d]", ErrInvalidDuration, total, MinSeconds, MaxSeconds)
	}
	return Duration{Minutes: total / 60, Seconds: total % 60}, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse reads "MM:SS" or a Go duration string such as "90s".
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	if mins, secs, ok := strings.Cut(s, ":"); ok {
		m, err := strconv.ParseUint(mins, 10, 32)
		if err != nil {
			return Duration{}, fmt.Errorf("%w: minutes %q", ErrInvalidDuration, mins)
		}
		sec, err := strconv.ParseUint(secs, 10, 32)
		if err != nil {
			return Duration{}, fmt.Errorf("%w: seconds %q", ErrInvalidDuration, secs)
		}
		if sec >= 60 {
			return Duration{}, fmt.Errorf("%w: seconds %d must be below 60", ErrInvalidDuration, sec)
		}
		if m > MaxSeconds/60 {
			return Duration{}, fmt.Errorf("%w: minutes %d exceed %d", ErrInvalidDuration, m, MaxSeconds/60)
		}
		return New(uint32(m), uint32(sec))
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return FromStd(d)
}

// FromStd converts a time.Duration, truncating to whole seconds.
func FromStd(d time.Duration) (Duration, error) {
	if d < 0 || d > MaxSeconds*time.Second+time.Second-1 {
		return Duration{}, fmt.Errorf("%w: %s out of range", ErrInvalidDuration, d)
	}
	return FromSeconds(uint32(d / time.Second))
}

// TotalSeconds returns Minutes*60 + Seconds.
func (d Duration) TotalSeconds() uint32 {
	return d.Minutes*60 + d.Seconds
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.TotalSeconds()) * time.Second
}

// IsZero reports whether the duration is unset.
func (d Duration) IsZero() bool {
	return d.Minutes == 0 && d.Seconds == 0
}

// String formats the duration as MM:SS.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d", d.Minutes, d.Seconds)
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so that targets can be
// written as "01:30" in YAML and config files.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
