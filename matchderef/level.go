package matchderef

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the configured severity of the rule.
// Allow disables it; Warn, Deny and Forbid enable it with increasing strictness.
type Level int

const (
	Allow Level = iota
	Warn
	Deny
	Forbid
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown level")

var levelNames = [...]string{
	Allow:  "allow",
	Warn:   "warn",
	Deny:   "deny",
	Forbid: "forbid",
}

// ParseLevel returns the level named by s. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}

	return Allow, fmt.Errorf("%w %q (want one of %s)", ErrUnknownLevel, s, strings.Join(levelNames[:], ", "))
}

func (l Level) String() string {
	if l < Allow || l > Forbid {
		return fmt.Sprintf("Level(%d)", int(l))
	}

	return levelNames[l]
}

// Enabled reports whether diagnostics are emitted at this level.
func (l Level) Enabled() bool { return l > Allow }

// Set implements [flag.Value].
func (l *Level) Set(s string) error {
	v, err := ParseLevel(s)
	if err != nil {
		return err
	}

	*l = v

	return nil
}

// Get implements [flag.Getter].
func (l *Level) Get() any { return *l }

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	if l < Allow || l > Forbid {
		return nil, fmt.Errorf("%w %d", ErrUnknownLevel, int(l))
	}

	return []byte(levelNames[l]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], so levels can be
// decoded directly from YAML and TOML configuration.
func (l *Level) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}
