package matchderef_test

import (
	"errors"
	"flag"
	"testing"

	"github.com/spechtlabs/matchderef/matchderef"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    matchderef.Level
		wantErr bool
	}{
		{in: "allow", want: matchderef.Allow},
		{in: "warn", want: matchderef.Warn},
		{in: "Deny", want: matchderef.Deny},
		{in: " FORBID ", want: matchderef.Forbid},
		{in: "warning", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := matchderef.ParseLevel(tt.in)
			if tt.wantErr {
				if !errors.Is(err, matchderef.ErrUnknownLevel) {
					t.Fatalf("ParseLevel(%q) error = %v, want ErrUnknownLevel", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(matchderef.Allow < matchderef.Warn && matchderef.Warn < matchderef.Deny && matchderef.Deny < matchderef.Forbid) {
		t.Fatal("levels are not ordered by strictness")
	}

	if matchderef.Allow.Enabled() {
		t.Error("Allow.Enabled() = true, want false")
	}
	for _, l := range []matchderef.Level{matchderef.Warn, matchderef.Deny, matchderef.Forbid} {
		if !l.Enabled() {
			t.Errorf("%v.Enabled() = false, want true", l)
		}
	}
}

func TestLevelText(t *testing.T) {
	var l matchderef.Level
	if err := l.UnmarshalText([]byte("deny")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}

	text, err := l.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "deny" {
		t.Errorf("MarshalText() = %q, want %q", text, "deny")
	}

	if _, err := matchderef.Level(42).MarshalText(); err == nil {
		t.Error("MarshalText() of invalid level succeeded, want error")
	}
	if got := matchderef.Level(42).String(); got != "Level(42)" {
		t.Errorf("String() = %q, want %q", got, "Level(42)")
	}
}

func TestLevelFlagValue(t *testing.T) {
	level := matchderef.Warn

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&level, "level", "diagnostic level")

	if err := fs.Parse([]string{"-level=forbid"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if level != matchderef.Forbid {
		t.Errorf("level = %v, want forbid", level)
	}

	getter, ok := fs.Lookup("level").Value.(flag.Getter)
	if !ok {
		t.Fatal("level flag does not implement flag.Getter")
	}
	if getter.Get() != matchderef.Forbid {
		t.Errorf("Get() = %v, want forbid", getter.Get())
	}
}
