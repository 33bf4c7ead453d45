package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColored(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = orig, origNoColor })
	color.NoColor = true

	tests := []struct {
		version string
		want    string
	}{
		{"1.2.3", "1.2.3"},
		{"0.1.0-dev", "0.1.0-dev"},
		{" 2.0.1-rc.1 ", "2.0.1-rc.1"},
		{"nightly", "nightly"},
		{"", "dev"},
	}
	for _, tt := range tests {
		Version = tt.version
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() with %q = %q, want %q", tt.version, got, tt.want)
		}
	}

	color.NoColor = false
	Version = "1.2.3"
	if got := Colored(); got == "1.2.3" {
		t.Errorf("Colored() did not add colour")
	}
}
