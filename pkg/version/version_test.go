package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()

	if !strings.Contains(s, Version) {
		t.Errorf("String() = %q, want it to contain version %q", s, Version)
	}
	if !strings.Contains(s, runtime.Version()) {
		t.Errorf("String() = %q, want it to contain %q", s, runtime.Version())
	}
	if !strings.Contains(s, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("String() = %q, want it to contain %s/%s", s, runtime.GOOS, runtime.GOARCH)
	}
}

func TestVersionNotEmpty(t *testing.T) {
	if Version == "" {
		t.Error("Version is empty")
	}
}
