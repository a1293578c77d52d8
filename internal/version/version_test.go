package version

import (
	"strings"
	"testing"
)

func TestFull(t *testing.T) {
	full := Full()

	if Version == "" || Commit == "" {
		t.Fatal("Version and Commit should be populated by init")
	}
	if !strings.Contains(full, Version) || !strings.Contains(full, "commit: "+Commit) {
		t.Errorf("Full() = %q, want version and commit", full)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Version = %s, want %s", info.Version, Version)
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("GoVersion = %s, want go prefix", info.GoVersion)
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %s, want os/arch", info.Platform)
	}
}
