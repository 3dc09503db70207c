package buildinfo

import "testing"

func withBuild(t *testing.T, version, commit string) {
	t.Helper()
	oldV, oldC := Version, Commit
	Version, Commit = version, commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })
}

func TestShortPrefersVersion(t *testing.T) {
	withBuild(t, "v1.2.0", "0123456789abcdef")
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("Short=%q", got)
	}
}

func TestShortTruncatesCommit(t *testing.T) {
	withBuild(t, "dev", "0123456789abcdef")
	if got := Short(); got != "0123456" {
		t.Fatalf("Short=%q", got)
	}
}

func TestShortDefaultsToDev(t *testing.T) {
	withBuild(t, "dev", "unknown")
	if got := Short(); got != "dev" {
		t.Fatalf("Short=%q", got)
	}
}
