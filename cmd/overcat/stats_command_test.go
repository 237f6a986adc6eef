package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"overcat/internal/overcast"
)

func TestStatsRendersTables(t *testing.T) {
	base := setupCLITestEnv(t)
	path := writeExportFixture(t, base, exportFixture)

	stdout, stderr, err := runCLI(t, "stats", path)
	if err != nil {
		t.Fatalf("Execute returned error: %v (stderr: %s)", err, stderr)
	}
	requireContains(t, stdout, "Export overview")
	requireContains(t, stdout, "Playlists")
	requireContains(t, stdout, "Subscribed feeds")
	requireContains(t, stdout, "Test Podcast")
	requireContains(t, stdout, "Newest episode")
}

func TestStatsJSON(t *testing.T) {
	base := setupCLITestEnv(t)
	path := writeExportFixture(t, base, exportFixture)

	stdout, stderr, err := runCLI(t, "stats", "--json", path)
	if err != nil {
		t.Fatalf("Execute returned error: %v (stderr: %s)", err, stderr)
	}

	var summary overcast.Summary
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, stdout)
	}
	if summary.Playlists != 1 || summary.Feeds != 1 || summary.SubscribedFeeds != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Episodes != 1 || summary.PlayedEpisodes != 1 || summary.InProgressEpisodes != 0 {
		t.Fatalf("unexpected episode counts: %+v", summary)
	}
	if summary.NewestEpisode == nil {
		t.Fatal("expected a newest episode timestamp")
	}
}

func TestStatsMissingFileExitsCleanly(t *testing.T) {
	base := setupCLITestEnv(t)

	stdout, stderr, err := runCLI(t, "stats", filepath.Join(base, "absent.opml"))
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	requireContains(t, stderr, "does not exist, nothing to parse")
	if stdout != "" {
		t.Fatalf("expected empty stdout, got %q", stdout)
	}
}
