package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"overcat/internal/testsupport"
)

const exportFixture = `<?xml version="1.0" encoding="utf-8"?>
<opml version="1.0">
  <head><title>Overcast Podcast Subscriptions</title></head>
  <body>
    <outline text="playlists">
      <outline text="Favorites" type="podcast-playlist" title="Favorites" smart="0" sorting="manual" sortedEpisodeIds="101,102,103"/>
    </outline>
    <outline text="feeds">
      <outline text="Test Podcast" type="rss" overcastId="55" title="Test Podcast" xmlUrl="https://example.com/feed.xml" htmlUrl="https://example.com" subscribed="1">
        <outline text="Episode One" type="podcast-episode" overcastId="101" pubDate="2023-05-01T10:00:00-04:00" title="Episode One" url="https://example.com/ep1" enclosureUrl="https://example.com/ep1.mp3" overcastUrl="https://overcast.fm/+abc" userUpdatedDate="2023-05-02T08:30:00-04:00" played="1" progress="120"/>
      </outline>
    </outline>
  </body>
</opml>`

func setupCLITestEnv(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	return base
}

func writeExportFixture(t *testing.T, dir string, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "overcast.opml")
	testsupport.WriteFile(t, path, contents)
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// SetArgs(nil) makes cobra fall back to os.Args, which carries test
	// flags here.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
