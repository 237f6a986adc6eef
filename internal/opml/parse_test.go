package opml

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"overcat/internal/testsupport"
)

const sampleBody = `<opml version="1.0">
  <head><title>Overcast Podcast Subscriptions</title></head>
  <body>
    <outline text="playlists">
      <outline type="podcast-playlist" text="queue" title="queue" smart="0"/>
    </outline>
    <outline text="feeds">
      <outline type="rss" overcastId="1" title="One">
        <outline type="podcast-episode" overcastId="11" title="One, first"/>
      </outline>
      <outline type="rss" overcastId="2" title="Two">
        <outline type="podcast-episode" overcastId="21" title="Two, first"/>
        <outline type="podcast-episode" overcastId="22" title="Two, second"/>
      </outline>
    </outline>
  </body>
</opml>
`

func TestParseBuildsTree(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleBody))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if root.Name != "opml" {
		t.Fatalf("expected root element opml, got %q", root.Name)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected head and body children, got %d", len(root.Children))
	}
	body := root.Children[1]
	if body.Name != "body" || len(body.Children) != 2 {
		t.Fatalf("unexpected body shape: %q with %d children", body.Name, len(body.Children))
	}
}

func TestParseKeepsAttributeDocumentOrder(t *testing.T) {
	const doc = `<root><outline c="3" a="1" b="2"/></root>`
	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	node := root.Children[0]
	got := make([]string, 0, len(node.Attrs))
	for _, attr := range node.Attrs {
		got = append(got, attr.Name)
	}
	want := "c a b"
	if strings.Join(got, " ") != want {
		t.Fatalf("expected attribute order %q, got %q", want, strings.Join(got, " "))
	}
}

func TestGetAndAttrMap(t *testing.T) {
	root, err := Parse(strings.NewReader(`<outline overcastId="55" title="Test Feed"/>`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if value, ok := root.Get("overcastId"); !ok || value != "55" {
		t.Fatalf("Get(overcastId) = %q, %v", value, ok)
	}
	if _, ok := root.Get("missing"); ok {
		t.Fatal("expected absent attribute to report ok=false")
	}
	attrs := root.AttrMap()
	if len(attrs) != 2 || attrs["title"] != "Test Feed" {
		t.Fatalf("unexpected attribute map: %v", attrs)
	}
	attrs["title"] = "mutated"
	if value, _ := root.Get("title"); value != "Test Feed" {
		t.Fatal("AttrMap must return a copy, not a view")
	}
}

func TestFindLocatesFirstMatchInDocumentOrder(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleBody))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	feeds := root.Find("outline", "text", "feeds")
	if feeds == nil {
		t.Fatal("expected to find feeds section")
	}
	first := root.Find("outline", "type", "rss")
	if first == nil {
		t.Fatal("expected to find a feed node")
	}
	if id, _ := first.Get("overcastId"); id != "1" {
		t.Fatalf("expected first feed in document order, got overcastId=%q", id)
	}
	if root.Find("outline", "text", "bookmarks") != nil {
		t.Fatal("expected no match for unknown section")
	}
}

func TestFindAllScopedToReceiverSubtree(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleBody))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	feedNodes := root.Find("outline", "text", "feeds").FindAll("outline", "type", "rss")
	if len(feedNodes) != 2 {
		t.Fatalf("expected 2 feed nodes, got %d", len(feedNodes))
	}
	// Episodes of one feed must never leak into a sibling feed's results.
	episodes := feedNodes[1].FindAll("outline", "type", "podcast-episode")
	if len(episodes) != 2 {
		t.Fatalf("expected 2 episodes under second feed, got %d", len(episodes))
	}
	for _, episode := range episodes {
		id, _ := episode.Get("overcastId")
		if id != "21" && id != "22" {
			t.Fatalf("episode %q leaked in from a sibling subtree", id)
		}
	}
}

func TestLoadStripsLeadingDeclarationLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overcast.opml")
	testsupport.WriteFile(t, path, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"+sampleBody)

	root, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if root.Name != "opml" {
		t.Fatalf("expected opml root after stripping first line, got %q", root.Name)
	}
}

func TestLoadSingleLineFileFailsToParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "only-declaration.opml")
	testsupport.WriteFile(t, path, `<?xml version="1.0"?>`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse failure for file with nothing after the first line")
	}
}

func TestLoadMissingFileReportsNotExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.opml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
