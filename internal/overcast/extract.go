package overcast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"overcat/internal/logging"
	"overcat/internal/opml"
)

// Element and attribute values that identify record nodes in the export
// dialect.
const (
	elemOutline = "outline"

	sectionPlaylists = "playlists"
	sectionFeeds     = "feeds"

	typePlaylist = "podcast-playlist"
	typeFeed     = "rss"
	typeEpisode  = "podcast-episode"
)

// Options controls one extraction pass.
type Options struct {
	// ReportUnknownAttrs enables schema-drift detection. Attribute names
	// with no schema field are collected per record kind and emitted as
	// warnings after the walk.
	ReportUnknownAttrs bool
	// Logger receives per-record validation failures and drift warnings.
	// Nil discards them.
	Logger *slog.Logger
}

// Diagnostics reports what an extraction pass dropped or did not
// understand. Attribute lists are deduplicated in first-seen document
// order and stay empty unless drift reporting was enabled.
type Diagnostics struct {
	PlaylistAttrs []string
	FeedAttrs     []string
	EpisodeAttrs  []string

	DroppedPlaylists int
	DroppedFeeds     int
	DroppedEpisodes  int
}

// Extract walks an export tree and builds the validated aggregate. The two
// top-level sections must exist; beyond that, individual records that fail
// validation are logged and dropped without failing the pass.
func Extract(root *opml.Outline, opts Options) (Export, Diagnostics, error) {
	playlistSection := root.Find(elemOutline, "text", sectionPlaylists)
	if playlistSection == nil {
		return Export{}, Diagnostics{}, fmt.Errorf("%w: no outline with text=%q", ErrMissingSection, sectionPlaylists)
	}
	feedSection := root.Find(elemOutline, "text", sectionFeeds)
	if feedSection == nil {
		return Export{}, Diagnostics{}, fmt.Errorf("%w: no outline with text=%q", ErrMissingSection, sectionFeeds)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	ex := &extraction{opts: opts, logger: logger, result: emptyExport()}
	ex.playlists(playlistSection)
	ex.feeds(feedSection)
	ex.reportDrift()

	ex.diags.PlaylistAttrs = ex.playlistDrift.names
	ex.diags.FeedAttrs = ex.feedDrift.names
	ex.diags.EpisodeAttrs = ex.episodeDrift.names
	return ex.result, ex.diags, nil
}

// LoadFile reads, parses, and extracts the export at path. A nonexistent
// file is not an error: there is nothing to report, so the aggregate comes
// back empty.
func LoadFile(path string, opts Options) (Export, Diagnostics, error) {
	root, err := opml.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return emptyExport(), Diagnostics{}, nil
	}
	if err != nil {
		return Export{}, Diagnostics{}, err
	}
	return Extract(root, opts)
}

type extraction struct {
	opts   Options
	logger *slog.Logger

	result Export
	diags  Diagnostics

	playlistDrift driftList
	feedDrift     driftList
	episodeDrift  driftList
}

func (e *extraction) playlists(section *opml.Outline) {
	for _, node := range section.FindAll(elemOutline, "type", typePlaylist) {
		playlist, err := playlistFromNode(node)
		if err != nil {
			e.diags.DroppedPlaylists++
			e.logDropped("dropping playlist that failed validation", err, node)
			continue
		}
		if e.opts.ReportUnknownAttrs {
			e.playlistDrift.collect(node, playlistAttrs)
		}
		e.result.Playlists = append(e.result.Playlists, playlist)
	}
}

func (e *extraction) feeds(section *opml.Outline) {
	for _, node := range section.FindAll(elemOutline, "type", typeFeed) {
		feed, err := feedFromNode(node)
		if err != nil {
			e.diags.DroppedFeeds++
			// The episodes under this node are skipped too: without a
			// valid feed they would have no owner in the result.
			e.logDropped("dropping feed that failed validation", err, node)
			continue
		}
		if e.opts.ReportUnknownAttrs {
			e.feedDrift.collect(node, feedAttrs)
		}
		e.episodes(node, &feed)
		e.result.Feeds = append(e.result.Feeds, feed)
	}
}

// episodes fills feed with the episode nodes nested under feedNode. The
// query is scoped to feedNode's subtree so episodes never leak across
// feeds.
func (e *extraction) episodes(feedNode *opml.Outline, feed *Feed) {
	for _, node := range feedNode.FindAll(elemOutline, "type", typeEpisode) {
		episode, err := episodeFromNode(node)
		if err != nil {
			e.diags.DroppedEpisodes++
			e.logDropped("dropping episode that failed validation", err, node)
			continue
		}
		if e.opts.ReportUnknownAttrs {
			e.episodeDrift.collect(node, episodeAttrs)
		}
		feed.Episodes = append(feed.Episodes, episode)
	}
}

// logDropped emits the validation error together with the node's raw
// attribute bag so the offending record can be reconstructed from logs.
func (e *extraction) logDropped(msg string, err error, node *opml.Outline) {
	raw, _ := json.Marshal(node.AttrMap())
	e.logger.Error(msg, logging.Error(err), logging.String("attrs", string(raw)))
}

func (e *extraction) reportDrift() {
	for _, drift := range []struct {
		kind  string
		names []string
	}{
		{"playlist", e.playlistDrift.names},
		{"feed", e.feedDrift.names},
		{"episode", e.episodeDrift.names},
	} {
		if len(drift.names) == 0 {
			continue
		}
		e.logger.Warn("export has attributes this tool does not parse",
			logging.String("record_kind", drift.kind),
			logging.Any("attributes", drift.names))
	}
}

// driftList accumulates attribute names with no schema field, deduplicated
// in first-seen order.
type driftList struct {
	names []string
	seen  map[string]struct{}
}

// collect scans a successfully decoded node's attributes against the
// record kind's known set.
func (l *driftList) collect(node *opml.Outline, known map[string]struct{}) {
	for _, attr := range node.Attrs {
		if _, ok := structuralAttrs[attr.Name]; ok {
			continue
		}
		if _, ok := known[attr.Name]; ok {
			continue
		}
		l.record(attr.Name)
	}
}

func (l *driftList) record(name string) {
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	if _, ok := l.seen[name]; ok {
		return
	}
	l.seen[name] = struct{}{}
	l.names = append(l.names, name)
}
