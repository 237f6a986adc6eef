package overcast

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"overcat/internal/opml"
)

// structuralAttrs are carried by every outline node for structure rather
// than record data. They never count as schema drift.
var structuralAttrs = map[string]struct{}{
	"text": {},
	"type": {},
}

// Known attribute names per record kind. Anything outside these sets (and
// the structural ones) is reported as drift when reporting is enabled.
var (
	playlistAttrs = map[string]struct{}{
		"title":             {},
		"smart":             {},
		"sorting":           {},
		"includePodcastIds": {},
		"includeEpisodeIds": {},
		"sortedEpisodeIds":  {},
	}

	feedAttrs = map[string]struct{}{
		"overcastId": {},
		"title":      {},
		"xmlUrl":     {},
		"htmlUrl":    {},
		"subscribed": {},
	}

	episodeAttrs = map[string]struct{}{
		"overcastId":          {},
		"pubDate":             {},
		"title":               {},
		"url":                 {},
		"enclosureUrl":        {},
		"overcastUrl":         {},
		"progress":            {},
		"userUpdatedDate":     {},
		"userDeleted":         {},
		"played":              {},
		"userRecommendedDate": {},
	}
)

// timeLayouts covers the timestamp shapes Overcast exports use: RFC 3339
// with an offset or Z suffix, and the zone-less ISO 8601 form read as UTC.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

// ParseIDList converts a comma-separated string of decimal identifiers into
// an int64 slice, preserving order and duplicates. Empty entries fail: the
// export never writes an identifier attribute without at least one value.
func ParseIDList(value string) ([]int64, error) {
	pieces := strings.Split(value, ",")
	ids := make([]int64, 0, len(pieces))
	for _, piece := range pieces {
		id, err := strconv.ParseInt(strings.TrimSpace(piece), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q is not an integer", piece)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// attrDecoder reads typed values out of a node's attribute bag. It keeps the
// first failure so constructors can assign every field in one pass and check
// once at the end; the recorded error names the record kind and attribute.
type attrDecoder struct {
	node *opml.Outline
	kind string
	err  error
}

func (d *attrDecoder) fail(name, format string, args ...any) {
	if d.err != nil {
		return
	}
	d.err = fmt.Errorf("%w: %s.%s: %s", ErrSchema, d.kind, name, fmt.Sprintf(format, args...))
}

func (d *attrDecoder) requiredString(name string) string {
	value, ok := d.node.Get(name)
	if !ok {
		d.fail(name, "required attribute is missing")
		return ""
	}
	return value
}

func (d *attrDecoder) optionalString(name string) string {
	value, _ := d.node.Get(name)
	return value
}

func (d *attrDecoder) requiredInt(name string) int64 {
	value, ok := d.node.Get(name)
	if !ok {
		d.fail(name, "required attribute is missing")
		return 0
	}
	return d.parseInt(name, value)
}

func (d *attrDecoder) intOr(name string, fallback int64) int64 {
	value, ok := d.node.Get(name)
	if !ok {
		return fallback
	}
	return d.parseInt(name, value)
}

func (d *attrDecoder) parseInt(name, value string) int64 {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		d.fail(name, "value %q is not an integer", value)
		return 0
	}
	return parsed
}

func (d *attrDecoder) requiredBool(name string) bool {
	value, ok := d.node.Get(name)
	if !ok {
		d.fail(name, "required attribute is missing")
		return false
	}
	return d.parseBool(name, value)
}

func (d *attrDecoder) boolOr(name string, fallback bool) bool {
	value, ok := d.node.Get(name)
	if !ok {
		return fallback
	}
	return d.parseBool(name, value)
}

func (d *attrDecoder) parseBool(name, value string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		d.fail(name, "value %q is not a boolean", value)
		return false
	}
	return parsed
}

func (d *attrDecoder) requiredTime(name string) time.Time {
	value, ok := d.node.Get(name)
	if !ok {
		d.fail(name, "required attribute is missing")
		return time.Time{}
	}
	parsed, err := parseTimestamp(value)
	if err != nil {
		d.fail(name, "%v", err)
		return time.Time{}
	}
	return parsed
}

func (d *attrDecoder) optionalTime(name string) *time.Time {
	value, ok := d.node.Get(name)
	if !ok {
		return nil
	}
	parsed, err := parseTimestamp(value)
	if err != nil {
		d.fail(name, "%v", err)
		return nil
	}
	return &parsed
}

func (d *attrDecoder) optionalIDList(name string) []int64 {
	value, ok := d.node.Get(name)
	if !ok {
		return nil
	}
	ids, err := ParseIDList(value)
	if err != nil {
		d.fail(name, "%v", err)
		return nil
	}
	return ids
}

// playlistFromNode builds a Playlist record from a podcast-playlist node.
func playlistFromNode(node *opml.Outline) (Playlist, error) {
	d := &attrDecoder{node: node, kind: "playlist"}
	playlist := Playlist{
		Title:             d.requiredString("title"),
		Smart:             d.requiredBool("smart"),
		Sorting:           d.requiredString("sorting"),
		IncludePodcastIDs: d.optionalIDList("includePodcastIds"),
		IncludeEpisodeIDs: d.optionalIDList("includeEpisodeIds"),
		SortedEpisodeIDs:  d.optionalIDList("sortedEpisodeIds"),
	}
	if d.err != nil {
		return Playlist{}, d.err
	}
	return playlist, nil
}

// feedFromNode builds a Feed record from an rss node. Episodes start empty;
// the extraction walk fills them in afterwards.
func feedFromNode(node *opml.Outline) (Feed, error) {
	d := &attrDecoder{node: node, kind: "feed"}
	feed := Feed{
		OvercastID: d.requiredInt("overcastId"),
		Title:      d.requiredString("title"),
		XMLURL:     d.optionalString("xmlUrl"),
		HTMLURL:    d.optionalString("htmlUrl"),
		Subscribed: d.boolOr("subscribed", false),
		Episodes:   []Episode{},
	}
	if d.err != nil {
		return Feed{}, d.err
	}
	return feed, nil
}

// episodeFromNode builds an Episode record from a podcast-episode node.
func episodeFromNode(node *opml.Outline) (Episode, error) {
	d := &attrDecoder{node: node, kind: "episode"}
	episode := Episode{
		OvercastID:          d.requiredInt("overcastId"),
		PubDate:             d.requiredTime("pubDate"),
		Title:               d.requiredString("title"),
		URL:                 d.requiredString("url"),
		EnclosureURL:        d.requiredString("enclosureUrl"),
		OvercastURL:         d.requiredString("overcastUrl"),
		Progress:            d.intOr("progress", 0),
		UserUpdatedDate:     d.requiredTime("userUpdatedDate"),
		UserDeleted:         d.boolOr("userDeleted", false),
		Played:              d.boolOr("played", false),
		UserRecommendedDate: d.optionalTime("userRecommendedDate"),
	}
	if d.err != nil {
		return Episode{}, d.err
	}
	return episode, nil
}
