package overcast

import "time"

// Playlist is one saved playlist from the export. Smart playlists compute
// membership from rules inside the app; explicit playlists carry identifier
// lists. Identifier order is meaningful and preserved exactly as exported.
type Playlist struct {
	Title             string  `json:"title"`
	Smart             bool    `json:"smart"`
	Sorting           string  `json:"sorting"`
	IncludePodcastIDs []int64 `json:"includePodcastIds,omitempty"`
	IncludeEpisodeIDs []int64 `json:"includeEpisodeIds,omitempty"`
	SortedEpisodeIDs  []int64 `json:"sortedEpisodeIds,omitempty"`
}

// Episode is a single episode belonging to exactly one Feed.
type Episode struct {
	OvercastID          int64      `json:"overcastId"`
	PubDate             time.Time  `json:"pubDate"`
	Title               string     `json:"title"`
	URL                 string     `json:"url"`
	EnclosureURL        string     `json:"enclosureUrl"`
	OvercastURL         string     `json:"overcastUrl"`
	Progress            int64      `json:"progress"`
	UserUpdatedDate     time.Time  `json:"userUpdatedDate"`
	UserDeleted         bool       `json:"userDeleted"`
	Played              bool       `json:"played"`
	UserRecommendedDate *time.Time `json:"userRecommendedDate,omitempty"`
}

// Feed is a subscription (current or lapsed) together with the episodes the
// export nests under it.
type Feed struct {
	OvercastID int64     `json:"overcastId"`
	Title      string    `json:"title"`
	XMLURL     string    `json:"xmlUrl,omitempty"`
	HTMLURL    string    `json:"htmlUrl,omitempty"`
	Subscribed bool      `json:"subscribed"`
	Episodes   []Episode `json:"episodes"`
}

// Export is the validated aggregate for one backup file. Both slices are
// always non-nil so an empty export serializes as empty arrays.
type Export struct {
	Playlists []Playlist `json:"playlists"`
	Feeds     []Feed     `json:"feeds"`
}

func emptyExport() Export {
	return Export{Playlists: []Playlist{}, Feeds: []Feed{}}
}
