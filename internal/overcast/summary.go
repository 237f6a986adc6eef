package overcast

import "time"

// Summary holds headline counts for one export.
type Summary struct {
	Playlists           int        `json:"playlists"`
	SmartPlaylists      int        `json:"smartPlaylists"`
	Feeds               int        `json:"feeds"`
	SubscribedFeeds     int        `json:"subscribedFeeds"`
	Episodes            int        `json:"episodes"`
	PlayedEpisodes      int        `json:"playedEpisodes"`
	InProgressEpisodes  int        `json:"inProgressEpisodes"`
	DeletedEpisodes     int        `json:"deletedEpisodes"`
	RecommendedEpisodes int        `json:"recommendedEpisodes"`
	NewestEpisode       *time.Time `json:"newestEpisode,omitempty"`
}

// Summarize computes headline statistics for an export in one pass.
// In-progress means partially played: some progress but not marked played.
func Summarize(export Export) Summary {
	summary := Summary{
		Playlists: len(export.Playlists),
		Feeds:     len(export.Feeds),
	}
	for _, playlist := range export.Playlists {
		if playlist.Smart {
			summary.SmartPlaylists++
		}
	}
	for _, feed := range export.Feeds {
		if feed.Subscribed {
			summary.SubscribedFeeds++
		}
		for _, episode := range feed.Episodes {
			summary.Episodes++
			if episode.Played {
				summary.PlayedEpisodes++
			}
			if episode.Progress > 0 && !episode.Played {
				summary.InProgressEpisodes++
			}
			if episode.UserDeleted {
				summary.DeletedEpisodes++
			}
			if episode.UserRecommendedDate != nil {
				summary.RecommendedEpisodes++
			}
			if summary.NewestEpisode == nil || episode.PubDate.After(*summary.NewestEpisode) {
				pubDate := episode.PubDate
				summary.NewestEpisode = &pubDate
			}
		}
	}
	return summary
}

// FeedStat is one row of the per-feed breakdown.
type FeedStat struct {
	Title      string `json:"title"`
	Subscribed bool   `json:"subscribed"`
	Episodes   int    `json:"episodes"`
	Played     int    `json:"played"`
	Deleted    int    `json:"deleted"`
}

// FeedStats returns a per-feed breakdown in export order.
func FeedStats(export Export) []FeedStat {
	stats := make([]FeedStat, 0, len(export.Feeds))
	for _, feed := range export.Feeds {
		stat := FeedStat{
			Title:      feed.Title,
			Subscribed: feed.Subscribed,
			Episodes:   len(feed.Episodes),
		}
		for _, episode := range feed.Episodes {
			if episode.Played {
				stat.Played++
			}
			if episode.UserDeleted {
				stat.Deleted++
			}
		}
		stats = append(stats, stat)
	}
	return stats
}
