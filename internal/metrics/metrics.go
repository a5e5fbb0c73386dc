package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счётчики исходов конвейера. Регистрируются в реестре по умолчанию
// и отдаются через /metrics в режиме демона.
var (
	RunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "publisher_runs_total",
		Help: "Number of pipeline runs by result.",
	}, []string{"result"})

	EntriesSeen = promauto.NewCounter(prometheus.CounterOpts{
		Name: "publisher_entries_seen_total",
		Help: "Number of feed entries inspected.",
	})

	EntriesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "publisher_entries_skipped_total",
		Help: "Number of entries skipped as already published.",
	})

	PostsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "publisher_posts_published_total",
		Help: "Number of posts successfully created in WordPress.",
	})

	PublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "publisher_publish_failures_total",
		Help: "Number of failed post creation attempts.",
	})
)
