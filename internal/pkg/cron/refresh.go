package cron

import (
	"context"
	"time"
)

// Refresher reloads cached collections from their source.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

// NewRefreshJob reloads every record collection at start and on each tick.
func NewRefreshJob(r Refresher, interval time.Duration) Job {
	return Job{
		Name:       "refresh-records",
		Interval:   interval,
		RunOnStart: true,
		Fn:         r.RefreshAll,
	}
}
