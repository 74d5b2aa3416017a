// Package cache holds the most recent deduplicated game set with a
// time-to-live.
package cache

import (
	"context"

	"github.com/thebettinginsider/splitsight/internal/splits"
)

// Store holds at most one current snapshot. Set replaces it wholesale;
// no implementation keeps history.
type Store interface {
	Get(ctx context.Context) (*splits.Snapshot, bool, error)
	Set(ctx context.Context, snap splits.Snapshot) error
	Clear(ctx context.Context) error
	Close() error
}
