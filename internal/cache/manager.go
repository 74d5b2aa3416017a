package cache

import (
	"context"
	"sync"
	"time"

	"github.com/thebettinginsider/splitsight/internal/logging"
	"github.com/thebettinginsider/splitsight/internal/splits"
)

// DefaultTTL is how long a snapshot stays fresh.
const DefaultTTL = 30 * time.Minute

// RefreshFunc runs the full scrape pipeline and returns whatever games
// it collected. A total source failure yields an empty slice, which is
// still installed as the authoritative snapshot.
type RefreshFunc func(ctx context.Context) []splits.Game

// InstallHook observes each newly installed snapshot.
type InstallHook func(ctx context.Context, snap splits.Snapshot)

// Config assembles a Manager. Zero values get defaults.
type Config struct {
	Store     Store
	Refresh   RefreshFunc
	TTL       time.Duration
	Now       func() time.Time
	OnInstall InstallHook
}

// Manager owns the current snapshot and its time-to-live. The refresh
// mutex is held for the whole pipeline run, so concurrent callers that
// observe an expired snapshot share a single refresh instead of racing
// each other.
type Manager struct {
	store     Store
	refresh   RefreshFunc
	ttl       time.Duration
	now       func() time.Time
	onInstall InstallHook

	mu sync.Mutex
}

func NewManager(cfg Config) *Manager {
	store := cfg.Store
	if store == nil {
		store = NewMemoryStore()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		store:     store,
		refresh:   cfg.Refresh,
		ttl:       ttl,
		now:       now,
		onInstall: cfg.OnInstall,
	}
}

// GetOrRefresh returns the cached games when a non-empty snapshot is
// still fresh, otherwise it synchronously runs the pipeline and
// installs the result. The bool reports whether the cache was served.
func (m *Manager) GetOrRefresh(ctx context.Context) ([]splits.Game, time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, ok, err := m.store.Get(ctx)
	if err != nil {
		return nil, time.Time{}, false, err
	}
	if ok && len(snap.Games) > 0 && m.isFresh(snap) {
		logging.Debugf("[cache] serving snapshot (age %s)", m.now().Sub(snap.CapturedAt))
		return snap.Games, snap.CapturedAt, true, nil
	}

	logging.Infof("[cache] snapshot empty or expired, refreshing")
	games, capturedAt, err := m.install(ctx)
	return games, capturedAt, false, err
}

// Peek returns the stored snapshot without triggering a refresh.
func (m *Manager) Peek(ctx context.Context) (*splits.Snapshot, bool, error) {
	return m.store.Get(ctx)
}

// ForceRefresh unconditionally clears the snapshot, then rebuilds it,
// returning the new games and their capture time.
func (m *Manager) ForceRefresh(ctx context.Context) ([]splits.Game, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		return nil, time.Time{}, err
	}
	return m.install(ctx)
}

// isFresh applies the TTL with an inclusive boundary: a snapshot
// exactly TTL old is still fresh, one second older is not.
func (m *Manager) isFresh(snap *splits.Snapshot) bool {
	return m.now().Sub(snap.CapturedAt) <= m.ttl
}

// install runs the pipeline and replaces the snapshot wholesale.
// Callers keep seeing the old snapshot until Set completes, never a
// half-built one.
func (m *Manager) install(ctx context.Context) ([]splits.Game, time.Time, error) {
	games := m.refresh(ctx)
	snap := splits.Snapshot{Games: games, CapturedAt: m.now()}
	if err := m.store.Set(ctx, snap); err != nil {
		return nil, time.Time{}, err
	}
	logging.Infof("[cache] installed snapshot with %d games", len(games))
	if m.onInstall != nil {
		m.onInstall(ctx, snap)
	}
	return snap.Games, snap.CapturedAt, nil
}
