package worker

import (
	"context"
	"sort"
	"sync"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/systems/lock"
	"github.com/go-home-io/gluehome/utils"
)

// IWorkerStateProvider state abstraction.
type IWorkerStateProvider interface {
	// Synchronizing served locks with the remote service.
	Discover(ctx context.Context) error
	// Returns all served locks.
	Accessories() []*lock.Accessory
	// Returns served lock.
	Accessory(id string) (*lock.Accessory, bool)
	// Stopping all locks.
	UnloadAll()
}

// Worker state definition.
type workerState struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	sync.Mutex
	discovery sync.Mutex

	filter      *lockFilter
	accessories map[string]*lock.Accessory
}

// Creating a new worker state object.
func newWorkerState(settings providers.ISettingsProvider) (*workerState, error) {
	cfg := settings.Settings()
	filter, err := newLockFilter(cfg.Locks.Include, cfg.Locks.Exclude)
	if err != nil {
		return nil, err
	}

	return &workerState{
		Settings:    settings,
		Logger:      settings.SystemLogger(),
		filter:      filter,
		accessories: make(map[string]*lock.Accessory),
	}, nil
}

// Discover loads new locks, refreshes known ones and removes vanished.
func (w *workerState) Discover(ctx context.Context) error {
	w.discovery.Lock()
	defer w.discovery.Unlock()

	locks, err := w.Settings.GlueAPI().GetLocks(ctx)
	if err != nil {
		w.Logger.Error("Failed to list locks", err, common.LogSystemToken, logSystem)
		return err
	}

	seen := make(map[string]bool)
	for _, l := range locks {
		if !w.filter.Match(l) {
			w.Logger.Debug("Skipping filtered lock", common.LogSystemToken, logSystem,
				common.LogLockIDToken, l.ID, common.LogLockNameToken, l.Description)
			continue
		}

		seen[l.ID] = true
		if a, ok := w.Accessory(l.ID); ok {
			a.Update(l)
			continue
		}

		a, err := w.newAccessory(l)
		if err != nil {
			w.Logger.Error("Failed to load lock, will retry later", err, common.LogSystemToken, logSystem,
				common.LogLockIDToken, l.ID)
			continue
		}

		w.Lock()
		w.accessories[l.ID] = a
		w.Unlock()
	}

	w.Lock()
	defer w.Unlock()
	for k, v := range w.accessories {
		if seen[k] {
			continue
		}

		w.Logger.Info("Lock disappeared, removing", common.LogSystemToken, logSystem, common.LogLockIDToken, k)
		v.Stop()
		delete(w.accessories, k)
	}

	w.Settings.Metrics().LocksServed(len(w.accessories))
	w.Logger.Debug("Done discovering locks", common.LogSystemToken, logSystem)
	return nil
}

// Accessories returns all served locks ordered by id.
func (w *workerState) Accessories() []*lock.Accessory {
	w.Lock()
	defer w.Unlock()

	result := make([]*lock.Accessory, 0, len(w.accessories))
	for _, v := range w.accessories {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})

	return result
}

// Accessory returns served lock.
func (w *workerState) Accessory(id string) (*lock.Accessory, bool) {
	w.Lock()
	defer w.Unlock()

	a, ok := w.accessories[id]
	return a, ok
}

// UnloadAll stops every lock.
func (w *workerState) UnloadAll() {
	w.discovery.Lock()
	defer w.discovery.Unlock()
	w.Lock()
	defer w.Unlock()
	w.Logger.Debug("Unloading locks", common.LogSystemToken, logSystem)

	for k, v := range w.accessories {
		v.Stop()
		delete(w.accessories, k)
	}

	w.Settings.Metrics().LocksServed(0)
	w.Logger.Debug("Done un-loading", common.LogSystemToken, logSystem)
}

// Creates a new accessory for the lock.
func (w *workerState) newAccessory(l *device.Lock) (*lock.Accessory, error) {
	cfg := w.Settings.Settings()
	return lock.NewAccessory(&lock.ConstructAccessory{
		Lock:    l,
		API:     w.Settings.GlueAPI(),
		Cron:    w.Settings.Cron(),
		FanOut:  w.Settings.FanOut(),
		Metrics: w.Settings.Metrics(),
		Logger:  w.Settings.PluginLogger(lock.LogSystem, common.LogLockIDToken, l.ID),
		Policy: &utils.RetryPolicy{
			Attempts: cfg.Poll.Attempts,
			Interval: cfg.Poll.Interval,
		},
		RefreshSpec: utils.EverySpec(cfg.Refresh.Interval),
		Timeout:     cfg.Glue.Timeout,
	})
}
