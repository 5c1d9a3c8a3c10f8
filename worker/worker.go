// Package worker contains lock platform logic: discovery and lifecycle of served locks.
package worker

import (
	"context"
	"strconv"
	"sync"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/utils"
	"github.com/pkg/errors"
)

const (
	// Default logger system.
	logSystem = "worker"
)

// Worker is the lock platform.
type Worker struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	state *workerState

	sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	discoveryID int
	started     bool
}

// NewWorker constructs a lock platform.
// settings holds details from parsed yaml and all necessary helper-providers.
func NewWorker(settings providers.ISettingsProvider) (*Worker, error) {
	state, err := newWorkerState(settings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create worker state")
	}

	return &Worker{
		Logger:   settings.SystemLogger(),
		Settings: settings,
		state:    state,
	}, nil
}

// Start runs the first discovery and schedules periodic ones.
// Failed first discovery is retried on schedule.
func (w *Worker) Start(ctx context.Context) error {
	w.Lock()
	defer w.Unlock()

	if w.started {
		return nil
	}

	w.ctx, w.cancel = context.WithCancel(ctx)
	w.discover()

	id, err := w.Settings.Cron().AddFunc(utils.EverySpec(w.Settings.Settings().Refresh.Discovery), w.discover)
	if err != nil {
		w.cancel()
		w.state.UnloadAll()
		return errors.Wrap(err, "failed to schedule discovery")
	}

	w.discoveryID = id
	w.started = true

	w.Logger.Info("Successfully started lock platform", common.LogSystemToken, logSystem,
		"locks", strconv.Itoa(len(w.state.Accessories())))
	return nil
}

// Stop cancels discovery and unloads all locks.
func (w *Worker) Stop() {
	w.Lock()
	defer w.Unlock()

	if !w.started {
		return
	}

	w.Settings.Cron().RemoveFunc(w.discoveryID)
	w.cancel()
	w.state.UnloadAll()
	w.started = false

	w.Logger.Info("Lock platform stopped", common.LogSystemToken, logSystem)
}

// State returns served locks registry.
func (w *Worker) State() IWorkerStateProvider {
	return w.state
}

// Runs a single discovery bounded by the request timeout.
func (w *Worker) discover() {
	if w.ctx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(w.ctx, w.Settings.Settings().Glue.Timeout)
	defer cancel()

	w.Logger.Debug("Discovering locks", common.LogSystemToken, logSystem)
	w.state.Discover(ctx) // nolint: errcheck
}
