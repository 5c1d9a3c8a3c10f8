package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/providers"
	"github.com/pkg/errors"
)

const (
	// DefaultRefreshSpec is the default reconciliation schedule.
	DefaultRefreshSpec = "@every 10s"
	// DefaultRequestTimeout bounds a single snapshot fetch.
	DefaultRequestTimeout = 60 * time.Second
)

// ConstructReconciler has data required for a new reconciler.
type ConstructReconciler struct {
	Device  *Device
	API     providers.IGlueAPIProvider
	Cron    providers.ICronProvider
	Metrics providers.IMetricsProvider
	Logger  common.ILoggerProvider
	Spec    string
	Timeout time.Duration
}

// Reconciler periodically replaces lock snapshot with the remote one.
type Reconciler struct {
	device  *Device
	api     providers.IGlueAPIProvider
	cron    providers.ICronProvider
	metrics providers.IMetricsProvider
	logger  common.ILoggerProvider
	spec    string
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	inFlight int32

	sync.Mutex
	wg      sync.WaitGroup
	cronID  int
	started bool
	stopped bool
}

// NewReconciler constructs a new reconciler, call Start to schedule it.
func NewReconciler(ctor *ConstructReconciler) *Reconciler {
	r := &Reconciler{
		device:  ctor.Device,
		api:     ctor.API,
		cron:    ctor.Cron,
		metrics: ctor.Metrics,
		logger:  ctor.Logger,
		spec:    ctor.Spec,
		timeout: ctor.Timeout,
	}

	if "" == r.spec {
		r.spec = DefaultRefreshSpec
	}

	if r.timeout <= 0 {
		r.timeout = DefaultRequestTimeout
	}

	r.ctx, r.cancel = context.WithCancel(context.Background())
	return r
}

// Start schedules periodic refresh.
func (r *Reconciler) Start() error {
	r.Lock()
	defer r.Unlock()

	if r.stopped {
		return errors.New("reconciler is stopped")
	}

	if r.started {
		return nil
	}

	id, err := r.cron.AddFunc(r.spec, r.Tick)
	if err != nil {
		return errors.Wrapf(err, "failed to schedule refresh %s", r.spec)
	}

	r.cronID = id
	r.started = true
	return nil
}

// Stop removes schedule and cancels in-flight fetch.
// Returns after the running tick finishes.
func (r *Reconciler) Stop() {
	r.Lock()
	if r.stopped {
		r.Unlock()
		return
	}

	r.stopped = true
	if r.started {
		r.cron.RemoveFunc(r.cronID)
	}
	r.Unlock()

	r.cancel()
	r.wg.Wait()
}

// Tick fetches a fresh snapshot.
// Skipped if previous tick is still running.
func (r *Reconciler) Tick() {
	if !atomic.CompareAndSwapInt32(&r.inFlight, 0, 1) {
		r.logger.Debug("Previous refresh is still running, skipping")
		return
	}
	defer atomic.StoreInt32(&r.inFlight, 0)

	r.Lock()
	if r.stopped {
		r.Unlock()
		return
	}
	r.wg.Add(1)
	r.Unlock()
	defer r.wg.Done()

	ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
	defer cancel()

	l, err := r.api.GetLock(ctx, r.device.ID())
	if err != nil {
		if r.ctx.Err() != nil {
			return
		}

		r.logger.Error("Failed to refresh lock", err)
		r.record(false)
		return
	}

	r.device.Replace(l)
	r.record(true)
}

func (r *Reconciler) record(success bool) {
	if nil != r.metrics {
		r.metrics.LockRefreshed(success)
	}
}
