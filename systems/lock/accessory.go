package lock

import (
	"context"
	"time"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/utils"
)

// ChargingNotChargeable is reported as battery charging state.
const ChargingNotChargeable = "not chargeable"

// ConstructAccessory has data required for a new accessory.
type ConstructAccessory struct {
	Lock        *device.Lock
	API         providers.IGlueAPIProvider
	Cron        providers.ICronProvider
	FanOut      providers.IInternalFanOutProvider
	Metrics     providers.IMetricsProvider
	Logger      common.ILoggerProvider
	Policy      *utils.RetryPolicy
	RefreshSpec string
	Timeout     time.Duration
}

// Information describes accessory for the host.
type Information struct {
	Manufacturer    string `json:"manufacturer"`
	Model           string `json:"model"`
	SerialNumber    string `json:"serial"`
	Name            string `json:"name"`
	FirmwareVersion string `json:"firmware"`
}

// View is a host-facing state of the accessory.
type View struct {
	ID string `json:"id"`
	Information
	BatteryLevel  uint8                  `json:"battery_level"`
	BatteryLow    bool                   `json:"battery_low"`
	Charging      string                 `json:"charging"`
	Connection    enums.ConnectionStatus `json:"connection"`
	HubID         string                 `json:"hub_id,omitempty"`
	CurrentState  enums.LockState        `json:"current"`
	TargetState   enums.LockState        `json:"target"`
	LastEventDate *time.Time             `json:"last_event,omitempty"`
}

// Accessory binds together lock snapshot, command controller and reconciler.
type Accessory struct {
	logger     common.ILoggerProvider
	metrics    providers.IMetricsProvider
	device     *Device
	controller *Controller
	reconciler *Reconciler

	ctx    context.Context
	cancel context.CancelFunc
}

// NewAccessory constructs a new accessory, publishes its initial state and schedules refresh.
func NewAccessory(ctor *ConstructAccessory) (*Accessory, error) {
	dev := NewDevice(ctor.Lock, ctor.FanOut, ctor.Logger)
	a := &Accessory{
		logger:  ctor.Logger,
		metrics: ctor.Metrics,
		device:  dev,
		controller: NewController(&ConstructController{
			Device: dev,
			API:    ctor.API,
			Logger: ctor.Logger,
			Policy: ctor.Policy,
		}),
		reconciler: NewReconciler(&ConstructReconciler{
			Device:  dev,
			API:     ctor.API,
			Cron:    ctor.Cron,
			Metrics: ctor.Metrics,
			Logger:  ctor.Logger,
			Spec:    ctor.RefreshSpec,
			Timeout: ctor.Timeout,
		}),
	}

	a.ctx, a.cancel = context.WithCancel(context.Background())
	dev.Publish()
	if err := a.reconciler.Start(); err != nil {
		a.cancel()
		return nil, err
	}

	a.logger.Info("Lock accessory created", common.LogLockNameToken, ctor.Lock.Description)
	return a, nil
}

// ID returns lock id.
func (a *Accessory) ID() string {
	return a.device.ID()
}

// Device returns snapshot holder.
func (a *Accessory) Device() *Device {
	return a.device
}

// Information returns static accessory information.
func (a *Accessory) Information() *Information {
	l := a.device.Snapshot()
	return &Information{
		Manufacturer:    device.Manufacturer,
		Model:           l.Model(),
		SerialNumber:    l.SerialNumber,
		Name:            l.Description,
		FirmwareVersion: l.FirmwareVersion,
	}
}

// CurrentState returns the last known canonical state.
func (a *Accessory) CurrentState() enums.LockState {
	return a.device.State()
}

// TargetState reports the current state, commands are synchronous.
func (a *Accessory) TargetState() enums.LockState {
	return a.device.State()
}

// SetTargetState runs command which moves lock into the target state.
// Command is cancelled either with ctx or when accessory is stopped.
// Metrics are optional.
func (a *Accessory) SetTargetState(ctx context.Context, target enums.LockState) (enums.LockState, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer context.AfterFunc(a.ctx, cancel)()

	start := time.Now()
	state, err := a.controller.SetState(ctx, target)
	if nil != a.metrics {
		a.metrics.CommandExecuted(target.String(), string(Kind(err)), time.Since(start))
	}

	return state, err
}

// Update replaces snapshot with the one received by discovery.
func (a *Accessory) Update(l *device.Lock) {
	a.device.Replace(l)
}

// View returns host-facing state.
func (a *Accessory) View() *View {
	l := a.device.Snapshot()
	v := &View{
		ID:           l.ID,
		Information:  *a.Information(),
		BatteryLevel: l.BatteryLevel(),
		BatteryLow:   l.IsBatteryLow(),
		Charging:     ChargingNotChargeable,
		Connection:   l.ConnectionStatus,
		HubID:        l.HubID,
		CurrentState: a.CurrentState(),
		TargetState:  a.TargetState(),
	}

	if nil != l.LastLockEvent {
		date := l.LastLockEvent.Date
		v.LastEventDate = &date
	}

	return v
}

// Stop cancels refresh and running commands.
func (a *Accessory) Stop() {
	a.cancel()
	a.reconciler.Stop()
	a.logger.Info("Lock accessory removed")
}
