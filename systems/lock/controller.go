package lock

import (
	"context"
	"strconv"
	"time"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/utils"
)

const (
	// DefaultPollAttempts is the default number of operation polls.
	DefaultPollAttempts = 5
	// DefaultPollInterval is the default pause between operation polls.
	DefaultPollInterval = 2 * time.Second
)

// ConstructController has data required for a new controller.
type ConstructController struct {
	Device *Device
	API    providers.IGlueAPIProvider
	Logger common.ILoggerProvider
	Policy *utils.RetryPolicy

	Sleeper utils.Sleeper
	Now     func() time.Time
}

// Controller submits commands and follows them until a terminal status.
type Controller struct {
	device  *Device
	api     providers.IGlueAPIProvider
	logger  common.ILoggerProvider
	policy  *utils.RetryPolicy
	sleeper utils.Sleeper
	now     func() time.Time
}

// NewController constructs a new command controller.
func NewController(ctor *ConstructController) *Controller {
	c := &Controller{
		device:  ctor.Device,
		api:     ctor.API,
		logger:  ctor.Logger,
		policy:  ctor.Policy,
		sleeper: ctor.Sleeper,
		now:     ctor.Now,
	}

	if nil == c.policy {
		c.policy = &utils.RetryPolicy{Attempts: DefaultPollAttempts, Interval: DefaultPollInterval}
	}

	if nil == c.sleeper {
		c.sleeper = utils.Sleep
	}

	if nil == c.now {
		c.now = time.Now
	}

	return c
}

// SetState moves lock into the requested canonical state.
func (c *Controller) SetState(ctx context.Context, target enums.LockState) (enums.LockState, error) {
	op, ok := device.CommandForState(target)
	if !ok {
		return enums.LockUnknown, &ErrInvalidTarget{State: target}
	}

	return c.Execute(ctx, op)
}

// Execute submits the command and waits for its terminal status.
// On success lock snapshot is stamped with the corresponding remote event.
func (c *Controller) Execute(ctx context.Context, opType enums.OperationType) (enums.LockState, error) {
	lockID := c.device.ID()
	snap := c.device.Snapshot()
	if !snap.IsConnected() {
		c.logger.Warn("Lock is not connected, skipping command",
			common.LogOperationTypeToken, opType.String(), common.LogDevicePropertyToken, snap.ConnectionStatus.String())
		return enums.LockUnknown, &ErrNotConnected{LockID: lockID, Status: snap.ConnectionStatus}
	}

	op, err := c.api.CreateLockOperation(ctx, lockID, opType)
	if err != nil {
		err = c.remoteError(ctx, err)
		c.logger.Error("Failed to submit command", err, common.LogOperationTypeToken, opType.String())
		return enums.LockUnknown, err
	}

	c.logger.Debug("Command submitted", common.LogOperationTypeToken, opType.String(),
		common.LogOperationToken, op.ID, common.LogOperationStatusToken, op.Status.String())

	if !op.IsFinished() {
		op, err = utils.RetryWithSleeper(ctx, c.policy, c.sleeper, c.pollTask(lockID, op.ID))
		if err != nil {
			c.logger.Error("Failed to wait for command", err, common.LogOperationTypeToken, opType.String())
			return enums.LockUnknown, err
		}
	}

	if op.Status != enums.OpStatusCompleted {
		err := &ErrOperationFailed{OperationID: op.ID, Status: op.Status, Reason: op.Reason}
		c.logger.Error("Command was not completed", err, common.LogOperationToken, op.ID,
			common.LogOperationStatusToken, op.Status.String())
		return enums.LockUnknown, err
	}

	event := device.EventForCommand(opType)
	c.device.Replace(c.device.Snapshot().WithLastEvent(event, c.now()))

	state := device.TranslateEvent(event)
	c.logger.Info("Command completed", common.LogOperationToken, op.ID,
		common.LogOperationTypeToken, opType.String())
	return state, nil
}

// Returns a single poll attempt.
func (c *Controller) pollTask(lockID string, operationID string) utils.RetryTask[*device.LockOperation] {
	attempt := 0
	return func(ctx context.Context) (*device.LockOperation, error) {
		attempt++
		op, err := c.api.GetLockOperation(ctx, lockID, operationID)
		if err != nil {
			return nil, c.remoteError(ctx, err)
		}

		if !op.IsFinished() {
			c.logger.Debug("Command is still pending", common.LogOperationToken, operationID,
				common.LogAttemptToken, strconv.Itoa(attempt))
			return nil, utils.Recoverable(&ErrPending{OperationID: operationID, Status: op.Status})
		}

		return op, nil
	}
}

// Classifies client error, cancelled context takes priority.
func (c *Controller) remoteError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &utils.ErrCancelled{Cause: ctxErr}
	}

	return &ErrTransport{Cause: err}
}
