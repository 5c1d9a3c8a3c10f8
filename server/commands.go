package server

import (
	"context"
	"net/http"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/systems/lock"
)

// Outcome of a lock command.
type commandResult struct {
	Status  string         `json:"status"`
	ID      string         `json:"id,omitempty"`
	State   string         `json:"state,omitempty"`
	Kind    lock.ErrorKind `json:"kind,omitempty"`
	Problem string         `json:"problem,omitempty"`

	code int
}

// Maps failure kind into HTTP status.
func kindStatus(kind lock.ErrorKind) int {
	switch kind {
	case lock.KindPrecondition:
		return http.StatusConflict
	case lock.KindRemoteRejected, lock.KindTransport:
		return http.StatusBadGateway
	case lock.KindRetryExhausted:
		return http.StatusGatewayTimeout
	case lock.KindCancelled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Moves lock into the target state if it's allowed for the user.
func (s *GlueServer) commandSetState(ctx context.Context, usr *providers.AuthenticatedUser,
	lockID string, stateName string) *commandResult {
	a, ok := s.registry.Accessory(lockID)
	if !ok || !usr.LockGet(lockID) {
		s.Logger.Warn("Failed to find lock", common.LogSystemToken, logSystem,
			common.LogLockIDToken, lockID, common.LogUserNameToken, usr.Username)
		return failedResult(lockID, http.StatusNotFound, "", &ErrUnknownLock{ID: lockID})
	}

	if !usr.LockCommand(lockID) {
		s.Logger.Warn("Command is not allowed", common.LogSystemToken, logSystem,
			common.LogLockIDToken, lockID, common.LogUserNameToken, usr.Username)
		return failedResult(lockID, http.StatusForbidden, "", &ErrForbidden{ID: lockID})
	}

	target, err := enums.LockStateString(stateName)
	if err != nil {
		return failedResult(lockID, http.StatusBadRequest, "", &ErrUnknownState{Name: stateName})
	}

	state, err := a.SetTargetState(ctx, target)
	if err != nil {
		kind := lock.Kind(err)
		s.Logger.Error("Lock command failed", err, common.LogSystemToken, logSystem,
			common.LogLockIDToken, lockID, common.LogUserNameToken, usr.Username, "kind", string(kind))
		return failedResult(lockID, kindStatus(kind), kind, err)
	}

	s.Logger.Info("Lock command succeeded", common.LogSystemToken, logSystem,
		common.LogLockIDToken, lockID, common.LogUserNameToken, usr.Username, "state", state.String())
	return &commandResult{
		Status: statusOK,
		ID:     lockID,
		State:  state.String(),
		code:   http.StatusOK,
	}
}

// Constructs failed command outcome.
func failedResult(lockID string, code int, kind lock.ErrorKind, err error) *commandResult {
	return &commandResult{
		Status:  statusError,
		ID:      lockID,
		Kind:    kind,
		Problem: err.Error(),
		code:    code,
	}
}
