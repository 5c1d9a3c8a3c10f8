package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/go-home-io/gluehome/mocks"
	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/providers"
	"github.com/go-home-io/gluehome/systems/lock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns ids of returned views.
func viewIDs(t *testing.T, body []byte) []string {
	views := make([]*lock.View, 0)
	require.NoError(t, json.Unmarshal(body, &views))

	ids := make([]string, 0)
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}

// Returns command result.
func getResult(t *testing.T, body []byte) *commandResult {
	r := &commandResult{}
	require.NoError(t, json.Unmarshal(body, r), string(body))
	return r
}

// Tests list of locks.
func TestGetLocks(t *testing.T) {
	data := []struct {
		usr *providers.AuthenticatedUser
		ids []string
	}{
		{nil, []string{"l1", "l2", "l3"}},
		{getUser("*", providers.SecVerbAll), []string{"l1", "l2", "l3"}},
		{getUser("l1", providers.SecVerbGet), []string{"l1"}},
		{getUser("l?", providers.SecVerbCommand), []string{}},
	}

	for i, v := range data {
		env := newTestServer(t, v.usr)
		code, _, body := env.call(t, http.MethodGet, "/api/v1/lock", nil)
		require.Equal(t, http.StatusOK, code, "%d", i)
		assert.Equal(t, v.ids, viewIDs(t, body), "%d", i)
	}
}

// Tests single lock.
func TestGetLock(t *testing.T) {
	data := []struct {
		usr  *providers.AuthenticatedUser
		id   string
		code int
	}{
		{nil, "l1", http.StatusOK},
		{nil, "l9", http.StatusNotFound},
		{getUser("l1", providers.SecVerbGet), "l1", http.StatusOK},
		{getUser("l1", providers.SecVerbGet), "l2", http.StatusNotFound},
	}

	for i, v := range data {
		env := newTestServer(t, v.usr)
		code, _, _ := env.call(t, http.MethodGet, "/api/v1/lock/"+v.id, nil)
		assert.Equal(t, v.code, code, "%d", i)
	}
}

// Tests failed authentication.
func TestUnauthorized(t *testing.T) {
	env := newTestServer(t, nil)
	env.settings.Sec = mocks.FakeNewSecurity(true, nil, errors.New("no header"))

	for _, v := range []string{"/api/v1/lock", "/api/v1/lock/l1", "/api/v1/ws"} {
		code, _, _ := env.call(t, http.MethodGet, v, nil)
		assert.Equal(t, http.StatusForbidden, code, v)
	}

	code, _, _ := env.call(t, http.MethodPost, "/api/v1/lock/l1/unsecured", nil)
	assert.Equal(t, http.StatusForbidden, code)
	created, _, _ := env.api.Calls()
	assert.Equal(t, 0, created)

	code, _, _ = env.call(t, http.MethodGet, "/pub/ping", nil)
	assert.Equal(t, http.StatusOK, code)
}

// Tests successful command.
func TestLockCommandSucceeded(t *testing.T) {
	env := newTestServer(t, nil)
	env.api.Created = &device.LockOperation{ID: "op1", LockID: "l1", Status: enums.OpStatusPending}
	env.api.Polls = []*device.LockOperation{{ID: "op1", LockID: "l1", Status: enums.OpStatusCompleted}}

	code, _, body := env.call(t, http.MethodPost, "/api/v1/lock/l1/unsecured", nil)
	require.Equal(t, http.StatusOK, code, string(body))

	res := getResult(t, body)
	assert.Equal(t, statusOK, res.Status)
	assert.Equal(t, "unsecured", res.State)
	assert.Equal(t, []enums.OperationType{enums.OpUnlock}, env.api.CreatedTypes)

	_, _, body = env.call(t, http.MethodGet, "/api/v1/lock/l1", nil)
	assert.Contains(t, string(body), `"current":"unsecured"`)
}

// Tests failed commands.
func TestLockCommandFailed(t *testing.T) {
	data := []struct {
		name    string
		usr     *providers.AuthenticatedUser
		url     string
		created *device.LockOperation
		polls   []*device.LockOperation
		err     error
		code    int
		kind    lock.ErrorKind
	}{
		{
			name: "unknown lock",
			url:  "/api/v1/lock/l9/secured",
			code: http.StatusNotFound,
		},
		{
			name: "hidden lock",
			usr:  getUser("l2", providers.SecVerbAll),
			url:  "/api/v1/lock/l1/secured",
			code: http.StatusNotFound,
		},
		{
			name: "read only",
			usr:  getUser("l1", providers.SecVerbGet),
			url:  "/api/v1/lock/l1/secured",
			code: http.StatusForbidden,
		},
		{
			name: "wrong state",
			url:  "/api/v1/lock/l1/open",
			code: http.StatusBadRequest,
		},
		{
			name: "unknown target",
			url:  "/api/v1/lock/l1/unknown",
			code: http.StatusConflict,
			kind: lock.KindPrecondition,
		},
		{
			name: "offline",
			url:  "/api/v1/lock/l3/secured",
			code: http.StatusConflict,
			kind: lock.KindPrecondition,
		},
		{
			name:    "rejected",
			url:     "/api/v1/lock/l1/secured",
			created: &device.LockOperation{ID: "op1", Status: enums.OpStatusPending},
			polls:   []*device.LockOperation{{ID: "op1", Status: enums.OpStatusFailed, Reason: "jammed"}},
			code:    http.StatusBadGateway,
			kind:    lock.KindRemoteRejected,
		},
		{
			name:    "exhausted",
			url:     "/api/v1/lock/l1/secured",
			created: &device.LockOperation{ID: "op1", Status: enums.OpStatusPending},
			polls:   []*device.LockOperation{{ID: "op1", Status: enums.OpStatusPending}},
			code:    http.StatusGatewayTimeout,
			kind:    lock.KindRetryExhausted,
		},
		{
			name: "transport",
			url:  "/api/v1/lock/l1/secured",
			err:  errors.New("connection refused"),
			code: http.StatusBadGateway,
			kind: lock.KindTransport,
		},
	}

	for _, v := range data {
		env := newTestServer(t, v.usr)
		env.api.Created = v.created
		env.api.Polls = v.polls
		env.api.CreateErr = v.err

		code, _, body := env.call(t, http.MethodPost, v.url, nil)
		assert.Equal(t, v.code, code, v.name)

		res := getResult(t, body)
		assert.Equal(t, statusError, res.Status, v.name)
		assert.Equal(t, v.kind, res.Kind, v.name)
		assert.NotEmpty(t, res.Problem, v.name)
	}
}

// Tests replay of the command with the same idempotency key.
func TestLockCommandIdempotent(t *testing.T) {
	env := newTestServer(t, nil)
	env.api.Created = &device.LockOperation{ID: "op1", LockID: "l1", Status: enums.OpStatusCompleted}

	headers := map[string]string{headerIdempotencyKey: "k1"}
	code, h, first := env.call(t, http.MethodPost, "/api/v1/lock/l1/unsecured", headers)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, h.Get("Idempotent-Replayed"))

	code, h, second := env.call(t, http.MethodPost, "/api/v1/lock/l1/unsecured", headers)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "true", h.Get("Idempotent-Replayed"))
	assert.Equal(t, first, second)
	created, _, _ := env.api.Calls()
	assert.Equal(t, 1, created)

	env.call(t, http.MethodPost, "/api/v1/lock/l1/unsecured", map[string]string{headerIdempotencyKey: "k2"})
	env.call(t, http.MethodPost, "/api/v1/lock/l1/secured", headers)
	env.call(t, http.MethodPost, "/api/v1/lock/l1/secured", nil)
	created, _, _ = env.api.Calls()
	assert.Equal(t, 4, created)
}

// Tests concurrent requests with the same idempotency key.
func TestLockCommandIdempotentConcurrent(t *testing.T) {
	env := newTestServer(t, nil)
	env.api.Created = &device.LockOperation{ID: "op1", LockID: "l1", Status: enums.OpStatusCompleted}

	var wg sync.WaitGroup
	codes := make([]int, 5)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i], _, _ = env.call(t, http.MethodPost, "/api/v1/lock/l1/secured",
				map[string]string{headerIdempotencyKey: "same"})
		}(i)
	}

	wg.Wait()
	for i, v := range codes {
		assert.Equal(t, http.StatusOK, v, fmt.Sprintf("request %d", i))
	}

	created, _, _ := env.api.Calls()
	assert.Equal(t, 1, created)
}

// Tests mapping of failure kinds.
func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, kindStatus(lock.KindCancelled))
	assert.Equal(t, http.StatusInternalServerError, kindStatus(lock.KindNone))
}
