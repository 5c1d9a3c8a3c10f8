package glue

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-home-io/gluehome/mocks"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) providers.IGlueAPIProvider {
	return NewClient(&ConstructClient{
		URL:     url,
		APIKey:  "key-1",
		Timeout: 2 * time.Second,
		Logger:  mocks.FakeNewLogger(nil),
	})
}

// Tests that every request carries authentication and client headers.
func TestClientHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Api-Key key-1", r.Header.Get("Authorization"))
		assert.Equal(t, UserAgent(), r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get(headerRequestID))
		assert.Equal(t, "/v1/locks", r.URL.Path)
		w.Write([]byte(`[]`)) // nolint: errcheck
	}))
	defer srv.Close()

	locks, err := newTestClient(srv.URL).GetLocks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, locks)
}

// Tests lock snapshot decoding.
func TestClientGetLock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/locks/l1", r.URL.Path)
		w.Write([]byte(`{"id":"l1","serialNumber":"2011-1234","description":"Front door",` + // nolint: errcheck
			`"firmwareVersion":"1.2","batteryStatus":200,"connectionStatus":"connected",` +
			`"lastLockEvent":{"eventType":"manualUnlock","lastLockEventDate":"2020-01-02T03:04:05Z"}}`))
	}))
	defer srv.Close()

	l, err := newTestClient(srv.URL).GetLock(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, "Front door", l.Description)
	assert.Equal(t, "2011", l.Model())
	assert.True(t, l.IsConnected())
	require.NotNil(t, l.LastLockEvent)
	assert.Equal(t, enums.EventManualUnlock, l.LastLockEvent.EventType)
	assert.Equal(t, 2020, l.LastLockEvent.Date.Year())

	state, ok := l.CurrentState()
	assert.True(t, ok)
	assert.Equal(t, enums.LockUnsecured, state)
}

// Tests operation creation request body.
func TestClientCreateLockOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/locks/l1/operations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body := make(map[string]string)
		data, _ := ioutil.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		assert.Equal(t, "unlock", body["type"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"op1","status":"pending"}`)) // nolint: errcheck
	}))
	defer srv.Close()

	op, err := newTestClient(srv.URL).CreateLockOperation(context.Background(), "l1", enums.OpUnlock)
	require.NoError(t, err)
	assert.Equal(t, "op1", op.ID)
	assert.Equal(t, "l1", op.LockID)
	assert.Equal(t, enums.OpStatusPending, op.Status)
	assert.False(t, op.IsFinished())
}

// Tests operation poll decoding.
func TestClientGetLockOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/locks/l1/operations/op1", r.URL.Path)
		w.Write([]byte(`{"id":"op1","lockId":"l1","status":"failed","reason":"jammed"}`)) // nolint: errcheck
	}))
	defer srv.Close()

	op, err := newTestClient(srv.URL).GetLockOperation(context.Background(), "l1", "op1")
	require.NoError(t, err)
	assert.Equal(t, enums.OpStatusFailed, op.Status)
	assert.Equal(t, "jammed", op.Reason)
	assert.True(t, op.IsFinished())
}

// Tests status code mapping.
func TestClientErrors(t *testing.T) {
	data := []struct {
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				var e *ErrUnauthorized
				assert.True(t, errors.As(err, &e))
			},
		},
		{
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				var e *ErrNotFound
				require.True(t, errors.As(err, &e))
				assert.Equal(t, "/v1/locks/l1", e.Path)
			},
		},
		{
			status: http.StatusBadRequest,
			body:   `{"title":"Bad lock","code":42,"detail":"nope","correlationId":"c-1"}`,
			check: func(t *testing.T, err error) {
				var e *ErrServer
				require.True(t, errors.As(err, &e))
				assert.Equal(t, "Bad lock", e.Title)
				assert.Equal(t, 42, e.Code)
				assert.Equal(t, "c-1", e.CorrelationID)
				assert.Contains(t, e.Error(), "nope")
			},
		},
		{
			status: http.StatusInternalServerError,
			body:   `garbage`,
			check: func(t *testing.T, err error) {
				var e *ErrServer
				require.True(t, errors.As(err, &e))
				assert.Equal(t, http.StatusText(http.StatusInternalServerError), e.Title)
				assert.Equal(t, http.StatusInternalServerError, e.Code)
			},
		},
	}

	for _, v := range data {
		v := v
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(v.status)
			w.Write([]byte(v.body)) // nolint: errcheck
		}))

		_, err := newTestClient(srv.URL).GetLock(context.Background(), "l1")
		require.Error(t, err, "status %d", v.status)
		v.check(t, err)
		srv.Close()
	}
}

// Tests that unreachable service yields transport error.
func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).GetLock(context.Background(), "l1")
	var e *ErrTransport
	assert.True(t, errors.As(err, &e))
}

// Tests request timeout.
func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(&ConstructClient{
		URL:     srv.URL,
		Timeout: 50 * time.Millisecond,
		Logger:  mocks.FakeNewLogger(nil),
	})

	_, err := c.GetLock(context.Background(), "l1")
	var e *ErrTransport
	assert.True(t, errors.As(err, &e))
}

// Tests malformed success body.
func TestClientDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":`)) // nolint: errcheck
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetLock(context.Background(), "l1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

// Tests defaults.
func TestClientDefaults(t *testing.T) {
	c := NewClient(&ConstructClient{Logger: mocks.FakeNewLogger(nil)}).(*client)
	assert.Equal(t, DefaultURL, c.url)
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

// Tests API key issuance.
func TestIssueAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/api-keys", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		if user != "john" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		req := &apiKeyRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(req))
		assert.Equal(t, apiKeyScopes, req.Scopes)
		w.Write([]byte(`{"apiKey":"issued"}`)) // nolint: errcheck
	}))
	defer srv.Close()

	key, err := IssueAPIKey(context.Background(), srv.URL, time.Second, "john", "secret")
	require.NoError(t, err)
	assert.Equal(t, "issued", key)

	_, err = IssueAPIKey(context.Background(), srv.URL, time.Second, "john", "wrong")
	var e *ErrUnauthorized
	assert.True(t, errors.As(err, &e))
}
