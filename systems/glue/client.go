// Package glue contains HTTP client of the GlueHome remote lock service.
package glue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/go-home-io/gluehome/plugins/common"
	"github.com/go-home-io/gluehome/plugins/device"
	"github.com/go-home-io/gluehome/plugins/device/enums"
	"github.com/go-home-io/gluehome/providers"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// Logger system.
	logSystem = "glue"

	// DefaultURL is production API location.
	DefaultURL = "https://user-api.gluehome.com"
	// DefaultTimeout is request level timeout.
	DefaultTimeout = 60 * time.Second

	// Header with outgoing request ID.
	headerRequestID = "X-Request-ID"
	// Max error body we try to parse.
	maxErrorBody = 64 * 1024
)

// Version is reported in the User-Agent, set at build time.
var Version = "dev"

// UserAgent returns User-Agent value sent with every request.
func UserAgent() string {
	return fmt.Sprintf("gluehome/%s (%s %s)", Version, runtime.GOOS, runtime.GOARCH)
}

// ConstructClient has data required for a new API client.
type ConstructClient struct {
	URL     string
	APIKey  string
	Timeout time.Duration
	Logger  common.ILoggerProvider

	HTTPClient *http.Client
}

// Client implementation.
type client struct {
	url        string
	apiKey     string
	timeout    time.Duration
	logger     common.ILoggerProvider
	httpClient *http.Client
}

// Operation creation request.
type createLockOperation struct {
	Type enums.OperationType `json:"type"`
}

// NewClient constructs a new remote API client.
func NewClient(ctor *ConstructClient) providers.IGlueAPIProvider {
	c := &client{
		url:        strings.TrimRight(ctor.URL, "/"),
		apiKey:     ctor.APIKey,
		timeout:    ctor.Timeout,
		logger:     ctor.Logger,
		httpClient: ctor.HTTPClient,
	}

	if "" == c.url {
		c.url = DefaultURL
	}

	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}

	if nil == c.httpClient {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// GetLocks returns all locks available for the API key.
func (c *client) GetLocks(ctx context.Context) ([]*device.Lock, error) {
	locks := make([]*device.Lock, 0)
	if err := c.do(ctx, http.MethodGet, "/v1/locks", nil, &locks); err != nil {
		return nil, err
	}

	return locks, nil
}

// GetLock returns fresh snapshot of the lock.
func (c *client) GetLock(ctx context.Context, lockID string) (*device.Lock, error) {
	lock := &device.Lock{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/locks/%s", lockID), nil, lock); err != nil {
		return nil, err
	}

	return lock, nil
}

// GetLockOperation returns fresh snapshot of the operation.
func (c *client) GetLockOperation(ctx context.Context, lockID string,
	operationID string) (*device.LockOperation, error) {
	op := &device.LockOperation{}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/locks/%s/operations/%s", lockID, operationID), nil, op)
	if err != nil {
		return nil, err
	}

	if "" == op.LockID {
		op.LockID = lockID
	}

	return op, nil
}

// CreateLockOperation submits a new lock/unlock command.
func (c *client) CreateLockOperation(ctx context.Context, lockID string,
	opType enums.OperationType) (*device.LockOperation, error) {
	op := &device.LockOperation{}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/locks/%s/operations", lockID),
		&createLockOperation{Type: opType}, op)
	if err != nil {
		return nil, err
	}

	if "" == op.LockID {
		op.LockID = lockID
	}

	return op, nil
}

// Performs a single API call.
func (c *client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := newRequest(ctx, method, c.url+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Api-Key "+c.apiKey)

	requestID := uuid.New().String()
	req.Header.Set(headerRequestID, requestID)

	c.logger.Debug("Sending API request", common.LogSystemToken, logSystem,
		common.LogURLToken, path, common.LogRequestIDToken, requestID)

	return c.send(req, out)
}

// Sends request and decodes response.
//noinspection GoUnhandledErrorResult
func (c *client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ErrTransport{Cause: err}
	}
	defer resp.Body.Close() // nolint: errcheck

	if err := checkResponse(req, resp); err != nil {
		return err
	}

	if nil == out {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", req.URL.Path)
	}

	return nil
}

// Builds JSON request with common headers.
func newRequest(ctx context.Context, method string, url string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if nil != body {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request")
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent())
	return req, nil
}

// Maps non-2xx responses into typed errors.
func checkResponse(req *http.Request, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &ErrUnauthorized{}
	case http.StatusNotFound:
		return &ErrNotFound{Path: req.URL.Path}
	}

	srvErr := &ErrServer{Status: resp.StatusCode}
	data, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) // nolint: gosec
	if err := json.Unmarshal(data, srvErr); err != nil || "" == srvErr.Title {
		srvErr.Title = http.StatusText(resp.StatusCode)
	}

	if 0 == srvErr.Code {
		srvErr.Code = resp.StatusCode
	}

	return srvErr
}
