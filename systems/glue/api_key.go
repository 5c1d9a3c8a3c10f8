package glue

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Scopes requested for a newly issued API key.
var apiKeyScopes = []string{"locks.write", "locks.read", "events.read"}

// API key issuance request.
type apiKeyRequest struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
}

// API key issuance response.
type apiKeyResponse struct {
	APIKey string `json:"apiKey"`
}

// IssueAPIKey exchanges account credentials for a new API key.
func IssueAPIKey(ctx context.Context, url string, timeout time.Duration, username string,
	password string) (string, error) {
	url = strings.TrimRight(url, "/")
	if "" == url {
		url = DefaultURL
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := newRequest(ctx, http.MethodPost, url+"/v1/api-keys", &apiKeyRequest{
		Name:   "go-home",
		Scopes: apiKeyScopes,
	})
	if err != nil {
		return "", err
	}

	req.SetBasicAuth(username, password)

	c := &client{httpClient: &http.Client{Timeout: timeout}}
	resp := &apiKeyResponse{}
	if err := c.send(req, resp); err != nil {
		return "", err
	}

	if "" == resp.APIKey {
		return "", errors.New("service returned empty API key")
	}

	return resp.APIKey, nil
}
