package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const tanVerifyPath = "/version/v1/tan/verify"

// HTTPVerifier asks the verification service whether a TAN is valid.
type HTTPVerifier struct {
	client   *http.Client
	endpoint string
}

func NewHTTPVerifier(baseURL string, timeout time.Duration) (*HTTPVerifier, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("parse verification url: %w", err)
	}
	return &HTTPVerifier{
		client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(baseURL, "/") + tanVerifyPath,
	}, nil
}

// Verify reports true on 200 and false on 404; other statuses are errors.
func (v *HTTPVerifier) Verify(ctx context.Context, tan string) (bool, error) {
	body, err := json.Marshal(struct {
		TAN string `json:"tan"`
	}{TAN: tan})
	if err != nil {
		return false, fmt.Errorf("encode tan: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("verify tan: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("verify tan: unexpected status %d", resp.StatusCode)
	}
}
