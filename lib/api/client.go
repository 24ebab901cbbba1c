// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the typed HTTP client for the SeaShade backend. The
// client owns no state beyond the base URL and bearer token: every
// view in the tool is fetch, render, mutate, re-fetch through these
// methods, and the server remains the single source of truth.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the root of the SeaShade backend (e.g., "http://localhost:8080").
	BaseURL string
	// Token is the bearer token attached to every request. Empty for
	// the unauthenticated endpoints (login, register).
	Token string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to one SeaShade backend on behalf of one session.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the given backend.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}

	// Validate the URL structure. We store the string form (with the
	// trailing slash stripped) and build request URLs by direct
	// concatenation.
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("api: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the backend root this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// maxResponseBytes bounds how much of a response body is read. The
// largest legitimate responses (a season's ticket history) are far
// below this.
const maxResponseBytes = 16 << 20

// doRequest performs an HTTP request and returns the response body.
// On 2xx, returns the body. On 4xx/5xx, returns an *APIError carrying
// the server's message and status code. requestBody may be nil; query
// may be nil for endpoints without query parameters.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any, query url.Values) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	contentType := ""
	if requestBody != nil {
		contentType = "application/json"
	}
	return c.send(ctx, method, path, query, contentType, bodyReader)
}

// doMultipart performs a multipart/form-data request. The backend's
// product-creation endpoint takes a JSON part named "produto" plus an
// optional file part named "imagem".
func (c *Client) doMultipart(ctx context.Context, method, path string, jsonPartName string, jsonPart any, filePartName, filePath string) ([]byte, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	encoded, err := json.Marshal(jsonPart)
	if err != nil {
		return nil, fmt.Errorf("api: failed to encode %s part: %w", jsonPartName, err)
	}
	partHeader := make(map[string][]string)
	partHeader["Content-Disposition"] = []string{
		fmt.Sprintf(`form-data; name=%q`, jsonPartName),
	}
	partHeader["Content-Type"] = []string{"application/json"}
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create %s part: %w", jsonPartName, err)
	}
	if _, err := part.Write(encoded); err != nil {
		return nil, fmt.Errorf("api: failed to write %s part: %w", jsonPartName, err)
	}

	if filePath != "" {
		file, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("api: opening %s: %w", filePath, err)
		}
		defer file.Close()

		filePart, err := writer.CreateFormFile(filePartName, filepath.Base(filePath))
		if err != nil {
			return nil, fmt.Errorf("api: failed to create %s part: %w", filePartName, err)
		}
		if _, err := io.Copy(filePart, file); err != nil {
			return nil, fmt.Errorf("api: failed to write %s part: %w", filePartName, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("api: failed to finish multipart body: %w", err)
	}

	return c.send(ctx, method, path, nil, writer.FormDataContentType(), &buffer)
}

// send performs the request and maps non-2xx responses to *APIError.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}

	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("api: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	// All backend error responses use the same JSON shape.
	apiErr := &APIError{StatusCode: response.StatusCode}
	if jsonErr := json.Unmarshal(responseBody, apiErr); jsonErr != nil {
		// Non-JSON error body. Fail loud with what the server sent.
		c.logger.Debug("non-JSON error response",
			"method", method, "path", path,
			"status", response.StatusCode,
		)
		apiErr.Message = strings.TrimSpace(string(responseBody))
	}
	apiErr.StatusCode = response.StatusCode

	return nil, apiErr
}

// get performs a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: failed to parse response from %s: %w", path, err)
	}
	return nil
}
