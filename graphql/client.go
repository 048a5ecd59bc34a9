package graphql

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/historias-clinicas/seed/config"
	errs "github.com/historias-clinicas/seed/errors"
)

type client struct {
	url    string
	probe  *http.Client
	http   *http.Client
	logger *zap.SugaredLogger
}

func NewClient(cfg *config.Config, logger *zap.SugaredLogger) Client {
	return &client{
		url:   cfg.GraphQLURL,
		probe: &http.Client{Timeout: cfg.ProbeTimeout},
		// Submissions have no timeout and block until the server answers
		http:   &http.Client{},
		logger: logger,
	}
}

func (c *client) Ping(ctx context.Context) error {
	resp, err := c.post(ctx, c.probe, &Request{Query: TypenameQuery})
	if err != nil {
		return errs.NewUnreachableError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return errs.NewUnreachableError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return nil
}

func (c *client) Do(ctx context.Context, request *Request) (*Response, error) {
	resp, err := c.post(ctx, c.http, request)
	if err != nil {
		return nil, errs.NewTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errs.NewTransportError(fmt.Errorf("%d %s for url: %s", resp.StatusCode, http.StatusText(resp.StatusCode), c.url))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewTransportError(err)
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errs.NewTransportError(fmt.Errorf("unable to decode response: %w", err))
	}

	if len(response.Errors) > 0 {
		c.logger.Debugw("graphql response contains errors", "count", len(response.Errors), "errors", response.Errors)
		return &response, errs.NewRemoteError(response.Errors[0].Message)
	}

	return &response, nil
}

func (c *client) post(ctx context.Context, httpClient *http.Client, request *Request) (*http.Response, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	requestId := uuid.NewString()
	req.Header.Set(headerContentType, mimeJSON)
	req.Header.Set(headerRequestId, requestId)

	c.logger.Debugw("sending graphql request", "url", c.url, "requestId", requestId)
	resp, err := httpClient.Do(req)
	if err != nil {
		c.logger.Debugw("graphql request failed", "url", c.url, "requestId", requestId, "error", err)
		return nil, err
	}

	c.logger.Debugw("received graphql response", "url", c.url, "requestId", requestId, "status", resp.StatusCode)
	return resp, nil
}
