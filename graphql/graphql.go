package graphql

import (
	"context"
)

const (
	TypenameQuery = "{ __typename }"

	headerContentType = "Content-Type"
	headerRequestId   = "X-Request-Id"
	mimeJSON          = "application/json"
)

type Request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type Response struct {
	Data   map[string]interface{} `json:"data"`
	Errors []Error                `json:"errors,omitempty"`
}

type Error struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./graphql.go -destination=./test/mock_client.go -package test MockClient
type Client interface {
	// Ping returns nil only if the endpoint answered the typename probe with HTTP 200
	Ping(ctx context.Context) error
	// Do posts a single operation. A response carrying an error list is returned as a remote error.
	Do(ctx context.Context, request *Request) (*Response, error)
}
