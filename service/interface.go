package service

import (
	"context"
	"errors"

	"github.com/xether-ai/apidocs/client"
	"github.com/xether-ai/apidocs/reference"
)

var ErrEndpointNotFound = errors.New("endpoint not found")

// FindQuery selects endpoints with a connor filter over their document
// form. Limit <= 0 means no limit.
type FindQuery struct {
	Filter map[string]any `json:"filter"`
	Skip   int            `json:"skip"`
	Limit  int            `json:"limit"`
}

type Servicer interface {
	GetReferenceData(ctx context.Context, version string) (*reference.ReferenceData, error)
	GetChangelog(ctx context.Context, version string) ([]client.ChangelogEntry, error)
	LookupEndpoint(ctx context.Context, version, slug string) (*reference.Endpoint, error)
	FindEndpoints(ctx context.Context, version string, query FindQuery) ([]*reference.Endpoint, error)
	Invalidate(version string) []string
	Refresh(ctx context.Context, version string) error
}
