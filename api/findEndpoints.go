package api

import (
	"context"

	"github.com/xether-ai/apidocs/reference"
	"github.com/xether-ai/apidocs/service"
)

type findEndpointsRequest struct {
	Version string         `json:"version"`
	Filter  map[string]any `json:"filter"`
	Skip    int            `json:"skip"`
	Limit   int            `json:"limit"`
}

func findEndpoints(ctx context.Context, input *findEndpointsRequest) ([]*reference.Endpoint, error) {

	s := GetServicer(ctx)

	return s.FindEndpoints(ctx, input.Version, service.FindQuery{
		Filter: input.Filter,
		Skip:   input.Skip,
		Limit:  input.Limit,
	})
}
