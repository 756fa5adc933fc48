package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/xether-ai/apidocs/reference"
)

func getEndpoint(ctx context.Context) (*reference.Endpoint, error) {

	s := GetServicer(ctx)

	slug := box.GetUrlParameter(ctx, "endpointSlug")

	return s.LookupEndpoint(ctx, requestedVersion(ctx), slug)
}
