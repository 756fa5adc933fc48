package api

import (
	"context"

	"github.com/xether-ai/apidocs/reference"
)

func getApiReference(ctx context.Context) (*reference.ReferenceData, error) {

	s := GetServicer(ctx)

	return s.GetReferenceData(ctx, requestedVersion(ctx))
}
