package api

import (
	"context"

	"github.com/xether-ai/apidocs/client"
)

func getChangelog(ctx context.Context) ([]client.ChangelogEntry, error) {

	s := GetServicer(ctx)

	return s.GetChangelog(ctx, requestedVersion(ctx))
}
