package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/xether-ai/apidocs/service"
)

const ContextServicerKey = "6f1c2a52-8f0a-4f6e-9c1d-3db9f2a6c7e1"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}

func requestedVersion(ctx context.Context) string {
	return box.GetRequest(ctx).URL.Query().Get("version")
}
