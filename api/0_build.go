package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/xether-ai/apidocs/service"
	"github.com/xether-ai/apidocs/statics"
)

func Build(s service.Servicer, webhookSecret, staticsDir, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		injectServicer(s),
	)

	v1.Resource("/api-reference").
		WithActions(
			box.Get(getApiReference),
			box.ActionPost(findEndpoints),
		)

	v1.Resource("/api-reference/tags").
		WithActions(
			box.Get(getTagGroups),
		)

	v1.Resource("/api-reference/endpoints/{endpointSlug}").
		WithActions(
			box.Get(getEndpoint),
		)

	v1.Resource("/changelog").
		WithActions(
			box.Get(getChangelog),
		)

	v1.Resource("/version").
		WithActions(
			box.Get(getVersion(version)),
		)

	v1.Resource("/webhooks/backend-update").
		WithActions(
			box.Get(webhookInfo),
			box.Post(webhookBackendUpdate(webhookSecret)),
		)

	// Mount statics
	b.Resource("/*").
		WithActions(
			box.Get(statics.ServeStatics(staticsDir)).WithName("serveStatics"),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(SetServicer(ctx, s))
		}
	}
}
