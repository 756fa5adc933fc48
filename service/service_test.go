package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/fulldump/biff"

	"github.com/xether-ai/apidocs/cache"
	"github.com/xether-ai/apidocs/client"
)

type upstream struct {
	mu   sync.Mutex
	spec string
	hits int
}

func (u *upstream) setSpec(spec string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.spec = spec
}

func (u *upstream) handler(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.hits++
	fmt.Fprint(w, u.spec)
}

const testSpec = `{
	"info": {"title": "Xether API", "version": "1.4.0"},
	"paths": {
		"/v1/datasets": {
			"get": {"summary": "List datasets", "tags": ["Datasets"]},
			"post": {"tags": ["Datasets"], "requestBody": {"required": true}}
		},
		"/v1/datasets/{datasetId}": {
			"get": {"tags": ["Datasets"]}
		},
		"/v1/health": {
			"get": {"summary": "Health"}
		}
	}
}`

func newTestService(t *testing.T) (*Service, *upstream) {
	t.Helper()

	u := &upstream{spec: testSpec}
	server := httptest.NewServer(http.HandlerFunc(u.handler))
	t.Cleanup(server.Close)

	registry := client.NewRegistry("v1",
		client.Backend{Version: "v1", BaseUrl: server.URL, OpenApiPath: "/openapi.json"},
		client.Backend{Version: "v2", BaseUrl: server.URL, OpenApiPath: "/openapi.json"},
	)

	return NewService(registry, cache.NewMemoryCacher(), nil), u
}

func TestService_GetReferenceData(t *testing.T) {

	s, u := newTestService(t)
	ctx := context.Background()

	data, err := s.GetReferenceData(ctx, "")
	biff.AssertNil(err)
	biff.AssertEqual(data.Title, "Xether API")
	biff.AssertEqual(len(data.Endpoints), 4)

	// served from the page cache afterwards
	_, err = s.GetReferenceData(ctx, "")
	biff.AssertNil(err)
	biff.AssertEqual(u.hits, 1)
}

func TestService_InvalidationIsObserved(t *testing.T) {

	s, u := newTestService(t)
	ctx := context.Background()

	data, err := s.GetReferenceData(ctx, "")
	biff.AssertNil(err)
	biff.AssertEqual(data.Title, "Xether API")

	u.setSpec(`{"info": {"title": "Xether API vNext"}, "paths": {}}`)

	// still cached
	data, err = s.GetReferenceData(ctx, "")
	biff.AssertNil(err)
	biff.AssertEqual(data.Title, "Xether API")

	paths := s.Invalidate("")
	biff.AssertEqual(paths, []string{ReferenceRoute})

	// a request after invalidation observes the new state
	data, err = s.GetReferenceData(ctx, "")
	biff.AssertNil(err)
	biff.AssertEqual(data.Title, "Xether API vNext")
}

func TestService_FallbackVersionObservesInvalidation(t *testing.T) {

	s, u := newTestService(t)
	ctx := context.Background()

	// an unknown version is a view of the default backend
	data, err := s.GetReferenceData(ctx, "bogus")
	biff.AssertNil(err)
	biff.AssertEqual(data.Title, "Xether API")

	// and shares the default's cache entry, whatever the spelling
	_, err = s.GetReferenceData(ctx, "")
	biff.AssertNil(err)
	_, err = s.GetReferenceData(ctx, "v1")
	biff.AssertNil(err)
	biff.AssertEqual(u.hits, 1)

	u.setSpec(`{"info": {"title": "Xether API vNext"}, "paths": {}}`)
	s.Invalidate("")

	data, err = s.GetReferenceData(ctx, "bogus")
	biff.AssertNil(err)
	biff.AssertEqual(data.Title, "Xether API vNext")
}

func TestService_InvalidateVersionedRoute(t *testing.T) {

	s, _ := newTestService(t)

	paths := s.Invalidate("v2")
	biff.AssertEqual(paths, []string{ReferenceRoute, ReferenceRoute + "?version=v2"})

	// replaying the same invalidation is harmless
	biff.AssertEqual(s.Invalidate("v2"), paths)
}

func TestService_LookupEndpoint(t *testing.T) {

	s, _ := newTestService(t)
	ctx := context.Background()

	endpoint, err := s.LookupEndpoint(ctx, "", "Datasets-get-v1-datasets")
	biff.AssertNil(err)
	biff.AssertEqual(endpoint.Summary, "List datasets")

	_, err = s.LookupEndpoint(ctx, "", "nope")
	biff.AssertEqual(err, ErrEndpointNotFound)
}

func TestService_FindEndpoints(t *testing.T) {

	s, _ := newTestService(t)
	ctx := context.Background()

	matches, err := s.FindEndpoints(ctx, "", FindQuery{
		Filter: map[string]any{"method": "GET"},
	})
	biff.AssertNil(err)
	biff.AssertEqual(len(matches), 3)

	matches, err = s.FindEndpoints(ctx, "", FindQuery{
		Filter: map[string]any{"method": "GET"},
		Skip:   1,
		Limit:  1,
	})
	biff.AssertNil(err)
	biff.AssertEqual(len(matches), 1)
	biff.AssertEqual(matches[0].Path, "/v1/datasets/{datasetId}")

	// no filter matches everything
	matches, err = s.FindEndpoints(ctx, "", FindQuery{})
	biff.AssertNil(err)
	biff.AssertEqual(len(matches), 4)
}

func TestService_RefreshAfterInvalidateHitsNetwork(t *testing.T) {

	s, u := newTestService(t)
	ctx := context.Background()

	_, err := s.GetReferenceData(ctx, "")
	biff.AssertNil(err)
	biff.AssertEqual(u.hits, 1)

	s.Invalidate("")
	err = s.Refresh(ctx, "")
	biff.AssertNil(err)
	biff.AssertEqual(u.hits, 2)
}
