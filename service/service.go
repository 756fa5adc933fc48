package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SierraSoftworks/connor"

	"github.com/xether-ai/apidocs/cache"
	"github.com/xether-ai/apidocs/client"
	"github.com/xether-ai/apidocs/reference"
)

// ReferenceRoute is the page route whose rendered data this service
// caches and the webhook invalidates.
const ReferenceRoute = "/docs/api-reference"

const pageTTL = 1 * time.Hour

// assembled is one cached page entry: the reference data plus the slug
// index derived from it.
type assembled struct {
	data  *reference.ReferenceData
	index *reference.SlugIndex
}

type Service struct {
	registry *client.Registry
	clients  map[string]*client.Client
	cache    cache.Cacher
}

func NewService(registry *client.Registry, cacher cache.Cacher, httpClient *http.Client) *Service {

	s := &Service{
		registry: registry,
		clients:  map[string]*client.Client{},
		cache:    cacher,
	}

	for _, backend := range registry.Backends() {
		s.clients[backend.Version] = client.New(backend, httpClient, cacher)
	}

	return s
}

func (s *Service) GetReferenceData(ctx context.Context, version string) (*reference.ReferenceData, error) {
	a, err := s.assemble(ctx, version)
	if err != nil {
		return nil, err
	}
	return a.data, nil
}

func (s *Service) GetChangelog(ctx context.Context, version string) ([]client.ChangelogEntry, error) {
	return s.clientFor(version).FetchChangelog(ctx)
}

func (s *Service) LookupEndpoint(ctx context.Context, version, slug string) (*reference.Endpoint, error) {

	a, err := s.assemble(ctx, version)
	if err != nil {
		return nil, err
	}

	endpoint, exist := a.index.Lookup(slug)
	if !exist {
		return nil, ErrEndpointNotFound
	}

	return endpoint, nil
}

func (s *Service) FindEndpoints(ctx context.Context, version string, query FindQuery) ([]*reference.Endpoint, error) {

	a, err := s.assemble(ctx, version)
	if err != nil {
		return nil, err
	}

	hasFilter := len(query.Filter) > 0

	skip := query.Skip
	limit := query.Limit
	if limit <= 0 {
		limit = -1
	}

	result := []*reference.Endpoint{}
	for _, endpoint := range a.data.Endpoints {

		if limit == 0 {
			break
		}

		if hasFilter {
			doc, err := endpointDocument(endpoint)
			if err != nil {
				return nil, err
			}
			match, err := connor.Match(query.Filter, doc)
			if err != nil {
				return nil, fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		result = append(result, endpoint)
	}

	return result, nil
}

// Invalidate drops the cached reference page for the general route and,
// when a version is given, for the versioned route, together with the
// backing spec cache entries so the next request refetches. It returns
// the invalidated route paths. Replays are harmless.
func (s *Service) Invalidate(version string) []string {

	ctx := context.Background()

	s.cache.Forget(ctx, s.pageKey(""))
	s.cache.Forget(ctx, s.clientFor("").SpecURL())
	paths := []string{ReferenceRoute}

	if version != "" {
		s.cache.Forget(ctx, s.pageKey(version))
		s.cache.Forget(ctx, s.clientFor(version).SpecURL())
		paths = append(paths, ReferenceRoute+"?version="+version)
	}

	return paths
}

// Refresh eagerly refetches the spec for a version. After Invalidate
// the cache entry is gone, so this hits the network.
func (s *Service) Refresh(ctx context.Context, version string) error {
	_, err := s.clientFor(version).FetchOpenAPISpec(ctx)
	return err
}

func (s *Service) assemble(ctx context.Context, version string) (*assembled, error) {

	key := s.pageKey(version)

	if v, err := s.cache.Get(ctx, key); err == nil {
		if a, ok := v.(*assembled); ok {
			return a, nil
		}
	}

	doc, err := s.clientFor(version).FetchOpenAPISpec(ctx)
	if err != nil {
		return nil, err
	}

	data, err := reference.Generate(doc)
	if err != nil {
		return nil, err
	}

	a := &assembled{
		data:  data,
		index: reference.NewSlugIndex(data.Endpoints),
	}

	s.cache.Remember(ctx, key, a, pageTTL)

	return a, nil
}

func (s *Service) clientFor(version string) *client.Client {
	backend := s.registry.Resolve(version)
	return s.clients[backend.Version]
}

// pageKey resolves the requested version before keying, so every alias
// of the same backend (unknown versions, the default version spelled
// out, the empty version) shares one cache entry and one invalidation
// covers them all.
func (s *Service) pageKey(version string) string {
	canonical := s.registry.Resolve(version).Version
	if canonical == s.registry.Default() {
		return ReferenceRoute
	}
	return ReferenceRoute + "?version=" + canonical
}

func endpointDocument(endpoint *reference.Endpoint) (map[string]any, error) {
	b, err := json.Marshal(endpoint)
	if err != nil {
		return nil, err
	}
	doc := map[string]any{}
	err = json.Unmarshal(b, &doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
