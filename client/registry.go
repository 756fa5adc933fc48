package client

import "sort"

// Backend identifies one documented API deployment.
type Backend struct {
	Version       string `json:"version"`
	BaseUrl       string `json:"baseUrl"`
	OpenApiPath   string `json:"openApiPath"`
	ChangelogPath string `json:"changelogPath,omitempty"`
}

// Registry maps version tags to backends. Resolving never fails: an
// unknown or empty tag falls back to the default version.
type Registry struct {
	backends       map[string]Backend
	defaultVersion string
}

func NewRegistry(defaultVersion string, backends ...Backend) *Registry {
	r := &Registry{
		backends:       map[string]Backend{},
		defaultVersion: defaultVersion,
	}
	for _, b := range backends {
		r.backends[b.Version] = b
	}
	return r
}

func (r *Registry) Resolve(version string) Backend {
	if b, exist := r.backends[version]; exist {
		return b
	}
	return r.backends[r.defaultVersion]
}

func (r *Registry) Default() string {
	return r.defaultVersion
}

func (r *Registry) Backends() []Backend {
	result := []Backend{}
	for _, b := range r.backends {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})
	return result
}
