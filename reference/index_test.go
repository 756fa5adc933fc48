package reference

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestSlugIndex(t *testing.T) {

	endpoints := []*Endpoint{
		{Path: "/v1/datasets", Method: "GET", Tags: []string{"Datasets"}},
		{Path: "/v1/datasets", Method: "POST", Tags: []string{"Datasets"}},
		{Path: "/health", Method: "GET"},
	}

	index := NewSlugIndex(endpoints)

	biff.AssertEqual(index.Len(), 3)

	endpoint, exist := index.Lookup("Datasets-post-v1-datasets")
	biff.AssertTrue(exist)
	biff.AssertEqual(endpoint.Method, "POST")

	_, exist = index.Lookup("nope")
	biff.AssertFalse(exist)
}

func TestSlugIndex_AscendsInOrder(t *testing.T) {

	endpoints := []*Endpoint{
		{Path: "/b", Method: "GET", Tags: []string{"z"}},
		{Path: "/a", Method: "GET", Tags: []string{"a"}},
	}

	index := NewSlugIndex(endpoints)

	slugs := []string{}
	index.Ascend(func(slug string, endpoint *Endpoint) bool {
		slugs = append(slugs, slug)
		return true
	})

	biff.AssertEqual(slugs, []string{"a-get-a", "z-get-b"})
}
