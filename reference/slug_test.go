package reference

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestSlug(t *testing.T) {

	endpoint := &Endpoint{
		Path:   "/v1/datasets/{datasetId}",
		Method: "GET",
		Tags:   []string{"Datasets"},
	}

	biff.AssertEqual(Slug(endpoint), "Datasets-get-v1-datasets-param")
}

func TestSlug_NoTags(t *testing.T) {

	endpoint := &Endpoint{Path: "/health", Method: "GET"}

	biff.AssertEqual(Slug(endpoint), "default-get-health")
}

func TestSlug_StripsInvalidCharacters(t *testing.T) {

	endpoint := &Endpoint{
		Path:   "/v1/data.sets/{id}/items:search",
		Method: "POST",
		Tags:   []string{"Datasets"},
	}

	biff.AssertEqual(Slug(endpoint), "Datasets-post-v1-datasets-param-itemssearch")
}

func TestSlug_Stable(t *testing.T) {

	endpoint := &Endpoint{
		Path:   "/v1/datasets/{datasetId}/versions/{versionId}",
		Method: "DELETE",
		Tags:   []string{"Datasets"},
	}

	first := Slug(endpoint)
	for i := 0; i < 100; i++ {
		biff.AssertEqual(Slug(endpoint), first)
	}
}
