package api

import (
	"context"

	"github.com/xether-ai/apidocs/reference"
)

type tagGroupsResponse struct {
	Tags   []string                         `json:"tags"`
	Groups map[string][]*reference.Endpoint `json:"groups"`
}

// One tab per tag, tabs in first-occurrence order.
func getTagGroups(ctx context.Context) (*tagGroupsResponse, error) {

	s := GetServicer(ctx)

	data, err := s.GetReferenceData(ctx, requestedVersion(ctx))
	if err != nil {
		return nil, err
	}

	groups, order := reference.GroupByTag(data.Endpoints)

	return &tagGroupsResponse{
		Tags:   order,
		Groups: groups,
	}, nil
}
