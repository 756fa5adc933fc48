package api

type versionResponse struct {
	Version string `json:"version"`
}

func getVersion(version string) interface{} {
	return func() *versionResponse {
		return &versionResponse{
			Version: version,
		}
	}
}
