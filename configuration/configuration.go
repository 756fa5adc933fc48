package configuration

type APIVersion struct {
	BaseUrl       string `usage:"backend base url"`
	OpenApiPath   string `usage:"path to the OpenAPI document"`
	ChangelogPath string `usage:"path to the changelog feed, empty disables the changelog"`
}

type Configuration struct {
	HttpAddr          string     `usage:"HTTP address"`
	Statics           string     `usage:"statics directory, empty serves the embedded site"`
	WebhookSecret     string     `usage:"shared secret to verify backend update webhooks"`
	DefaultVersion    string     `usage:"API version used when the request does not specify one"`
	V1                APIVersion `usage:"v1 backend"`
	V2                APIVersion `usage:"v2 backend"`
	EnableCompression bool       `usage:"gzip responses"`
	Version           bool       `usage:"show version and exit"`
	ShowBanner        bool       `usage:"show big banner"`
	ShowConfig        bool       `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:       ":8080",
		WebhookSecret:  "default-secret",
		DefaultVersion: "v1",
		V1: APIVersion{
			BaseUrl:       "https://api.xether.ai",
			OpenApiPath:   "/openapi.json",
			ChangelogPath: "/changelog",
		},
		V2: APIVersion{
			BaseUrl:       "https://api-v2.xether.ai",
			OpenApiPath:   "/openapi.json",
			ChangelogPath: "/changelog",
		},
		ShowBanner: true,
	}
}
