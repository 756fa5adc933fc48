package reference

// Endpoint is one (path, method) operation, normalized for rendering.
type Endpoint struct {
	Path        string              `json:"path"`
	Method      string              `json:"method"`
	OperationId string              `json:"operationId,omitempty"`
	Summary     string              `json:"summary,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
}

type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Type        string `json:"type,omitempty"`
	Schema      any    `json:"schema,omitempty"`
}

type RequestBody struct {
	Description string         `json:"description,omitempty"`
	Required    bool           `json:"required"`
	Content     map[string]any `json:"content,omitempty"`
}

// Response description defaults to "" when absent, unlike parameters
// and request bodies where an absent description stays unset.
type Response struct {
	Description string         `json:"description"`
	Content     map[string]any `json:"content,omitempty"`
}

type Server struct {
	Url         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// ReferenceData is the render-ready aggregate for one backend.
type ReferenceData struct {
	Title       string         `json:"title"`
	Version     string         `json:"version"`
	Description string         `json:"description,omitempty"`
	Servers     []Server       `json:"servers,omitempty"`
	Endpoints   []*Endpoint    `json:"endpoints"`
	Schemas     map[string]any `json:"schemas,omitempty"`
}
