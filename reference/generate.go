package reference

import (
	"errors"
	"sort"
	"strings"
)

var ErrInvalidDocument = errors.New("invalid spec document: missing paths")

var httpMethods = []string{"get", "post", "put", "delete", "patch", "head", "options", "trace"}

// Generate normalizes a raw OpenAPI document. Optional fields of the
// wrong type are treated as absent, never as an error; only a document
// without a paths object is rejected. Output is deterministic: paths
// are visited in lexical order, methods in canonical order.
func Generate(doc map[string]any) (*ReferenceData, error) {

	paths, isObject := doc["paths"].(map[string]any)
	if !isObject {
		return nil, ErrInvalidDocument
	}

	endpoints := []*Endpoint{}

	pathKeys := make([]string, 0, len(paths))
	for path := range paths {
		pathKeys = append(pathKeys, path)
	}
	sort.Strings(pathKeys)

	for _, path := range pathKeys {
		pathItem, isObject := paths[path].(map[string]any)
		if !isObject {
			continue
		}
		for _, method := range httpMethods {
			operation, isObject := pathItem[method].(map[string]any)
			if !isObject {
				continue
			}
			endpoints = append(endpoints, newEndpoint(path, method, operation))
		}
	}

	info := asObject(doc["info"])
	components := asObject(doc["components"])

	return &ReferenceData{
		Title:       asString(info["title"]),
		Version:     asString(info["version"]),
		Description: asString(info["description"]),
		Servers:     extractServers(doc["servers"]),
		Endpoints:   endpoints,
		Schemas:     asObject(components["schemas"]),
	}, nil
}

func newEndpoint(path, method string, operation map[string]any) *Endpoint {
	return &Endpoint{
		Path:        path,
		Method:      strings.ToUpper(method),
		OperationId: asString(operation["operationId"]),
		Summary:     asString(operation["summary"]),
		Description: asString(operation["description"]),
		Parameters:  extractParameters(operation["parameters"]),
		RequestBody: extractRequestBody(operation["requestBody"]),
		Responses:   extractResponses(operation["responses"]),
		Tags:        asStrings(operation["tags"]),
	}
}

func extractParameters(v any) []Parameter {
	entries, isArray := v.([]any)
	if !isArray {
		return nil
	}

	result := []Parameter{}
	for _, entry := range entries {
		p, isObject := entry.(map[string]any)
		if !isObject {
			// malformed entry, drop it instead of aborting the endpoint
			continue
		}
		result = append(result, Parameter{
			Name:        asString(p["name"]),
			In:          asString(p["in"]),
			Description: asString(p["description"]),
			Required:    asBool(p["required"]),
			Type:        asString(asObject(p["schema"])["type"]),
			Schema:      p["schema"],
		})
	}
	return result
}

func extractRequestBody(v any) *RequestBody {
	rb, isObject := v.(map[string]any)
	if !isObject {
		return nil
	}
	return &RequestBody{
		Description: asString(rb["description"]),
		Required:    asBool(rb["required"]),
		Content:     asObject(rb["content"]),
	}
}

func extractResponses(v any) map[string]Response {
	responses, isObject := v.(map[string]any)
	if !isObject {
		return nil
	}

	result := map[string]Response{}
	for statusCode, rv := range responses {
		r, isObject := rv.(map[string]any)
		if !isObject {
			continue
		}
		result[statusCode] = Response{
			Description: asString(r["description"]),
			Content:     asObject(r["content"]),
		}
	}
	return result
}

func extractServers(v any) []Server {
	entries, isArray := v.([]any)
	if !isArray {
		return nil
	}

	result := []Server{}
	for _, entry := range entries {
		s, isObject := entry.(map[string]any)
		if !isObject {
			continue
		}
		result = append(result, Server{
			Url:         asString(s["url"]),
			Description: asString(s["description"]),
		})
	}
	return result
}

func asObject(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asStrings(v any) []string {
	entries, isArray := v.([]any)
	if !isArray {
		return nil
	}
	result := []string{}
	for _, entry := range entries {
		if s, isString := entry.(string); isString {
			result = append(result, s)
		}
	}
	return result
}
