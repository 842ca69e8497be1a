package httpapi

type ExtensionResponse struct {
	Extension  string            `json:"extension"`
	Type       string            `json:"type"`
	SubType    string            `json:"subType"`
	Parameters map[string]string `json:"parameters"`

	// MediaType is the serialized form, e.g. text/html; charset=utf-8.
	MediaType string `json:"mediaType"`
}

type TypeExtensionsResponse struct {
	MediaType  string   `json:"mediaType"`
	Extensions []string `json:"extensions"`
}

type ParseRequest struct {
	Value string `json:"value"`
}

type ParseResponse struct {
	MediaType  string            `json:"mediaType"`
	Parameters map[string]string `json:"parameters"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}

type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
