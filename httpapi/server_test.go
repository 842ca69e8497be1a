package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MatthiasKunnen/mimetype/mimetypes"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v5"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	table := mimetypes.NewTable()
	err := table.Load(strings.NewReader(`text/html html htm
image/png png
application/json json
`))
	if err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	NewServer(table).Register(e)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}

	return v
}

func TestExtension(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	rec := do(t, e, http.MethodGet, "/v1/extensions/html", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	want := ExtensionResponse{
		Extension:  "html",
		Type:       "text",
		SubType:    "html",
		Parameters: map[string]string{"charset": "utf-8"},
		MediaType:  "text/html; charset=utf-8",
	}
	if diff := cmp.Diff(want, decode[ExtensionResponse](t, rec)); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestExtensionNotFound(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	rec := do(t, e, http.MethodGet, "/v1/extensions/doesnotexist", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	got := decode[ErrorResponse](t, rec)
	if got.Error.Type != errTypeNotFound {
		t.Errorf("error type = %q, want %q", got.Error.Type, errTypeNotFound)
	}
}

func TestTypeExtensions(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	rec := do(t, e, http.MethodGet, "/v1/types/Text/HTML/extensions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	want := TypeExtensionsResponse{
		MediaType:  "text/html",
		Extensions: []string{"htm", "html"},
	}
	if diff := cmp.Diff(want, decode[TypeExtensionsResponse](t, rec)); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	rec := do(t, e, http.MethodPost, "/v1/parse", `{"value":"Multipart/Form-Data; boundary=\"a b\""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}

	want := ParseResponse{
		MediaType:  "multipart/form-data",
		Parameters: map[string]string{"boundary": "a b"},
	}
	if diff := cmp.Diff(want, decode[ParseResponse](t, rec)); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	tests := []struct {
		body     string
		wantType string
	}{
		{body: `{"value":"a/b; x=1; x=2"}`, wantType: errTypeDuplicate},
		{body: `{"value":"a/b; =1"}`, wantType: errTypeInvalid},
		{body: `{"value":"  "}`, wantType: errTypeInvalidRequest},
		{body: `not json`, wantType: errTypeInvalidRequest},
	}

	for _, tt := range tests {
		rec := do(t, e, http.MethodPost, "/v1/parse", tt.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status: got %d body=%s", tt.body, rec.Code, rec.Body.String())
			continue
		}

		got := decode[ErrorResponse](t, rec)
		if got.Error.Type != tt.wantType {
			t.Errorf("%s: error type = %q, want %q", tt.body, got.Error.Type, tt.wantType)
		}
	}
}
