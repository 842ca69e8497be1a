// Package httpapi serves extension and media type lookups from a [mimetypes.Table] over HTTP.
package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MatthiasKunnen/mimetype/mediatype"
	"github.com/MatthiasKunnen/mimetype/mimetypes"
	"github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
)

const (
	errTypeInvalidRequest = "invalid_request_error"
	errTypeNotFound       = "not_found_error"
	errTypeInvalid        = "invalid"
	errTypeDuplicate      = "duplicate"
)

type Server struct {
	table *mimetypes.Table
}

func NewServer(table *mimetypes.Table) *Server {
	return &Server{table: table}
}

// Register adds the routes of the server to e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/extensions/:ext", s.handleExtension)
	e.GET("/v1/types/:type/:subtype/extensions", s.handleTypeExtensions)
	e.POST("/v1/parse", s.handleParse)
}

func (s *Server) handleExtension(c *echo.Context) error {
	ext := c.Param("ext")
	m, ok := s.table.ByExtension(ext)
	if !ok {
		return writeError(c, http.StatusNotFound, errTypeNotFound, "unknown extension: "+ext)
	}

	return c.JSON(http.StatusOK, ExtensionResponse{
		Extension:  ext,
		Type:       m.Type,
		SubType:    m.SubType,
		Parameters: m.Parameters,
		MediaType:  m.Serialize(),
	})
}

func (s *Server) handleTypeExtensions(c *echo.Context) error {
	essence := strings.ToLower(c.Param("type") + "/" + c.Param("subtype"))

	return c.JSON(http.StatusOK, TypeExtensionsResponse{
		MediaType:  essence,
		Extensions: s.table.ExtensionsByType(essence),
	})
}

func (s *Server) handleParse(c *echo.Context) error {
	var req ParseRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return writeError(c, http.StatusBadRequest, errTypeInvalidRequest, "invalid JSON body: "+err.Error())
	}

	if strings.TrimSpace(req.Value) == "" {
		return writeError(c, http.StatusBadRequest, errTypeInvalidRequest, "value is required")
	}

	essence, params, err := mediatype.Parse(req.Value)
	switch {
	case errors.Is(err, mediatype.ErrDuplicate):
		return writeError(c, http.StatusBadRequest, errTypeDuplicate, err.Error())
	case err != nil:
		return writeError(c, http.StatusBadRequest, errTypeInvalid, err.Error())
	}

	return c.JSON(http.StatusOK, ParseResponse{
		MediaType:  essence,
		Parameters: params,
	})
}

func writeError(c *echo.Context, status int, errType string, msg string) error {
	return c.JSON(status, ErrorResponse{
		Error: ResponseError{
			Message: msg,
			Type:    errType,
		},
	})
}
