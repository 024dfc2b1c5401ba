package middleware

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/coursesvc/internal/pkg/apperrors"
	"github.com/yigit/coursesvc/internal/pkg/validation"
)

// DefaultBodyLimit caps JSON request bodies at 100kb
const DefaultBodyLimit int64 = 100 << 10

const documentKey = "requestDocument"

// ParseJSONBody reads the request body into a validation.Document before the handler runs.
// Only application/json bodies are parsed; any other content type leaves the document empty.
// Malformed JSON is rejected with 400, oversized bodies with 413.
func ParseJSONBody(limit int64) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	return func(c *gin.Context) {
		if !strings.EqualFold(c.ContentType(), binding.MIMEJSON) {
			c.Next()
			return
		}

		if c.Request.Body == nil {
			c.Request.Body = http.NoBody
		}

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				HandleAPIError(c, apperrors.ErrPayloadTooLarge)
			} else {
				HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
			}
			c.Abort()
			return
		}

		doc, err := validation.ParseDocument(body)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(documentKey, doc)
		c.Next()
	}
}

// GetDocument returns the body parsed by ParseJSONBody. Without the middleware it yields an
// empty object.
func GetDocument(c *gin.Context) validation.Document {
	if value, ok := c.Get(documentKey); ok {
		if doc, ok := value.(validation.Document); ok {
			return doc
		}
	}
	doc, _ := validation.ParseDocument(nil)
	return doc
}
