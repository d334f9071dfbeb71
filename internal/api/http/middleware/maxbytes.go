package middleware

import (
	"mime"
	"net/http"
)

// MaxBytes caps request bodies read by the JSON endpoints. Multipart bodies
// are left to the handler that parses them, which applies the upload limit.
type MaxBytes struct {
	limit int64
}

// NewMaxBytes creates a new MaxBytes middleware.
func NewMaxBytes(limit int64) *MaxBytes {
	return &MaxBytes{limit: limit}
}

func (m *MaxBytes) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && !isMultipart(r) {
			r.Body = http.MaxBytesReader(w, r.Body, m.limit)
		}
		next.ServeHTTP(w, r)
	})
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
