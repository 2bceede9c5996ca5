package responses

import (
	"ehr-client/internal/pkg/constvars"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// BackendResponse is what the EHR backend answered, kept as raw bytes so it
// can be handed back to API callers unchanged.
type BackendResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsJSON reports whether the body parses as a JSON document. Bodies that do
// not are passed through as text.
func (r *BackendResponse) IsJSON() bool {
	return gjson.ValidBytes(r.Body)
}

func (r *BackendResponse) IsSuccess() bool {
	return r.StatusCode == constvars.StatusOK || r.StatusCode == constvars.StatusCreated
}

func (r *BackendResponse) Text() string {
	return strings.TrimSpace(string(r.Body))
}
