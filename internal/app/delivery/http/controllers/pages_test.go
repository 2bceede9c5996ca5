package controllers

import (
	"ehr-client/internal/pkg/constvars"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// brokenWriter accepts headers but fails every body write, as a client that
// hung up mid-response would.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestRenderPage(t *testing.T) {
	t.Run("Writes Page With Status", func(t *testing.T) {
		rr := httptest.NewRecorder()
		p := loginPage
		p.Error = "Invalid username or password"

		renderPage(zap.NewNop(), rr, http.StatusUnauthorized, p)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, constvars.MIMETextHTMLCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
		assert.Contains(t, rr.Body.String(), "Invalid username or password")
	})

	t.Run("Template Failure Is Logged", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		w := brokenWriter{httptest.NewRecorder()}

		renderPage(zap.New(core), w, http.StatusOK, loginPage)

		entries := logs.FilterMessage("renderPage failed to execute template").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "Login", entries[0].ContextMap()["page"])
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
