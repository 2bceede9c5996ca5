package utils

import (
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/dto/responses"
	"ehr-client/internal/pkg/exceptions"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildTextResponse(w http.ResponseWriter, code int, text string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(code)
	w.Write([]byte(text))
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		fields := []zap.Field{zap.Int(constvars.LoggingStatusCodeKey, code)}
		if customErr.Location != nil {
			fields = append(fields, zap.Any("location", customErr.Location))
		}
		log.Error(customErr.DevMessage, fields...)
	} else {
		log.Error(err.Error())
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	if customErr != nil {
		response.Details = customErr.Details
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
		response.Location = customErr.Location
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildBackendResponse hands the backend reply to an API caller. The status
// code is kept, a JSON body is written verbatim and anything else is sent
// as plain text.
func BuildBackendResponse(w http.ResponseWriter, resp *responses.BackendResponse) {
	switch {
	case len(resp.Body) == 0:
		w.WriteHeader(resp.StatusCode)
	case resp.IsJSON():
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(resp.StatusCode)
		w.Write(resp.Body)
	default:
		w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
		w.WriteHeader(resp.StatusCode)
		w.Write(resp.Body)
	}
}

// BuildBackendRedirect sends a UI caller back to page with a success flash
// when the backend accepted the request, and an error flash carrying the
// backend status and text otherwise.
func BuildBackendRedirect(w http.ResponseWriter, r *http.Request, page, successMessage string, resp *responses.BackendResponse) {
	if resp.IsSuccess() {
		BuildRedirectWithFlash(w, r, page, constvars.URLQueryParamSuccess, successMessage)
		return
	}
	message := fmt.Sprintf(constvars.ErrClientBackendRejected, resp.StatusCode, resp.Text())
	BuildRedirectWithFlash(w, r, page, constvars.URLQueryParamError, message)
}

// BuildErrorRedirect is the UI counterpart of BuildErrorResponse.
func BuildErrorRedirect(log *zap.Logger, w http.ResponseWriter, r *http.Request, page string, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		log.Error(err.Error())
		BuildRedirectWithFlash(w, r, page, constvars.URLQueryParamError, constvars.ErrClientSomethingWrongWithApplication)
		return
	}

	log.Error(customErr.DevMessage, zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode))
	message := customErr.ClientMessage
	if exceptions.IsBackendUnreachable(customErr) {
		message = fmt.Sprintf("%s: %s", constvars.ErrClientUIBackendNotReachable, customErr.Details)
	}
	BuildRedirectWithFlash(w, r, page, constvars.URLQueryParamError, message)
}

func BuildRedirectWithFlash(w http.ResponseWriter, r *http.Request, page, key, message string) {
	query := url.Values{}
	query.Set(key, message)
	http.Redirect(w, r, page+"?"+query.Encode(), constvars.StatusSeeOther)
}
