package ehr

import (
	"bytes"
	"context"
	"ehr-client/internal/app/contracts"
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/dto/responses"
	"ehr-client/internal/pkg/exceptions"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ehrBackendClient struct {
	BaseUrl    string
	Log        *zap.Logger
	HTTPClient *http.Client
}

// NewEHRBackendClient builds the single outbound path to the EHR backend.
// Every call is bounded by timeout, whatever happens to the inbound request.
func NewEHRBackendClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.EHRBackendClient {
	return &ehrBackendClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		Log:        logger,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Forward sends one request to {BaseUrl}{path}. Any HTTP status the backend
// answers with is returned as a response. Failing to reach the backend or to
// read its reply is reported as ErrBackendUnreachable.
func (c *ehrBackendClient) Forward(ctx context.Context, method, path string, body interface{}, header http.Header) (*responses.BackendResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := c.BaseUrl + path
	c.Log.Info("ehrBackendClient.Forward called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingURLKey, url),
	)

	var payload io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("ehrBackendClient.Forward error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		payload = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), method, url, payload)
	if err != nil {
		c.Log.Error("ehrBackendClient.Forward error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	startTime := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("ehrBackendClient.Forward error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendUnreachable(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("ehrBackendClient.Forward error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendUnreachable(err)
	}

	c.Log.Info("ehrBackendClient.Forward succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(startTime)),
		zap.Int(constvars.LoggingResponseLengthKey, len(bodyBytes)),
	)
	return &responses.BackendResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       bodyBytes,
	}, nil
}
