package main

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/diillson/aws-reservation-summary/internal/adapter/driving/httpapi"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/diillson/aws-reservation-summary/pkg/version"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const requestTimeout = 25 * time.Second

// handler serves the Function URL routes with the same semantics as the HTTP API.
type handler struct {
	generator httpapi.SummaryGenerator
	defaults  *types.Config
	logger    *zap.Logger
}

func newHandler(generator httpapi.SummaryGenerator, defaults *types.Config, logger *zap.Logger) *handler {
	return &handler{generator: generator, defaults: defaults, logger: logger}
}

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
	"Content-Type":                 "application/json",
}

// Handle processes Lambda Function URL requests
func (h *handler) Handle(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	path := request.RawPath
	method := request.RequestContext.HTTP.Method

	h.logger.Info("request", zap.String("method", method), zap.String("path", path))

	switch {
	case method == http.MethodOptions:
		return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: corsHeaders}, nil
	case path == "/api/health" && method == http.MethodGet:
		return jsonResponse(http.StatusOK, map[string]string{"status": "ok", "version": version.FormatVersion()})
	case path == "/api/summary" && method == http.MethodPost:
		return h.handleSummary(ctx, request)
	default:
		return jsonResponse(http.StatusNotFound, httpapi.ErrorResponse{Error: "Not found"})
	}
}

func (h *handler) handleSummary(ctx context.Context, request events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	raw := []byte(request.Body)
	if request.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(request.Body)
		if err != nil {
			return jsonResponse(http.StatusBadRequest, httpapi.ErrorResponse{Error: "invalid base64 body"})
		}
		raw = decoded
	}
	if len(raw) == 0 {
		return jsonResponse(http.StatusBadRequest, httpapi.ErrorResponse{Error: "empty request body"})
	}

	req, err := httpapi.RequestOptions(func(name string) string {
		return request.QueryStringParameters[name]
	}, h.defaults)
	if err != nil {
		return jsonResponse(httpapi.StatusForError(err), httpapi.ErrorResponse{Error: err.Error()})
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	report, err := h.generator.GenerateSummary(ctx, raw, req)
	if err != nil {
		status := httpapi.StatusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("summary failed", zap.Error(err))
		}
		return jsonResponse(status, httpapi.ErrorResponse{Error: err.Error()})
	}

	return jsonResponse(http.StatusOK, report)
}

func jsonResponse(status int, body interface{}) (events.LambdaFunctionURLResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return events.LambdaFunctionURLResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders,
			Body:       `{"error": "failed to encode response"}`,
		}, nil
	}
	return events.LambdaFunctionURLResponse{
		StatusCode: status,
		Headers:    corsHeaders,
		Body:       string(data),
	}, nil
}
