package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/mrled/suns/pwcheck/internal/logger"
	"github.com/mrled/suns/pwcheck/internal/prompt"
	"github.com/mrled/suns/pwcheck/internal/validation"
)

// Handler holds the dependencies for the httpapi Lambda handler
type Handler struct {
	log *slog.Logger
}

// CheckRequest represents the expected JSON payload for a password check
type CheckRequest struct {
	Password *string `json:"password"`
}

// CheckResponse represents the JSON response for a password check
type CheckResponse struct {
	IsValid  bool     `json:"isValid"`
	Message  string   `json:"message"`
	Failures []string `json:"failures"`
}

// RuleResponse describes one rule in the rules listing
type RuleResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewHandler creates a new httpapi handler
func NewHandler() (*Handler, error) {
	// Initialize logger with executable name for filtering
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "httpapi")
	logger.SetDefault(log)

	return NewHandlerWithLogger(log), nil
}

// NewHandlerWithLogger creates a handler that logs to the given logger
func NewHandlerWithLogger(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// Handle processes API Gateway HTTP requests
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	requestLogger := logger.WithLambda(h.log,
		os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		request.RequestContext.RequestID)

	// The body is deliberately not logged, it holds the password
	requestLogger.Info("Incoming request",
		slog.String("method", request.RequestContext.HTTP.Method),
		slog.String("path", request.RequestContext.HTTP.Path),
		slog.String("raw_path", request.RawPath))

	// For API Gateway v2, the path is in RequestContext.HTTP.Path
	path := request.RequestContext.HTTP.Path
	if path == "" {
		path = request.RawPath
	}
	path = strings.TrimPrefix(path, "/api")

	switch path {
	case "/v1/check":
		return h.handleCheck(ctx, requestLogger, request)
	case "/v1/rules":
		return h.handleRules(ctx, requestLogger, request)
	default:
		requestLogger.Warn("Path not matched", slog.String("path", path))
		return errorResponseV2(404, fmt.Sprintf("Unknown endpoint: %s", path))
	}
}

func (h *Handler) handleCheck(ctx context.Context, log *slog.Logger, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	httpMethod := request.RequestContext.HTTP.Method
	if httpMethod != "POST" {
		log.Warn("Method validation failed", slog.String("received_method", httpMethod))
		return errorResponseV2(405, fmt.Sprintf("Method not allowed. Only POST is supported for this endpoint (received: %s)", httpMethod))
	}

	var checkReq CheckRequest
	if err := json.Unmarshal([]byte(request.Body), &checkReq); err != nil {
		return errorResponseV2(400, fmt.Sprintf("Invalid request body: %v", err))
	}
	if checkReq.Password == nil {
		return errorResponseV2(400, "password field is required")
	}

	result := validation.Check(*checkReq.Password)
	log.Info("Checked password",
		slog.Bool("valid", result.Valid),
		slog.Int("length", result.Counts.Length),
		slog.Any("failures", result.FailureNames()))

	return jsonResponseV2(log, CheckResponse{
		IsValid:  result.Valid,
		Message:  prompt.Message(result.Valid),
		Failures: result.FailureNames(),
	})
}

func (h *Handler) handleRules(ctx context.Context, log *slog.Logger, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	httpMethod := request.RequestContext.HTTP.Method
	if httpMethod != "GET" {
		log.Warn("Method validation failed", slog.String("received_method", httpMethod))
		return errorResponseV2(405, fmt.Sprintf("Method not allowed. Only GET is supported for this endpoint (received: %s)", httpMethod))
	}

	rules := validation.Rules()
	response := make([]RuleResponse, 0, len(rules))
	for _, rule := range rules {
		response = append(response, RuleResponse{Name: rule.Name, Description: rule.Description})
	}

	return jsonResponseV2(log, response)
}

func jsonResponseV2(log *slog.Logger, v any) (events.APIGatewayV2HTTPResponse, error) {
	responseBody, err := json.Marshal(v)
	if err != nil {
		log.Error("Failed to marshal response", slog.String("error", err.Error()))
		return errorResponseV2(500, "failed to generate response")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: 200,
		Body:       string(responseBody),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

// errorResponseV2 creates a standardized error response for API Gateway v2
func errorResponseV2(statusCode int, message string) (events.APIGatewayV2HTTPResponse, error) {
	errorBody := map[string]string{
		"error": message,
	}
	body, _ := json.Marshal(errorBody)

	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}
