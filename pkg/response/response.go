package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"PontoWeb/pkg/errors"
)

// ErrorResponse é o formato único de erro devolvido ao front.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Details map[string]interface{} `json:"details,omitempty"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
}

// SuccessResponse é o formato único de sucesso.
type SuccessResponse struct {
	Data interface{}            `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

func errorToHTTPStatus(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	switch def.Code {
	case "AUTH_RATE_LIMITED":
		return http.StatusTooManyRequests // 429
	case "INVALID_CREDENTIALS", "UNAUTHORIZED", "SESSION_EXPIRED", "ADMIN_PASSWORD_INVALID":
		return http.StatusUnauthorized // 401
	case "INVALID_REQUEST", "INVALID_EMAIL", "INVALID_PASSWORD", "INVALID_NAME",
		"INVALID_USER_ID", "RECOVERY_CODE_INVALID",
		"PUNCH_DAY_COMPLETE", "AJUSTE_NO_RECORDS", "PUNCH_OUTSIDE_GEOFENCE", "BACKEND_REJECTED":
		return http.StatusBadRequest // 400
	case "USER_NOT_FOUND", "CARGO_NOT_FOUND":
		return http.StatusNotFound // 404
	case "BACKEND_UNAVAILABLE":
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}

// Error devolve a resposta de erro no envelope padrão.
func Error(ctx context.Context, c *app.RequestContext, err error) {
	statusCode := errorToHTTPStatus(err)

	var code, message string
	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details map[string]interface{}) {
	statusCode := errorToHTTPStatus(err)

	var code, message string
	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = def.Message
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

func SuccessWithMeta(ctx context.Context, c *app.RequestContext, data interface{}, meta map[string]interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// NoContent responde 204 (operações de remoção).
func NoContent(ctx context.Context, c *app.RequestContext) {
	c.Status(http.StatusNoContent)
}
