package middleware

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"go.uber.org/zap"

	"PontoWeb/config"
	pkgerrors "PontoWeb/pkg/errors"
	"PontoWeb/pkg/logger"
	"PontoWeb/pkg/response"
)

// RecoverConfig configura o middleware de recover.
type RecoverConfig struct {
	// habilita captura de stack trace
	EnableStackTrace bool
	// nível do stack trace (full, simple, none)
	StackTraceLevel string
	// expor detalhes do erro em produção
	ExposeDetailsInProduction bool
	// registrar detalhes da requisição no log
	LogRequestDetails bool
	// ambiente de produção
	IsProduction bool
}

func NewRecoverConfig() RecoverConfig {
	return RecoverConfig{
		EnableStackTrace:          true,
		StackTraceLevel:           "simple",
		ExposeDetailsInProduction: false,
		LogRequestDetails:         true,
		IsProduction:              config.Cfg.IsProduction(),
	}
}

func RecoverMiddleware() app.HandlerFunc {
	return RecoverMiddlewareWithConfig(NewRecoverConfig())
}

func RecoverMiddlewareWithConfig(config RecoverConfig) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				handlePanic(ctx, c, err, config)
			}
		}()

		c.Next(ctx)
	}
}

func handlePanic(ctx context.Context, c *app.RequestContext, err interface{}, config RecoverConfig) {
	var stack []byte
	if config.EnableStackTrace {
		stack = getStackTrace(config.StackTraceLevel)
	}

	logPanic(ctx, c, err, stack, config)
	writeErrorResponse(c, err, stack, config)
}

func writeErrorResponse(c *app.RequestContext, err interface{}, stack []byte, config RecoverConfig) {
	var errDef pkgerrors.Definition
	if config.IsProduction && !config.ExposeDetailsInProduction {
		errDef = pkgerrors.Definition{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "Erro interno, tente novamente mais tarde",
		}
	} else {
		errDef = pkgerrors.Definition{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: fmt.Sprintf("Internal error: %v", err),
		}
	}

	var details map[string]interface{}
	if !config.IsProduction || config.ExposeDetailsInProduction {
		details = map[string]interface{}{
			"panic":     fmt.Sprintf("%v", err),
			"timestamp": time.Now().Format(time.RFC3339),
		}

		if config.EnableStackTrace {
			details["stack"] = string(stack)
		}
	}

	if details != nil {
		response.ErrorWithDetails(context.Background(), c, errDef, details)
	} else {
		response.Error(context.Background(), c, errDef)
	}
}

func getStackTrace(level string) []byte {
	var buf bytes.Buffer

	switch level {
	case "full":
		// todas as goroutines
		buf.Write(debug.Stack())
	case "simple":
		// só a pilha da goroutine corrente
		buf.WriteString("goroutine panic:\n")
		skip := 3 // pula recover e runtime
		for i := skip; ; i++ {
			pc, file, line, ok := runtime.Caller(i)
			if !ok {
				break
			}
			fn := runtime.FuncForPC(pc)
			if fn == nil {
				continue
			}
			buf.WriteString(fmt.Sprintf("  %s:%d\n    %s\n", file, line, fn.Name()))
		}
	}

	return buf.Bytes()
}

func logPanic(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte, config RecoverConfig) {
	fields := []zap.Field{
		zap.String("panic", fmt.Sprintf("%v", err)),
		zap.String("path", string(c.Path())),
		zap.String("method", string(c.Method())),
		zap.String("client_ip", c.ClientIP()),
		zap.String("user_agent", string(c.UserAgent())),
	}

	requestID := string(c.GetHeader("X-Request-ID"))
	if requestID == "" {
		requestID = string(c.GetHeader("X-Trace-ID"))
	}
	fields = append(fields, zap.String("request_id", requestID))

	if userID, exists := GetUserID(ctx, c); exists {
		fields = append(fields, zap.Int64("user_id", userID))
	}

	if config.LogRequestDetails {
		headers := make(map[string]string)
		c.Request.Header.VisitAll(func(key, value []byte) {
			headers[string(key)] = string(value)
		})
		fields = append(fields, zap.Any("headers", headers))

		// corpo pequeno e textual, nunca multipart nem mídia
		body := c.Request.Body()
		if len(body) > 0 && len(body) < 1024 {
			contentType := string(c.ContentType())
			if !strings.Contains(contentType, "multipart") &&
				!strings.Contains(contentType, "image") &&
				!strings.Contains(contentType, "video") {
				fields = append(fields, zap.String("body", string(body)))
			}
		}
	}

	if config.EnableStackTrace {
		fields = append(fields, zap.ByteString("stack", stack))
	}

	logger.Logger.Error("[PANIC RECOVERED]", fields...)
}
