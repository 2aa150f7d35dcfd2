package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware garante um id de correlação por requisição. O id do
// cliente é preservado quando presente; a resposta sempre ecoa o header.
func RequestIDMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		requestID := string(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, requestID)
		}

		c.Response.Header.Set(requestIDHeader, requestID)
		c.Next(ctx)
	}
}
