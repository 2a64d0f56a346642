package correlation

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const Header = "X-Correlation-ID"

// correlationKey is an unexported type for context keys within this package.
type correlationKey struct{}

// ExtractCorrelationID fetches a correlation ID from the context if present.
func ExtractCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(correlationKey{}).(string); ok {
		return val
	}
	return ""
}

// ContextWithCorrelationID sets the correlation ID onto the context.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationKey{}, id)
}

// EnsureCorrelationID guarantees a correlation ID on the context, generating one when missing.
func EnsureCorrelationID(ctx context.Context) (context.Context, string) {
	cid := ExtractCorrelationID(ctx)
	if cid == "" {
		cid = ulid.Make().String()
	}
	return ContextWithCorrelationID(ctx, cid), cid
}

// GinMiddleware propagates the inbound correlation header, generating an ID when absent.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cid := EnsureCorrelationID(
			ContextWithCorrelationID(c.Request.Context(), c.GetHeader(Header)),
		)
		c.Request = c.Request.WithContext(ctx)
		c.Header(Header, cid)
		c.Next()
	}
}
