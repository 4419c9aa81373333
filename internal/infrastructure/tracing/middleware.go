package tracing

import (
	"github.com/gin-gonic/gin"
)

// HTTPMiddleware creates Gin middleware that traces every request with
// a server span. The span is the active scope for the duration of the
// handler: downstream code reaches it through the request context
// without being handed a reference.
//
// The span is closed exactly once on every exit path. When the handler
// panics the span is classified as a failure and closed before the
// panic continues to the recovery middleware, so recovery must sit
// outside this middleware in the chain.
func HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := StartServerSpan(c.Request.Context(), c.Request, c.FullPath())
		c.Request = c.Request.WithContext(ctx)

		defer func() {
			if r := recover(); r != nil {
				OnFailure(span)
				span.End()
				panic(r)
			}

			for _, ginErr := range c.Errors {
				span.RecordError(ginErr.Err)
			}
			OnResponse(span, c.Writer.Status())
			span.End()
		}()

		c.Next()
	}
}
