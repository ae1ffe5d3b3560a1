package middleware

import "context"

// keys of values stored in context
type MiddleWareContextKey string

const (
	REQUESTER = MiddleWareContextKey("requester") // The context value is a string naming the user behind the API key.
)

// Requester returns the user authenticated by APIKeyAuth, or an empty string.
func Requester(ctx context.Context) string {
	requester, _ := ctx.Value(REQUESTER).(string)
	return requester
}
