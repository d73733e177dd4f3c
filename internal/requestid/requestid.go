// Package requestid carries the per-request correlation id through contexts
// so outbound calls to the collection service can be tied to page requests.
package requestid

import "context"

const Header = "X-Request-ID"

type ctxKey struct{}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request id, or "" when none was attached.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
