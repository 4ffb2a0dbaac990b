package context

import (
	"context"
)

type draftTokenKey struct{}

func NewContextWithDraftToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, draftTokenKey{}, token)
}

func GetDraftTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(draftTokenKey{}).(string)
	return token, ok && token != ""
}
