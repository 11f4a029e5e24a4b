package handlers

import "context"

type contextKey string

const userIDKey contextKey = "userID"

// ContextWithUserID returns a context carrying the authenticated user's id.
func ContextWithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext extracts the authenticated user's id set by the auth
// middleware.
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}
