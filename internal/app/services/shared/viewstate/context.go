package viewstate

import (
	"context"
	"patient-viewer-service/internal/pkg/constvars"
)

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_VIEWER_SESSION_KEY, session)
}

func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_VIEWER_SESSION_KEY).(*Session)
	return session, ok && session != nil
}
