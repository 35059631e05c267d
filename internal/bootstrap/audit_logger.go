package bootstrap

import "context"

// AuditLog is a process lifecycle entry, e.g. server start or shutdown.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
