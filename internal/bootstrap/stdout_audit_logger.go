package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

type stdoutAuditLogger struct {
	logger *zap.Logger
}

// NewStdoutAuditLogger writes audit entries through the process logger.
// Ledger mutations and lifecycle events go through this so operators can
// reconstruct who changed a balance and when.
func NewStdoutAuditLogger() AuditLogger {
	return &stdoutAuditLogger{logger: zap.L().Named("audit")}
}

func (l *stdoutAuditLogger) Log(_ context.Context, entry AuditLog) {
	fields := make([]zap.Field, 0, len(entry.Meta)+1)
	fields = append(fields, zap.String("action", entry.Action))
	for k, v := range entry.Meta {
		fields = append(fields, zap.Any(k, v))
	}
	l.logger.Info(entry.Message, fields...)
}
