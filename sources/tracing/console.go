package tracing

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	OutsiderKind   = "outsider_kind"
	ProxyUrl       = "proxy_url"
	InnerError     = "inner_error"
	CorrelationId  = "correlation_id"
	UserId         = "user_id"
	UserName       = "user_name"
	Identity       = "identity"
	ChatType       = "chat_type"
	ChatId         = "chat_id"
	MessageId      = "message_id"
	MessageDate    = "message_date"
	DecisionBranch = "decision_branch"
	DecisionReason = "decision_reason"
	ReplyKind      = "reply_kind"
	ListName       = "list_name"
	ListPath       = "list_path"
	ListSize       = "list_size"
	FeatureName    = "feature_name"
)

type Logger struct {
	log *slog.Logger
	ctx context.Context
}

func NewConsoleLogger() *Logger {
	logger := NewLogger(os.Stdout, ParseLevel(os.Getenv("LOG_LEVEL")))
	logger.I("Initializing logger")
	return logger
}

// NewLogger builds a JSON logger writing to w.
func NewLogger(w io.Writer, level slog.Level) *Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return &Logger{log: logger, ctx: context.Background()}
}

func NewDiscardLogger() *Logger {
	return NewLogger(io.Discard, slog.LevelError+4)
}

func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{log: l.log.With(args...), ctx: l.ctx}
}

func (l *Logger) D(msg string, args ...any) {
	l.log.DebugContext(l.ctx, msg, args...)
}

func (l *Logger) I(msg string, args ...any) {
	l.log.InfoContext(l.ctx, msg, args...)
}

func (l *Logger) W(msg string, args ...any) {
	l.log.WarnContext(l.ctx, msg, args...)
}

func (l *Logger) E(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
}

func (l *Logger) F(msg string, args ...any) {
	l.log.ErrorContext(l.ctx, msg, args...)
	panic(msg)
}

// Slog exposes the underlying logger for libraries that take *slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.log
}
