package errors

import "log/slog"

// SlogHandler is a Handler that forwards reports to a slog.Logger, for hosts
// that route everything through structured logging:
//
//	errors.SetHandler(&errors.SlogHandler{Logger: slog.Default()})
type SlogHandler struct {
	// Logger receives the records. Defaults to slog.Default().
	Logger *slog.Logger
}

func (h *SlogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a LatchError at error level.
func (h *SlogHandler) HandleError(err *LatchError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Widget != "" {
		attrs = append(attrs, slog.String("widget", err.Widget))
	}
	if err.Err != nil {
		attrs = append(attrs, slog.Any("err", err.Err))
	}
	h.logger().Error("latch error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *SlogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.Any("value", err.Value),
	}
	if err.Op != "" {
		attrs = append(attrs, slog.String("op", err.Op))
	}
	if err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	h.logger().Error("latch panic", attrs...)
}
