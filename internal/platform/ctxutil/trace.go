// Package ctxutil carries request correlation identifiers through
// context.Context so catalog write paths and their logs line up with the
// trace headers the admin API accepts.
package ctxutil

import "context"

type traceDataKey struct{}

// TraceData holds the correlation identifiers attached to an inbound
// catalog API request.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	val := ctx.Value(traceDataKey{})
	if td, ok := val.(*TraceData); ok {
		return td
	}
	return nil
}

// TraceID returns the trace id on ctx, or "" when none was attached.
func TraceID(ctx context.Context) string {
	if td := GetTraceData(ctx); td != nil {
		return td.TraceID
	}
	return ""
}

// RequestID returns the request id on ctx, or "" when none was attached.
func RequestID(ctx context.Context) string {
	if td := GetTraceData(ctx); td != nil {
		return td.RequestID
	}
	return ""
}
