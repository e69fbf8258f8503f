package ctxutil

import (
	"context"
	"testing"
)

func TestTraceDataRoundTrip(t *testing.T) {
	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t-1", RequestID: "r-1"})

	if got := TraceID(ctx); got != "t-1" {
		t.Fatalf("TraceID: %q", got)
	}
	if got := RequestID(ctx); got != "r-1" {
		t.Fatalf("RequestID: %q", got)
	}
}

func TestTraceDataAbsent(t *testing.T) {
	ctx := context.Background()

	if td := GetTraceData(ctx); td != nil {
		t.Fatalf("expected nil trace data, got %+v", td)
	}
	if got := TraceID(ctx); got != "" {
		t.Fatalf("TraceID on bare ctx: %q", got)
	}
	if got := RequestID(ctx); got != "" {
		t.Fatalf("RequestID on bare ctx: %q", got)
	}
}
