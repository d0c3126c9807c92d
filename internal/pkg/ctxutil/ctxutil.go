package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type requestDataKey struct{}

type traceDataKey struct{}

// RequestData is the authenticated identity attached to a request
// context by the auth middleware.
type RequestData struct {
	UserID      uuid.UUID
	TokenString string
}

// TraceData carries the correlation ids attached by the trace middleware.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	rd, ok := ctx.Value(requestDataKey{}).(*RequestData)
	if !ok {
		return nil
	}
	return rd
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	td, ok := ctx.Value(traceDataKey{}).(*TraceData)
	if !ok {
		return nil
	}
	return td
}
