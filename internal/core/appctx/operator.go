// Package appctx provides request-scoped values extraction.
//
// The authenticated operator travels on the request context instead of any
// ambient session flag: every workflow call can tell who triggered it.
package appctx

import (
	"context"
)

// Operator contains the authenticated operator identity for the request.
type Operator struct {
	Username  string
	SessionID string
}

type operatorContextKey struct{}

// WithOperator adds Operator to context.
func WithOperator(ctx context.Context, op *Operator) context.Context {
	return context.WithValue(ctx, operatorContextKey{}, op)
}

// GetOperator returns Operator from context, or nil when the request is
// unauthenticated.
func GetOperator(ctx context.Context) *Operator {
	if v, ok := ctx.Value(operatorContextKey{}).(*Operator); ok {
		return v
	}
	return nil
}

// GetOperatorName returns the operator username from context or empty string.
func GetOperatorName(ctx context.Context) string {
	if op := GetOperator(ctx); op != nil {
		return op.Username
	}
	return ""
}
