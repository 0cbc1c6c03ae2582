// Package result provides a value+message envelope for operations that can
// succeed or fail without returning an error.
package result

// OperationResult pairs an outcome with a descriptive message. The zero
// value is a valid, empty result.
type OperationResult[T any] struct {
	Result  T
	Message string
}

// New returns an OperationResult holding both values.
func New[T any](result T, message string) OperationResult[T] {
	return OperationResult[T]{Result: result, Message: message}
}
