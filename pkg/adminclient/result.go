package adminclient

// Reason classifies why a call was rejected.
type Reason string

const (
	ReasonNotFound   Reason = "not_found"
	ReasonRejected   Reason = "rejected"
	ReasonValidation Reason = "validation"
)

// Failure carries the server's rejection, or a local validation one.
type Failure struct {
	Reason  Reason
	Message string
}

// Result is either a value or a Failure. The value is only reachable
// through Ok, so a rejection cannot be mistaken for success.
type Result[T any] struct {
	value   T
	failure *Failure
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Fail[T any](reason Reason, message string) Result[T] {
	if message == "" {
		message = "request failed"
	}
	return Result[T]{failure: &Failure{Reason: reason, Message: message}}
}

// Ok returns the value and whether the call succeeded.
func (r Result[T]) Ok() (T, bool) {
	return r.value, r.failure == nil
}

// Failure returns the rejection, nil on success.
func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Message returns the rejection message, empty on success.
func (r Result[T]) Message() string {
	if r.failure == nil {
		return ""
	}
	return r.failure.Message
}
