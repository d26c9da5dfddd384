package httpdto

// DefaultErrorMessage is used by Conditional when no message is supplied.
const DefaultErrorMessage = "There was an error"

// Envelope is the fixed two-field body of every API response.
// Success is true iff Data holds the caller's payload rather than ErrorData.
type Envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// ErrorData is the payload of a failed response.
type ErrorData struct {
	Message string `json:"error-message"`
}

// Success wraps data, unchanged, in a successful envelope.
func Success[T any](data T) Envelope[T] {
	return Envelope[T]{
		Success: true,
		Data:    data,
	}
}

// Error builds a failed envelope carrying message.
func Error(message string) Envelope[ErrorData] {
	return Envelope[ErrorData]{
		Success: false,
		Data:    ErrorData{Message: message},
	}
}

// Conditional returns Success(data) when condition holds and Error otherwise.
// The error message is the first of message, or DefaultErrorMessage when
// none is given.
func Conditional[T any](condition bool, data T, message ...string) Envelope[any] {
	if condition {
		return Success(data).Any()
	}
	msg := DefaultErrorMessage
	if len(message) > 0 {
		msg = message[0]
	}
	return Error(msg).Any()
}

// Any erases the payload type. The JSON encoding is unchanged.
func (e Envelope[T]) Any() Envelope[any] {
	return Envelope[any]{
		Success: e.Success,
		Data:    e.Data,
	}
}
