package booking

// NotFoundError signals that a vehicle, route or booking is missing from its
// source. The HTTP layer maps it to a 404 response.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(msg string) error {
	return NotFoundError{Message: msg}
}

// InvalidInputError signals a booking draft that fails validation. The HTTP
// layer maps it to a 400 response.
type InvalidInputError struct {
	Message string
}

func (e InvalidInputError) Error() string {
	return e.Message
}

func NewInvalidInputError(msg string) error {
	return InvalidInputError{Message: msg}
}
