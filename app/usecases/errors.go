package usecases

import "net/http"

// UseCaseError carries an HTTP status alongside the message so handlers
// can forward business failures without interpreting them. The three
// domain kinds map to fixed codes: not-found 404, business-rule 422,
// schedule-conflict 409.
type UseCaseError struct {
	Code    int
	Message string
}

func (e *UseCaseError) Error() string {
	return e.Message
}

func ErrNotFound(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusNotFound, Message: message}
}

func ErrBusinessRule(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusUnprocessableEntity, Message: message}
}

func ErrScheduleConflict(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusConflict, Message: message}
}

func ErrBadRequest(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusBadRequest, Message: message}
}
