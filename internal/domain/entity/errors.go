package entity

import "fmt"

// Error is a domain failure that carries the HTTP status and user-facing
// message it resolves to. Each distinct failure is its own sentinel value,
// so callers can tell apart variants that happen to share a status/message
// pair (for example an unknown sort column and an empty filtered set both
// surface as 404 "Not Found").
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Sentinel domain failures. Compare with errors.Is; identity, not payload,
// distinguishes them.
var (
	// ErrNotFound is the generic listing failure: empty filtered set,
	// page beyond range, or a missing article on the single-read path.
	ErrNotFound = &Error{Status: 404, Message: "Not Found"}

	// ErrSortColumnUnknown reports a sort_by value that names no column of
	// the article projection. Kept on the historical 404 pair.
	ErrSortColumnUnknown = &Error{Status: 404, Message: "Not Found"}

	// ErrOrderInvalid reports an order value other than asc/desc, or an
	// empty sort_by/order query flag.
	ErrOrderInvalid = &Error{Status: 400, Message: "Bad Request"}

	// ErrBadRequest covers malformed path identifiers and malformed or
	// missing body fields on the vote-update path.
	ErrBadRequest = &Error{Status: 400, Message: "Bad Request"}

	// ErrLimitExceeded is returned when the requested limit is above the
	// ceiling and the filtered set is non-empty.
	ErrLimitExceeded = &Error{Status: 404, Message: "Limit exceeds the total number of articles"}

	ErrArticleNotFound = &Error{Status: 404, Message: "This article does not exist"}
	ErrUserNotFound    = &Error{Status: 404, Message: "This user does not exist"}
	ErrUserLookup      = &Error{Status: 404, Message: "User Not Found"}

	// ErrInvalidData rejects comment payloads with missing or empty
	// required fields before any user lookup happens.
	ErrInvalidData     = &Error{Status: 400, Message: "Invalid data sent"}
	ErrInvalidUserData = &Error{Status: 400, Message: "Invalid user data"}

	ErrInvalidEmail    = &Error{Status: 400, Message: "Invalid email"}
	ErrInvalidUsername = &Error{Status: 400, Message: "Invalid username"}
	ErrInvalidPassword = &Error{Status: 400, Message: "Invalid password"}

	ErrUserExists     = &Error{Status: 409, Message: "This user already exists"}
	ErrEmailExists    = &Error{Status: 409, Message: "This email already exists"}
	ErrUsernameExists = &Error{Status: 409, Message: "This username already exists"}

	ErrWrongPassword = &Error{Status: 401, Message: "Password is incorrect"}
)

// InvalidParam builds the numeric-parameter failure for a raw query value.
// The offending literal is embedded verbatim in the message.
func InvalidParam(value string) *Error {
	return &Error{Status: 400, Message: fmt.Sprintf("%s value is invalid", value)}
}
