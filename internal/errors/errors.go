// Package errors defines the client-visible error taxonomy shared by
// the table gateway and its handlers.
package errors

// DomainError is an error the caller can act on: a stable code plus a
// human-readable message. Gateway handlers map these to HTTP 400;
// everything else is a 500.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string { return e.Message }

var (
	ErrTableNotAllowed = &DomainError{
		Code:    "TABLE_NOT_ALLOWED",
		Message: "Table not allowed",
	}
	ErrSchemaNotFound = &DomainError{
		Code:    "SCHEMA_NOT_FOUND",
		Message: "Schema not found",
	}
	ErrInvalidID = &DomainError{
		Code:    "INVALID_ID",
		Message: "Invalid id",
	}
	ErrNoValidFields = &DomainError{
		Code:    "NO_VALID_FIELDS",
		Message: "No valid fields provided",
	}
)

// IsDomain reports whether err is part of the client-fault taxonomy.
func IsDomain(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}
