package errors

// Code represents an error code
type Code string

// Generic error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
)

// Item model error codes
const (
	// CodeUnknownRarity is returned when a rarity is outside the enumerated set
	CodeUnknownRarity Code = "UNKNOWN_RARITY"
	// CodeUnknownVariant is returned when a persisted type tag has no registered constructor
	CodeUnknownVariant Code = "UNKNOWN_VARIANT"
	// CodeMalformedRecord is returned when a persisted record is missing required fields
	CodeMalformedRecord Code = "MALFORMED_RECORD"
	// CodeIOFailure is returned when a sink or source is unavailable
	CodeIOFailure Code = "IO_FAILURE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
