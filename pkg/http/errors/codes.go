package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingField     = "missing_field"

	// Resource errors
	ErrCodeNotFound         = "not_found"
	ErrCodeSubjectNotFound  = "subject_not_found"
	ErrCodeScheduleNotFound = "schedule_not_found"

	// Server errors
	ErrCodeInternalError = "internal_error"
)
