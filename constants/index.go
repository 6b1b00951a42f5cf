package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

const (
	ERROR_INTERNAL_ERROR = "INTERNAL_ERROR"

	INVALID_USERNAME         = "INVALID_USERNAME"
	INVALID_PASSWORD         = "INVALID_PASSWORD"
	ACCOUNT_NOT_ACTIVE       = "ACCOUNT_NOT_ACTIVE"
	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"

	NOT_FOUND             = "NOT_FOUND"
	SEAT_ALREADY_RESERVED = "SEAT_ALREADY_RESERVED"
	DUPLICATE_CONTACT     = "DUPLICATE_CONTACT"
	HALL_NAME_TAKEN       = "HALL_NAME_TAKEN"
	SEAT_TAKEN            = "SEAT_TAKEN"
	SEAT_NOT_IN_HALL      = "SEAT_NOT_IN_HALL"
	INVALID_PHONE         = "INVALID_PHONE"
	CONCURRENCY_CONFLICT  = "CONCURRENCY_CONFLICT"
	CONSTRAINT_VIOLATION  = "CONSTRAINT_VIOLATION"
)
