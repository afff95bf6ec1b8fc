package constants

const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Cannot create record"
	ERROR_UPDATE               = "Cannot update record"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot parse data from locals"
	DATA_INPUT_IS_NOT_NUMBER   = "Input is not a number"
	DATA_INPUT_IS_NOT_BOOL     = "Input is not a boolean"
	NOT_FOUND_RECORDS          = "Records not found"

	MISSING_LOGIN_INPUT   = "Missing email or password"
	INVALID_EMAIL         = "Email is invalid"
	INVALID_PASSWORD      = "Password is invalid"
	CAN_NOT_HASH_PASSWORD = "Cannot hash password"
	ACCOUNT_NOT_ACTIVE    = "Account is not active"
	EMAIL_EXISTS          = "Email already registered"

	NOT_ADMIN              = "Only admin is allowed"
	ACCOUNT_NOT_PERMISSION = "Account does not have permission"
	NOT_HOTEL_MANAGER      = "Not authorized to manage this hotel"

	ROLE         = "role"
	ROLE_GUEST   = "GUEST"
	ROLE_MANAGER = "HOTEL_MANAGER"
	ROLE_ADMIN   = "ADMIN"
)
