package response

const (
	MessageSuccess = "success"

	// DefaultErrorMessage is the user-safe message for internal faults.
	DefaultErrorMessage = "something went wrong, please try again later"

	// UnavailableMessage is the user-safe message for upstream service faults.
	// Provider-specific detail is logged internally, never returned.
	UnavailableMessage = "service is temporarily unavailable, please try again later"

	InternalServerErrorCode = 500
	UnavailableErrorCode    = 503
)
