package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must contain at least %s item(s)",
	"max":      "maximum at %s characters long",
}

var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientUsernameAndPasswordRequired   = "Username and password are required"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientBackendNotReachable           = "Backend not reachable"
	ErrClientUIBackendNotReachable         = "Client API not reachable"
	ErrClientTooManyLoginAttempts          = "Too many login attempts, please try again later"
	ErrClientBackendRejected               = "Backend returned %d: %s"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseForm           = "cannot parse form body"
	ErrDevReadBody                  = "failed to read body"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request to EHR backend"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevBackendLoginNoToken       = "EHR backend login response carries no access_token"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired session token"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevServerPanic               = "recovered from panic"
	ErrDevRedisSetData              = "failed to SET data into redis"
	ErrDevRedisGetData              = "failed to GET data from redis"
	ErrDevRedisDeleteData           = "failed to DELETE data from redis"
	ErrDevServerParseSessionData    = "failed to parse session data"
)
