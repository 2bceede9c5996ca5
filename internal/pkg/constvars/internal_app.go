package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

const (
	REQUEST_ID_PREFIX  = "EHR_CLIENT_"
	SESSION_KEY_PREFIX = "ehr-client:session:"
)

const (
	ServiceName = "ehr-client"
)

// Backend EHR service paths
const (
	BackendPathLogin    = "/auth/login"
	BackendPathPatients = "/patients"
)

// UI page routes
const (
	PageLogin         = "/login"
	PagePatientCreate = "/patients/create"
	PagePatientUpdate = "/patients/update"
	PagePatientDelete = "/patients/delete"
)
