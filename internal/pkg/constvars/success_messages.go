package constvars

const (
	ResponseUnknown = "unknown"

	ServiceRunningMessage = "ehr-client is running"
	HealthStatusOK        = "ok"

	LoginSuccessMessage  = "successfully login"
	LogoutSuccessMessage = "successfully logout"

	CreatePatientSuccessMessage = "Patient created successfully"
	UpdatePatientSuccessMessage = "Patient updated successfully"
	DeletePatientSuccessMessage = "Patient deleted successfully"
)
