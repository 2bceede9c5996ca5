package constvars

const (
	URLParamPatientID = "patient_id"
)

const (
	URLQueryParamSuccess = "success"
	URLQueryParamError   = "error"
)

const (
	FormFieldUsername  = "username"
	FormFieldPassword  = "password"
	FormFieldPatientID = "patient_id"
	FormFieldName      = "name"
	FormFieldBirthDate = "birth_date"
	FormFieldHeight    = "height"
	FormFieldWeight    = "weight"
	FormFieldBloodType = "blood_type"
)
