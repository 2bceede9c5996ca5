package routers

import (
	"ehr-client/internal/app/delivery/http/controllers"
	"ehr-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.RequireSession)
	router.Post("/create", patientController.CreatePatient)
	router.Get("/{patient_id}", patientController.FindPatientByID)
	router.Put("/update", patientController.UpdatePatient)
	router.Delete("/delete/{patient_id}", patientController.DeletePatient)
}

func attachPatientFormRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientFormController *controllers.PatientFormController) {
	router.Use(middlewares.RequireSession)
	router.Get("/create", patientFormController.ShowPage)
	router.Post("/create", patientFormController.CreatePatient)
	router.Get("/update", patientFormController.ShowPage)
	router.Post("/update", patientFormController.UpdatePatient)
	router.Get("/delete", patientFormController.ShowPage)
	router.Post("/delete", patientFormController.DeletePatient)
}
