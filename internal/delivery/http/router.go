package http

import (
	"net/http"

	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	patientHandler          *handler.PatientHandler
	doctorHandler           *handler.DoctorHandler
	specialtyHandler        *handler.SpecialtyHandler
	appointmentHandler      *handler.AppointmentHandler
	medicineHandler         *handler.MedicineHandler
	prescriptionHandler     *handler.PrescriptionHandler
	recipeDetailHandler     *handler.RecipeDetailHandler
	diagnosisHandler        *handler.DiagnosisHandler
	medicalProcedureHandler *handler.MedicalProcedureHandler
	paymentHandler          *handler.PaymentHandler
	auditLogHandler         *handler.AuditLogHandler
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	specialtyHandler *handler.SpecialtyHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicineHandler *handler.MedicineHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	recipeDetailHandler *handler.RecipeDetailHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	medicalProcedureHandler *handler.MedicalProcedureHandler,
	paymentHandler *handler.PaymentHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		patientHandler:          patientHandler,
		doctorHandler:           doctorHandler,
		specialtyHandler:        specialtyHandler,
		appointmentHandler:      appointmentHandler,
		medicineHandler:         medicineHandler,
		prescriptionHandler:     prescriptionHandler,
		recipeDetailHandler:     recipeDetailHandler,
		diagnosisHandler:        diagnosisHandler,
		medicalProcedureHandler: medicalProcedureHandler,
		paymentHandler:          paymentHandler,
		auditLogHandler:         auditLogHandler,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	// Specialties
	api.HandleFunc("/specialties", r.specialtyHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/specialties", r.specialtyHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}", r.specialtyHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}", r.specialtyHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/specialties/{id}", r.specialtyHandler.Delete).Methods(http.MethodDelete)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Medicines
	api.HandleFunc("/medicines", r.medicineHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/medicines", r.medicineHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}", r.medicineHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}", r.medicineHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/medicines/{id}", r.medicineHandler.Delete).Methods(http.MethodDelete)

	// Prescriptions
	api.HandleFunc("/prescriptions", r.prescriptionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/prescriptions", r.prescriptionHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Delete).Methods(http.MethodDelete)

	// Recipe details
	api.HandleFunc("/recipedetails", r.recipeDetailHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/recipedetails", r.recipeDetailHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/recipedetails/{id}", r.recipeDetailHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/recipedetails/{id}", r.recipeDetailHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/recipedetails/{id}", r.recipeDetailHandler.Delete).Methods(http.MethodDelete)

	// Diagnoses
	api.HandleFunc("/diagnoses", r.diagnosisHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/diagnoses", r.diagnosisHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/diagnoses/{id}", r.diagnosisHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/diagnoses/{id}", r.diagnosisHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/diagnoses/{id}", r.diagnosisHandler.Delete).Methods(http.MethodDelete)

	// Medical procedures
	api.HandleFunc("/medicalprocedures", r.medicalProcedureHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/medicalprocedures", r.medicalProcedureHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/medicalprocedures/{id}", r.medicalProcedureHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/medicalprocedures/{id}", r.medicalProcedureHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/medicalprocedures/{id}", r.medicalProcedureHandler.Delete).Methods(http.MethodDelete)

	// Payments
	api.HandleFunc("/payments", r.paymentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/payments", r.paymentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", r.paymentHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", r.paymentHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/payments/{id}", r.paymentHandler.Delete).Methods(http.MethodDelete)

	// Audit logs (read only)
	api.HandleFunc("/auditlogs", r.auditLogHandler.GetAll).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
