package http

import (
	"net/http"

	"hospital-booking-api/internal/delivery/http/handler"
	"hospital-booking-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	bookingHandler       *handler.BookingHandler
	patientHandler       *handler.PatientHandler
	doctorHandler        *handler.DoctorHandler
	nurseHandler         *handler.NurseHandler
	appointmentHandler   *handler.AppointmentHandler
	requestHandler       *handler.RequestHandler
	testHandler          *handler.TestHandler
	catalogHandler       *handler.CatalogHandler
	prescriptionHandler  *handler.PrescriptionHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	notificationHandler  *handler.NotificationHandler
	loggingMiddleware    *middleware.LoggingMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Booking       *handler.BookingHandler
	Patient       *handler.PatientHandler
	Doctor        *handler.DoctorHandler
	Nurse         *handler.NurseHandler
	Appointment   *handler.AppointmentHandler
	Request       *handler.RequestHandler
	Test          *handler.TestHandler
	Catalog       *handler.CatalogHandler
	Prescription  *handler.PrescriptionHandler
	MedicalRecord *handler.MedicalRecordHandler
	Notification  *handler.NotificationHandler
}

func NewRouter(
	handlers Handlers,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		bookingHandler:       handlers.Booking,
		patientHandler:       handlers.Patient,
		doctorHandler:        handlers.Doctor,
		nurseHandler:         handlers.Nurse,
		appointmentHandler:   handlers.Appointment,
		requestHandler:       handlers.Request,
		testHandler:          handlers.Test,
		catalogHandler:       handlers.Catalog,
		prescriptionHandler:  handlers.Prescription,
		medicalRecordHandler: handlers.MedicalRecord,
		notificationHandler:  handlers.Notification,
		loggingMiddleware:    loggingMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Booking workflow and calendar
	api.HandleFunc("/book-term", r.bookingHandler.BookTerm).Methods(http.MethodPost)
	api.HandleFunc("/history/patient", r.bookingHandler.GetPatientHistory).Methods(http.MethodPost)
	api.HandleFunc("/list-all-terms", r.bookingHandler.ListAllTerms).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	api.HandleFunc("/patients/{id}/medical-records", r.patientHandler.GetPatientMedicalRecords).Methods(http.MethodGet)

	// Doctors and nurses
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	api.HandleFunc("/nurses", r.nurseHandler.CreateNurse).Methods(http.MethodPost)
	api.HandleFunc("/nurses", r.nurseHandler.GetAllNurses).Methods(http.MethodGet)
	api.HandleFunc("/nurses/{id}", r.nurseHandler.GetNurse).Methods(http.MethodGet)
	api.HandleFunc("/nurses/{id}", r.nurseHandler.UpdateNurse).Methods(http.MethodPut)
	api.HandleFunc("/nurses/{id}", r.nurseHandler.DeleteNurse).Methods(http.MethodDelete)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/history", r.appointmentHandler.GetAppointmentHistory).Methods(http.MethodGet)

	// Requests and tests
	api.HandleFunc("/requests", r.requestHandler.CreateRequest).Methods(http.MethodPost)
	api.HandleFunc("/requests", r.requestHandler.GetAllRequests).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}", r.requestHandler.GetRequest).Methods(http.MethodGet)
	api.HandleFunc("/requests/{id}", r.requestHandler.UpdateRequest).Methods(http.MethodPut)
	api.HandleFunc("/requests/{id}", r.requestHandler.DeleteRequest).Methods(http.MethodDelete)
	api.HandleFunc("/requests/{id}/tests", r.requestHandler.GetRequestTests).Methods(http.MethodGet)

	api.HandleFunc("/tests", r.testHandler.CreateTest).Methods(http.MethodPost)
	api.HandleFunc("/tests", r.testHandler.GetAllTests).Methods(http.MethodGet)
	api.HandleFunc("/tests/{id}", r.testHandler.GetTest).Methods(http.MethodGet)
	api.HandleFunc("/tests/{id}", r.testHandler.UpdateTest).Methods(http.MethodPut)
	api.HandleFunc("/tests/{id}", r.testHandler.DeleteTest).Methods(http.MethodDelete)

	// Catalogs
	api.HandleFunc("/doctor-specializations", r.catalogHandler.CreateSpecialization).Methods(http.MethodPost)
	api.HandleFunc("/doctor-specializations", r.catalogHandler.GetAllSpecializations).Methods(http.MethodGet)
	api.HandleFunc("/doctor-specializations/{id}", r.catalogHandler.GetSpecialization).Methods(http.MethodGet)
	api.HandleFunc("/doctor-specializations/{id}", r.catalogHandler.UpdateSpecialization).Methods(http.MethodPut)
	api.HandleFunc("/doctor-specializations/{id}", r.catalogHandler.DeleteSpecialization).Methods(http.MethodDelete)

	api.HandleFunc("/request-types", r.catalogHandler.CreateRequestType).Methods(http.MethodPost)
	api.HandleFunc("/request-types", r.catalogHandler.GetAllRequestTypes).Methods(http.MethodGet)
	api.HandleFunc("/request-types/{id}", r.catalogHandler.GetRequestType).Methods(http.MethodGet)
	api.HandleFunc("/request-types/{id}", r.catalogHandler.UpdateRequestType).Methods(http.MethodPut)
	api.HandleFunc("/request-types/{id}", r.catalogHandler.DeleteRequestType).Methods(http.MethodDelete)

	api.HandleFunc("/test-types", r.catalogHandler.CreateTestType).Methods(http.MethodPost)
	api.HandleFunc("/test-types", r.catalogHandler.GetAllTestTypes).Methods(http.MethodGet)
	api.HandleFunc("/test-types/{id}", r.catalogHandler.GetTestType).Methods(http.MethodGet)
	api.HandleFunc("/test-types/{id}", r.catalogHandler.UpdateTestType).Methods(http.MethodPut)
	api.HandleFunc("/test-types/{id}", r.catalogHandler.DeleteTestType).Methods(http.MethodDelete)

	api.HandleFunc("/medicines", r.catalogHandler.CreateMedicine).Methods(http.MethodPost)
	api.HandleFunc("/medicines", r.catalogHandler.GetAllMedicines).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}", r.catalogHandler.GetMedicine).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}", r.catalogHandler.UpdateMedicine).Methods(http.MethodPut)
	api.HandleFunc("/medicines/{id}", r.catalogHandler.DeleteMedicine).Methods(http.MethodDelete)

	// Prescriptions and medical records
	api.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	api.HandleFunc("/prescriptions", r.prescriptionHandler.GetAllPrescriptions).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.UpdatePrescription).Methods(http.MethodPut)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)

	api.HandleFunc("/medical-records", r.medicalRecordHandler.CreateMedicalRecord).Methods(http.MethodPost)
	api.HandleFunc("/medical-records", r.medicalRecordHandler.GetAllMedicalRecords).Methods(http.MethodGet)
	api.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.GetMedicalRecord).Methods(http.MethodGet)
	api.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.UpdateMedicalRecord).Methods(http.MethodPut)
	api.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.DeleteMedicalRecord).Methods(http.MethodDelete)

	// Notifications
	api.HandleFunc("/notifications", r.notificationHandler.GetNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/open", r.notificationHandler.MarkAsOpened).Methods(http.MethodPut)

	// Middleware order: recovery wraps logging wraps CORS
	r.router.Use(r.loggingMiddleware.Recover)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
