package http

import (
	"net/http"

	"clinical-records-api/internal/delivery/http/handler"
	"clinical-records-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	patientHandler  *handler.PatientHandler
	recordHandler   *handler.RecordHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	recordHandler *handler.RecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		patientHandler:  patientHandler,
		recordHandler:   recordHandler,
		auditLogHandler: auditLogHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Patient registry (protected)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("/export/csv", r.patientHandler.ExportCSV).Methods(http.MethodGet)
	patients.HandleFunc("/export/pdf", r.patientHandler.ExportPDF).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}", r.patientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id:[0-9]+}", r.patientHandler.Delete).Methods(http.MethodDelete)
	patients.HandleFunc("/{id:[0-9]+}/export/pdf", r.patientHandler.ExportOnePDF).Methods(http.MethodGet)

	// Clinical records (protected, nested under a patient)
	patients.HandleFunc("/{id:[0-9]+}/records", r.recordHandler.List).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}/records", r.recordHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("/{id:[0-9]+}/records/export/pdf", r.recordHandler.ExportHistoryPDF).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}/records/{recordId:[0-9]+}", r.recordHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}/records/{recordId:[0-9]+}", r.recordHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id:[0-9]+}/records/{recordId:[0-9]+}", r.recordHandler.Delete).Methods(http.MethodDelete)
	patients.HandleFunc("/{id:[0-9]+}/records/{recordId:[0-9]+}/export/pdf", r.recordHandler.ExportPDF).Methods(http.MethodGet)

	// Audit log routes (protected)
	auditLogs := api.PathPrefix("/audit-logs").Subrouter()
	auditLogs.Use(r.authMiddleware.Authenticate)
	auditLogs.HandleFunc("", r.auditLogHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
