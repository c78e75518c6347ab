package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinical-records-api/internal/converter"
	"clinical-records-api/internal/delivery/dto"
	"clinical-records-api/internal/delivery/http/middleware"
	"clinical-records-api/internal/usecase"
	"clinical-records-api/pkg/response"
	"clinical-records-api/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	exportUsecase  usecase.ExportUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, exportUsecase usecase.ExportUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		exportUsecase:  exportUsecase,
		validator:      validator,
	}
}

// List handles listing patients
// @Summary List patients
// @Description List all patients, newest first, optionally filtered by name or record number
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param search query string false "Match against nombre or expediente"
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	patients, err := h.patientUsecase.List(r.Context(), search)
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", converter.PatientsToResponse(patients))
}

// Get handles getting a patient by ID
// @Summary Get patient
// @Description Get a single patient by ID
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.Get(r.Context(), uint(patientID))
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", converter.PatientToResponse(patient))
}

// Create handles patient registration
// @Summary Create patient
// @Description Register a new patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SavePatientRequest true "Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SavePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req, middleware.CurrentUserID(r.Context()))
	if err != nil {
		switch err {
		case usecase.ErrExpedienteExists:
			response.Conflict(w, err.Error())
		case usecase.ErrInvalidEdad:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", converter.PatientToResponse(patient))
}

// Update handles updating a patient
// @Summary Update patient
// @Description Update an existing patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param request body dto.SavePatientRequest true "Patient Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.SavePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), uint(patientID), &req, middleware.CurrentUserID(r.Context()))
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrExpedienteExists:
			response.Conflict(w, err.Error())
		case usecase.ErrInvalidEdad:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", converter.PatientToResponse(patient))
}

// Delete handles deleting a patient
// @Summary Delete patient
// @Description Delete a patient without clinical history
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients/{id} [delete]
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), uint(patientID), middleware.CurrentUserID(r.Context())); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrPatientHasRecords:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

// ExportCSV handles exporting the patient list as CSV
// @Summary Export patients as CSV
// @Description Download the full patient registry as a CSV file
// @Tags Patients
// @Security BearerAuth
// @Produce text/csv
// @Success 200 {file} file
// @Router /patients/export/csv [get]
func (h *PatientHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	file, err := h.exportUsecase.PatientsCSV(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Data)
}

// ExportPDF handles exporting the patient list as PDF
// @Summary Export patients as PDF
// @Description Download the full patient registry as a PDF table
// @Tags Patients
// @Security BearerAuth
// @Produce application/pdf
// @Success 200 {file} file
// @Router /patients/export/pdf [get]
func (h *PatientHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.exportUsecase.PatientsPDF(r.Context())
	if err != nil {
		response.InternalServerError(w, err.Error())
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Data)
}

// ExportOnePDF handles exporting a single patient as PDF
// @Summary Export one patient as PDF
// @Description Download a single patient's data sheet as PDF
// @Tags Patients
// @Security BearerAuth
// @Produce application/pdf
// @Param id path int true "Patient ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /patients/{id}/export/pdf [get]
func (h *PatientHandler) ExportOnePDF(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	file, err := h.exportUsecase.PatientPDF(r.Context(), uint(patientID))
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Data)
}
