package handler

import (
	"encoding/json"
	"errors"
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

type RecordHandler struct {
	recordUsecase usecase.ClinicalRecordUsecase
	exportUsecase usecase.ExportUsecase
	validator     *validator.CustomValidator
}

func NewRecordHandler(recordUsecase usecase.ClinicalRecordUsecase, exportUsecase usecase.ExportUsecase, validator *validator.CustomValidator) *RecordHandler {
	return &RecordHandler{
		recordUsecase: recordUsecase,
		exportUsecase: exportUsecase,
		validator:     validator,
	}
}

func recordIDs(r *http.Request) (patientID, recordID uint, err error) {
	vars := mux.Vars(r)
	pid, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0, 0, err
	}
	rid, err := strconv.Atoi(vars["recordId"])
	if err != nil {
		return 0, 0, err
	}
	return uint(pid), uint(rid), nil
}

// List handles listing a patient's clinical history
// @Summary List clinical records
// @Description List a patient's visit records, newest first
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	summaries, err := h.recordUsecase.ListByPatient(r.Context(), uint(patientID))
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Records retrieved successfully", converter.RecordSummariesToResponse(summaries))
}

// Get handles getting a single clinical record
// @Summary Get clinical record
// @Description Get one visit record in full
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Param recordId path int true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/records/{recordId} [get]
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	patientID, recordID, err := recordIDs(r)
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	record, err := h.recordUsecase.Get(r.Context(), patientID, recordID)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Record not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Record retrieved successfully", converter.RecordToResponse(record))
}

// Create handles creating a clinical record
// @Summary Create clinical record
// @Description Save a new visit record for a patient
// @Tags Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param request body dto.SaveRecordRequest true "Record Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/records [post]
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), uint(patientID), &req, middleware.CurrentUserID(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrInvalidFieldValue):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Record created successfully", converter.RecordToResponse(record))
}

// Update handles updating a clinical record
// @Summary Update clinical record
// @Description Update an existing visit record
// @Tags Records
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param recordId path int true "Record ID"
// @Param request body dto.SaveRecordRequest true "Record Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/records/{recordId} [put]
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	patientID, recordID, err := recordIDs(r)
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	var req dto.SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Update(r.Context(), patientID, recordID, &req, middleware.CurrentUserID(r.Context()))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRecordNotFound):
			response.NotFound(w, "Record not found")
		case errors.Is(err, usecase.ErrInvalidFieldValue):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Record updated successfully", converter.RecordToResponse(record))
}

// Delete handles deleting a clinical record
// @Summary Delete clinical record
// @Description Delete a visit record
// @Tags Records
// @Security BearerAuth
// @Produce json
// @Param id path int true "Patient ID"
// @Param recordId path int true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id}/records/{recordId} [delete]
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	patientID, recordID, err := recordIDs(r)
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	if err := h.recordUsecase.Delete(r.Context(), patientID, recordID, middleware.CurrentUserID(r.Context())); err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Record not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Record deleted successfully", nil)
}

// ExportPDF handles exporting a single clinical record as PDF
// @Summary Export clinical record as PDF
// @Description Download one visit record as PDF
// @Tags Records
// @Security BearerAuth
// @Produce application/pdf
// @Param id path int true "Patient ID"
// @Param recordId path int true "Record ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /patients/{id}/records/{recordId}/export/pdf [get]
func (h *RecordHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	patientID, recordID, err := recordIDs(r)
	if err != nil {
		response.BadRequest(w, "Invalid record ID")
		return
	}

	file, err := h.exportUsecase.RecordPDF(r.Context(), patientID, recordID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Record not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Data)
}

// ExportHistoryPDF handles exporting a patient's full history as PDF
// @Summary Export clinical history as PDF
// @Description Download all of a patient's visit records as one PDF
// @Tags Records
// @Security BearerAuth
// @Produce application/pdf
// @Param id path int true "Patient ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /patients/{id}/records/export/pdf [get]
func (h *RecordHandler) ExportHistoryPDF(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	file, err := h.exportUsecase.HistoryPDF(r.Context(), uint(patientID))
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrNoRecordsToExport:
			response.NotFound(w, err.Error())
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Data)
}
