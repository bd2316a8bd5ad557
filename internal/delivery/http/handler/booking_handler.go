package handler

import (
	"net/http"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/response"
	"hospital-booking-api/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.TermBookingUsecase
	historyUsecase usecase.PatientHistoryUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(
	bookingUsecase usecase.TermBookingUsecase,
	historyUsecase usecase.PatientHistoryUsecase,
	validator *validator.CustomValidator,
) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		historyUsecase: historyUsecase,
		validator:      validator,
	}
}

// BookTerm answers 201 with a bare acknowledgment.
func (h *BookingHandler) BookTerm(w http.ResponseWriter, r *http.Request) {
	var req dto.BookTermRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	ack, err := h.bookingUsecase.BookTerm(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to book term")
		return
	}

	response.Created(w, ack.Message, ack)
}

func (h *BookingHandler) GetPatientHistory(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientHistoryRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	history, err := h.historyUsecase.GetPatientHistory(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to get patient history")
		return
	}

	response.Success(w, http.StatusOK, "Patient history retrieved successfully", history)
}

func (h *BookingHandler) ListAllTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.bookingUsecase.ListAllTerms(r.Context())
	if err != nil {
		writeError(w, err, "Failed to list terms")
		return
	}

	response.Success(w, http.StatusOK, "Terms retrieved successfully", terms)
}
