package handler

import (
	"net/http"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/pagination"
	"hospital-booking-api/pkg/response"
	"hospital-booking-api/pkg/validator"
)

type RequestHandler struct {
	requestUsecase usecase.RequestUsecase
	testUsecase    usecase.TestUsecase
	validator      *validator.CustomValidator
}

func NewRequestHandler(requestUsecase usecase.RequestUsecase, testUsecase usecase.TestUsecase, validator *validator.CustomValidator) *RequestHandler {
	return &RequestHandler{
		requestUsecase: requestUsecase,
		testUsecase:    testUsecase,
		validator:      validator,
	}
}

func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRequestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	request, err := h.requestUsecase.CreateRequest(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create request")
		return
	}

	response.Created(w, "Request created successfully", request)
}

func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	request, err := h.requestUsecase.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get request")
		return
	}

	response.Success(w, http.StatusOK, "Request retrieved successfully", request)
}

func (h *RequestHandler) GetAllRequests(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	requests, total, err := h.requestUsecase.GetAllRequests(r.Context(), params)
	if err != nil {
		writeError(w, err, "Failed to get requests")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Requests retrieved successfully", requests, params.Meta(total))
}

// UpdateRequest changes state and/or reassigns the request.
func (h *RequestHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	var req dto.UpdateRequestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	request, err := h.requestUsecase.UpdateRequest(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update request")
		return
	}

	response.Success(w, http.StatusOK, "Request updated successfully", request)
}

func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	if err := h.requestUsecase.DeleteRequest(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete request")
		return
	}

	response.Success(w, http.StatusOK, "Request deleted successfully", nil)
}

func (h *RequestHandler) GetRequestTests(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	tests, err := h.testUsecase.GetTestsByRequest(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get tests")
		return
	}

	response.Success(w, http.StatusOK, "Tests retrieved successfully", tests)
}
