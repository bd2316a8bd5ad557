package handler

import (
	"net/http"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/pagination"
	"hospital-booking-api/pkg/response"
	"hospital-booking-api/pkg/validator"
)

type TestHandler struct {
	testUsecase usecase.TestUsecase
	validator   *validator.CustomValidator
}

func NewTestHandler(testUsecase usecase.TestUsecase, validator *validator.CustomValidator) *TestHandler {
	return &TestHandler{
		testUsecase: testUsecase,
		validator:   validator,
	}
}

func (h *TestHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	test, err := h.testUsecase.CreateTest(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create test")
		return
	}

	response.Created(w, "Test created successfully", test)
}

func (h *TestHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	test, err := h.testUsecase.GetTest(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get test")
		return
	}

	response.Success(w, http.StatusOK, "Test retrieved successfully", test)
}

func (h *TestHandler) GetAllTests(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	tests, total, err := h.testUsecase.GetAllTests(r.Context(), params)
	if err != nil {
		writeError(w, err, "Failed to get tests")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Tests retrieved successfully", tests, params.Meta(total))
}

func (h *TestHandler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	var req dto.UpdateTestRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	test, err := h.testUsecase.UpdateTest(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update test")
		return
	}

	response.Success(w, http.StatusOK, "Test updated successfully", test)
}

func (h *TestHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid test ID", nil)
		return
	}

	if err := h.testUsecase.DeleteTest(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete test")
		return
	}

	response.Success(w, http.StatusOK, "Test deleted successfully", nil)
}
