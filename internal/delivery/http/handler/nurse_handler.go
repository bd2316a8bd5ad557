package handler

import (
	"net/http"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/pagination"
	"hospital-booking-api/pkg/response"
	"hospital-booking-api/pkg/validator"
)

type NurseHandler struct {
	nurseUsecase usecase.NurseUsecase
	validator    *validator.CustomValidator
}

func NewNurseHandler(nurseUsecase usecase.NurseUsecase, validator *validator.CustomValidator) *NurseHandler {
	return &NurseHandler{
		nurseUsecase: nurseUsecase,
		validator:    validator,
	}
}

func (h *NurseHandler) CreateNurse(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNurseRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	nurse, err := h.nurseUsecase.CreateNurse(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create nurse")
		return
	}

	response.Created(w, "Nurse created successfully", nurse)
}

func (h *NurseHandler) GetNurse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid nurse ID", nil)
		return
	}

	nurse, err := h.nurseUsecase.GetNurse(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get nurse")
		return
	}

	response.Success(w, http.StatusOK, "Nurse retrieved successfully", nurse)
}

func (h *NurseHandler) GetAllNurses(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	nurses, total, err := h.nurseUsecase.GetAllNurses(r.Context(), params)
	if err != nil {
		writeError(w, err, "Failed to get nurses")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Nurses retrieved successfully", nurses, params.Meta(total))
}

func (h *NurseHandler) UpdateNurse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid nurse ID", nil)
		return
	}

	var req dto.UpdateNurseRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	nurse, err := h.nurseUsecase.UpdateNurse(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update nurse")
		return
	}

	response.Success(w, http.StatusOK, "Nurse updated successfully", nurse)
}

func (h *NurseHandler) DeleteNurse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid nurse ID", nil)
		return
	}

	if err := h.nurseUsecase.DeleteNurse(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete nurse")
		return
	}

	response.Success(w, http.StatusOK, "Nurse deleted successfully", nil)
}
