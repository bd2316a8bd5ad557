package handler

import (
	"net/http"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/pagination"
	"hospital-booking-api/pkg/response"
	"hospital-booking-api/pkg/validator"
)

// CatalogHandler serves the name-keyed lookup tables.
type CatalogHandler struct {
	specializationUsecase usecase.SpecializationUsecase
	requestTypeUsecase    usecase.RequestTypeUsecase
	testTypeUsecase       usecase.TestTypeUsecase
	medicineUsecase       usecase.MedicineUsecase
	validator             *validator.CustomValidator
}

func NewCatalogHandler(
	specializationUsecase usecase.SpecializationUsecase,
	requestTypeUsecase usecase.RequestTypeUsecase,
	testTypeUsecase usecase.TestTypeUsecase,
	medicineUsecase usecase.MedicineUsecase,
	validator *validator.CustomValidator,
) *CatalogHandler {
	return &CatalogHandler{
		specializationUsecase: specializationUsecase,
		requestTypeUsecase:    requestTypeUsecase,
		testTypeUsecase:       testTypeUsecase,
		medicineUsecase:       medicineUsecase,
		validator:             validator,
	}
}

func (h *CatalogHandler) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorSpecializationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.specializationUsecase.CreateSpecialization(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create specialization")
		return
	}

	response.Created(w, "Specialization created successfully", item)
}

func (h *CatalogHandler) GetSpecialization(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	item, err := h.specializationUsecase.GetSpecialization(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get specialization")
		return
	}

	response.Success(w, http.StatusOK, "Specialization retrieved successfully", item)
}

func (h *CatalogHandler) GetAllSpecializations(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	items, total, err := h.specializationUsecase.GetAllSpecializations(r.Context(), params)
	if err != nil {
		writeError(w, err, "Failed to get specializations")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Specializations retrieved successfully", items, params.Meta(total))
}

func (h *CatalogHandler) UpdateSpecialization(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	var req dto.DoctorSpecializationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.specializationUsecase.UpdateSpecialization(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update specialization")
		return
	}

	response.Success(w, http.StatusOK, "Specialization updated successfully", item)
}

func (h *CatalogHandler) DeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid specialization ID", nil)
		return
	}

	if err := h.specializationUsecase.DeleteSpecialization(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete specialization")
		return
	}

	response.Success(w, http.StatusOK, "Specialization deleted successfully", nil)
}

func (h *CatalogHandler) CreateRequestType(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.requestTypeUsecase.CreateRequestType(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create request type")
		return
	}

	response.Created(w, "Request type created successfully", item)
}

func (h *CatalogHandler) GetRequestType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid request type ID", nil)
		return
	}

	item, err := h.requestTypeUsecase.GetRequestType(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get request type")
		return
	}

	response.Success(w, http.StatusOK, "Request type retrieved successfully", item)
}

func (h *CatalogHandler) GetAllRequestTypes(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	items, total, err := h.requestTypeUsecase.GetAllRequestTypes(r.Context(), params)
	if err != nil {
		writeError(w, err, "Failed to get request types")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Request types retrieved successfully", items, params.Meta(total))
}

func (h *CatalogHandler) UpdateRequestType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid request type ID", nil)
		return
	}

	var req dto.RequestTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.requestTypeUsecase.UpdateRequestType(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update request type")
		return
	}

	response.Success(w, http.StatusOK, "Request type updated successfully", item)
}

func (h *CatalogHandler) DeleteRequestType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid request type ID", nil)
		return
	}

	if err := h.requestTypeUsecase.DeleteRequestType(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete request type")
		return
	}

	response.Success(w, http.StatusOK, "Request type deleted successfully", nil)
}

func (h *CatalogHandler) CreateTestType(w http.ResponseWriter, r *http.Request) {
	var req dto.TestTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.testTypeUsecase.CreateTestType(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create test type")
		return
	}

	response.Created(w, "Test type created successfully", item)
}

func (h *CatalogHandler) GetTestType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid test type ID", nil)
		return
	}

	item, err := h.testTypeUsecase.GetTestType(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get test type")
		return
	}

	response.Success(w, http.StatusOK, "Test type retrieved successfully", item)
}

func (h *CatalogHandler) GetAllTestTypes(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	items, total, err := h.testTypeUsecase.GetAllTestTypes(r.Context(), params)
	if err != nil {
		writeError(w, err, "Failed to get test types")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Test types retrieved successfully", items, params.Meta(total))
}

func (h *CatalogHandler) UpdateTestType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid test type ID", nil)
		return
	}

	var req dto.TestTypeRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.testTypeUsecase.UpdateTestType(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update test type")
		return
	}

	response.Success(w, http.StatusOK, "Test type updated successfully", item)
}

func (h *CatalogHandler) DeleteTestType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid test type ID", nil)
		return
	}

	if err := h.testTypeUsecase.DeleteTestType(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete test type")
		return
	}

	response.Success(w, http.StatusOK, "Test type deleted successfully", nil)
}

func (h *CatalogHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.MedicineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.medicineUsecase.CreateMedicine(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create medicine")
		return
	}

	response.Created(w, "Medicine created successfully", item)
}

func (h *CatalogHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	item, err := h.medicineUsecase.GetMedicine(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", item)
}

func (h *CatalogHandler) GetAllMedicines(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)

	items, total, err := h.medicineUsecase.GetAllMedicines(r.Context(), params)
	if err != nil {
		writeError(w, err, "Failed to get medicines")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Medicines retrieved successfully", items, params.Meta(total))
}

func (h *CatalogHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	var req dto.MedicineRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.medicineUsecase.UpdateMedicine(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", item)
}

func (h *CatalogHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid medicine ID", nil)
		return
	}

	if err := h.medicineUsecase.DeleteMedicine(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete medicine")
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}
