package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

func RequestToResponse(request *entity.Request) *dto.RequestResponse {
	if request == nil {
		return nil
	}
	return &dto.RequestResponse{
		ID:            request.ID,
		State:         string(request.State),
		Description:   request.Description,
		CreatedAt:     request.CreatedAt,
		PatientID:     request.PatientID,
		DoctorID:      request.DoctorID,
		NurseID:       request.NurseID,
		AppointmentID: request.AppointmentID,
		RequestTypeID: request.RequestTypeID,
		RequestType:   RequestTypeToResponse(request.RequestType),
	}
}

func RequestsToResponses(requests []entity.Request) []dto.RequestResponse {
	responses := make([]dto.RequestResponse, len(requests))
	for i := range requests {
		responses[i] = *RequestToResponse(&requests[i])
	}
	return responses
}

func RequestTypeToResponse(requestType *entity.RequestType) *dto.RequestTypeResponse {
	if requestType == nil {
		return nil
	}
	return &dto.RequestTypeResponse{
		ID:          requestType.ID,
		Name:        requestType.Name,
		Description: requestType.Description,
		Length:      requestType.Length,
	}
}

func RequestTypesToResponses(requestTypes []entity.RequestType) []dto.RequestTypeResponse {
	responses := make([]dto.RequestTypeResponse, len(requestTypes))
	for i := range requestTypes {
		responses[i] = *RequestTypeToResponse(&requestTypes[i])
	}
	return responses
}
