package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

func TestToResponse(test *entity.Test) *dto.TestResponse {
	if test == nil {
		return nil
	}
	return &dto.TestResponse{
		ID:         test.ID,
		TestDate:   test.TestDate,
		Results:    test.Results,
		State:      string(test.State),
		CreatedAt:  test.CreatedAt,
		TestTypeID: test.TestTypeID,
		RequestID:  test.RequestID,
		TestType:   TestTypeToResponse(test.TestType),
	}
}

func TestsToResponses(tests []entity.Test) []dto.TestResponse {
	responses := make([]dto.TestResponse, len(tests))
	for i := range tests {
		responses[i] = *TestToResponse(&tests[i])
	}
	return responses
}

func TestTypeToResponse(testType *entity.TestType) *dto.TestTypeResponse {
	if testType == nil {
		return nil
	}
	return &dto.TestTypeResponse{
		ID:          testType.ID,
		Name:        testType.Name,
		Description: testType.Description,
	}
}

func TestTypesToResponses(testTypes []entity.TestType) []dto.TestTypeResponse {
	responses := make([]dto.TestTypeResponse, len(testTypes))
	for i := range testTypes {
		responses[i] = *TestTypeToResponse(&testTypes[i])
	}
	return responses
}
