package dto

import "time"

// Request DTOs

type CreateTestRequest struct {
	TestDate   time.Time `json:"test_date" validate:"required"`
	Results    string    `json:"results" validate:"max=512"`
	State      string    `json:"state" validate:"omitempty,oneof=ordered in_progress completed cancelled"`
	TestTypeID int       `json:"test_type_id" validate:"required,gt=0"`
	RequestID  int       `json:"request_id" validate:"required,gt=0"`
}

type UpdateTestRequest struct {
	TestDate   *time.Time `json:"test_date"`
	Results    *string    `json:"results" validate:"omitempty,max=512"`
	State      string     `json:"state" validate:"omitempty,oneof=ordered in_progress completed cancelled"`
	TestTypeID *int       `json:"test_type_id" validate:"omitempty,gt=0"`
}

type TestTypeRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

// Response DTOs

type TestResponse struct {
	ID         int               `json:"id"`
	TestDate   time.Time         `json:"test_date"`
	Results    string            `json:"results"`
	State      string            `json:"state"`
	CreatedAt  time.Time         `json:"created_at"`
	TestTypeID int               `json:"test_type_id"`
	RequestID  int               `json:"request_id"`
	TestType   *TestTypeResponse `json:"test_type,omitempty"`
}

type TestTypeResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
