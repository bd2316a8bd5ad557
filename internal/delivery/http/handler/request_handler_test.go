package handler

import (
	"context"
	"net/http"
	"testing"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/pagination"
	"hospital-booking-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestUsecase struct {
	usecase.RequestUsecase
	updatedID int
	update    *dto.UpdateRequestRequest
	params    pagination.Params
	err       error
}

func (f *fakeRequestUsecase) UpdateRequest(ctx context.Context, id int, req *dto.UpdateRequestRequest) (*dto.RequestResponse, error) {
	f.updatedID = id
	f.update = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.RequestResponse{ID: id, State: *req.State}, nil
}

func (f *fakeRequestUsecase) GetAllRequests(ctx context.Context, params pagination.Params) ([]dto.RequestResponse, int64, error) {
	f.params = params
	return []dto.RequestResponse{{ID: 1}}, 41, nil
}

func newRequestRouter(requests *fakeRequestUsecase) *mux.Router {
	h := NewRequestHandler(requests, nil, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/requests", h.GetAllRequests).Methods(http.MethodGet)
	r.HandleFunc("/requests/{id}", h.UpdateRequest).Methods(http.MethodPut)
	return r
}

func TestUpdateRequest_State(t *testing.T) {
	requests := &fakeRequestUsecase{}
	rec, resp := doRequest(t, newRequestRouter(requests), http.MethodPut, "/requests/5", `{"state":"approved"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, 5, requests.updatedID)
	require.NotNil(t, requests.update.State)
	assert.Equal(t, "approved", *requests.update.State)
}

func TestUpdateRequest_StateOutsideWhitelist(t *testing.T) {
	requests := &fakeRequestUsecase{}
	rec, resp := doRequest(t, newRequestRouter(requests), http.MethodPut, "/requests/5", `{"state":"archived"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Zero(t, requests.updatedID)
}

func TestUpdateRequest_InvalidID(t *testing.T) {
	rec, resp := doRequest(t, newRequestRouter(&fakeRequestUsecase{}), http.MethodPut, "/requests/abc", `{"state":"approved"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request ID", resp.Message)
}

func TestUpdateRequest_NotFound(t *testing.T) {
	requests := &fakeRequestUsecase{err: usecase.ErrRequestNotFound}
	rec, _ := doRequest(t, newRequestRouter(requests), http.MethodPut, "/requests/5", `{"state":"approved"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllRequests_PaginationMeta(t *testing.T) {
	requests := &fakeRequestUsecase{}
	rec, resp := doRequest(t, newRequestRouter(requests), http.MethodGet, "/requests?page=3&limit=20", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pagination.Params{Page: 3, Limit: 20}, requests.params)
	require.NotNil(t, resp.Meta)
	assert.EqualValues(t, 41, resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
