package usecase

import (
	"context"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TestUsecase interface {
	CreateTest(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error)
	GetTest(ctx context.Context, id int) (*dto.TestResponse, error)
	GetAllTests(ctx context.Context, params pagination.Params) ([]dto.TestResponse, int64, error)
	GetTestsByRequest(ctx context.Context, requestID int) ([]dto.TestResponse, error)
	UpdateTest(ctx context.Context, id int, req *dto.UpdateTestRequest) (*dto.TestResponse, error)
	DeleteTest(ctx context.Context, id int) error
}

type testUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	testRepo     repository.TestRepository
	testTypeRepo repository.TestTypeRepository
	requestRepo  repository.RequestRepository
}

func NewTestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	testRepo repository.TestRepository,
	testTypeRepo repository.TestTypeRepository,
	requestRepo repository.RequestRepository,
) TestUsecase {
	return &testUsecase{
		db:           db,
		log:          log,
		testRepo:     testRepo,
		testTypeRepo: testTypeRepo,
		requestRepo:  requestRepo,
	}
}

func (u *testUsecase) CreateTest(ctx context.Context, req *dto.CreateTestRequest) (*dto.TestResponse, error) {
	state := entity.TestStateOrdered
	if req.State != "" {
		state = entity.TestState(req.State)
	}
	if !state.IsValid() {
		return nil, ErrInvalidTestState
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := ensureExists[entity.Request](tx, u.requestRepo, req.RequestID, ErrRequestNotFound); err != nil {
		return nil, err
	}
	if err := ensureExists[entity.TestType](tx, u.testTypeRepo, req.TestTypeID, ErrTestTypeNotFound); err != nil {
		return nil, err
	}

	test := &entity.Test{
		TestDate:   req.TestDate.UTC(),
		Results:    req.Results,
		State:      state,
		TestTypeID: req.TestTypeID,
		RequestID:  req.RequestID,
	}
	if err := u.testRepo.Create(tx, test); err != nil {
		u.log.Warnf("Failed create test: %+v", err)
		return nil, err
	}

	created, err := u.testRepo.FindByID(tx, test.ID)
	if err != nil {
		u.log.Warnf("Failed find test: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TestToResponse(created), nil
}

func (u *testUsecase) GetTest(ctx context.Context, id int) (*dto.TestResponse, error) {
	test, err := u.testRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed find test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	return converter.TestToResponse(test), nil
}

func (u *testUsecase) GetAllTests(ctx context.Context, params pagination.Params) ([]dto.TestResponse, int64, error) {
	tests, total, err := u.testRepo.FindAll(u.db.WithContext(ctx), params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed find all tests: %+v", err)
		return nil, 0, err
	}

	return converter.TestsToResponses(tests), total, nil
}

func (u *testUsecase) GetTestsByRequest(ctx context.Context, requestID int) ([]dto.TestResponse, error) {
	db := u.db.WithContext(ctx)

	if err := ensureExists[entity.Request](db, u.requestRepo, requestID, ErrRequestNotFound); err != nil {
		return nil, err
	}

	tests, err := u.testRepo.FindByRequestID(db, requestID)
	if err != nil {
		u.log.Warnf("Failed find tests by request: %+v", err)
		return nil, err
	}

	return converter.TestsToResponses(tests), nil
}

func (u *testUsecase) UpdateTest(ctx context.Context, id int, req *dto.UpdateTestRequest) (*dto.TestResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	test, err := u.testRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find test: %+v", err)
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	if req.State != "" {
		state := entity.TestState(req.State)
		if !state.IsValid() {
			return nil, ErrInvalidTestState
		}
		test.State = state
	}
	if req.TestTypeID != nil {
		if err := ensureExists[entity.TestType](tx, u.testTypeRepo, *req.TestTypeID, ErrTestTypeNotFound); err != nil {
			return nil, err
		}
		test.TestTypeID = *req.TestTypeID
		test.TestType = nil
	}
	if req.TestDate != nil {
		test.TestDate = req.TestDate.UTC()
	}
	if req.Results != nil {
		test.Results = *req.Results
	}

	if err := u.testRepo.Update(tx, test); err != nil {
		u.log.Warnf("Failed update test: %+v", err)
		return nil, err
	}

	updated, err := u.testRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed find test: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TestToResponse(updated), nil
}

func (u *testUsecase) DeleteTest(ctx context.Context, id int) error {
	rows, err := u.testRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed delete test: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrTestNotFound
	}

	return nil
}
