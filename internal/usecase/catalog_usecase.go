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

// catalog holds the CRUD flow shared by the name-keyed lookup tables
// (specializations, request types, test types, medicines).
type catalog[T any] struct {
	db       *gorm.DB
	log      *logrus.Logger
	repo     repository.CatalogRepository[T]
	notFound error
	idOf     func(*T) int
}

func (c *catalog[T]) create(ctx context.Context, name string, item *T) error {
	tx := c.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := c.repo.FindByName(tx, name)
	if err != nil {
		c.log.Warnf("Failed find catalog entry by name: %+v", err)
		return err
	}
	if existing != nil {
		return ErrNameExists
	}

	if err := c.repo.Create(tx, item); err != nil {
		if isDuplicateKeyError(err, "name") {
			return ErrNameExists
		}
		c.log.Warnf("Failed create catalog entry: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		c.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (c *catalog[T]) get(ctx context.Context, id int) (*T, error) {
	item, err := c.repo.FindByID(c.db.WithContext(ctx), id)
	if err != nil {
		c.log.Warnf("Failed find catalog entry: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, c.notFound
	}
	return item, nil
}

func (c *catalog[T]) list(ctx context.Context, params pagination.Params) ([]T, int64, error) {
	items, total, err := c.repo.FindAll(c.db.WithContext(ctx), params.Limit, params.Offset())
	if err != nil {
		c.log.Warnf("Failed find all catalog entries: %+v", err)
		return nil, 0, err
	}
	return items, total, nil
}

// update loads the entry, lets apply overwrite its fields and saves it.
// name is the new name and is checked against other entries.
func (c *catalog[T]) update(ctx context.Context, id int, name string, apply func(*T)) (*T, error) {
	tx := c.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := c.repo.FindByID(tx, id)
	if err != nil {
		c.log.Warnf("Failed find catalog entry: %+v", err)
		return nil, err
	}
	if item == nil {
		return nil, c.notFound
	}

	other, err := c.repo.FindByName(tx, name)
	if err != nil {
		c.log.Warnf("Failed find catalog entry by name: %+v", err)
		return nil, err
	}
	if other != nil && c.idOf(other) != id {
		return nil, ErrNameExists
	}

	apply(item)
	if err := c.repo.Update(tx, item); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrNameExists
		}
		c.log.Warnf("Failed update catalog entry: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		c.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return item, nil
}

func (c *catalog[T]) delete(ctx context.Context, id int) error {
	rows, err := c.repo.Delete(c.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return ErrStillReferenced
		}
		c.log.Warnf("Failed delete catalog entry: %+v", err)
		return err
	}
	if rows == 0 {
		return c.notFound
	}
	return nil
}

// Doctor specializations

type SpecializationUsecase interface {
	CreateSpecialization(ctx context.Context, req *dto.DoctorSpecializationRequest) (*dto.DoctorSpecializationResponse, error)
	GetSpecialization(ctx context.Context, id int) (*dto.DoctorSpecializationResponse, error)
	GetAllSpecializations(ctx context.Context, params pagination.Params) ([]dto.DoctorSpecializationResponse, int64, error)
	UpdateSpecialization(ctx context.Context, id int, req *dto.DoctorSpecializationRequest) (*dto.DoctorSpecializationResponse, error)
	DeleteSpecialization(ctx context.Context, id int) error
}

type specializationUsecase struct {
	catalog catalog[entity.DoctorSpecialization]
}

func NewSpecializationUsecase(db *gorm.DB, log *logrus.Logger, repo repository.DoctorSpecializationRepository) SpecializationUsecase {
	return &specializationUsecase{catalog: catalog[entity.DoctorSpecialization]{
		db:       db,
		log:      log,
		repo:     repo,
		notFound: ErrSpecializationNotFound,
		idOf:     func(s *entity.DoctorSpecialization) int { return s.ID },
	}}
}

func (u *specializationUsecase) CreateSpecialization(ctx context.Context, req *dto.DoctorSpecializationRequest) (*dto.DoctorSpecializationResponse, error) {
	specialization := &entity.DoctorSpecialization{Name: req.Name}
	if err := u.catalog.create(ctx, req.Name, specialization); err != nil {
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) GetSpecialization(ctx context.Context, id int) (*dto.DoctorSpecializationResponse, error) {
	specialization, err := u.catalog.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) GetAllSpecializations(ctx context.Context, params pagination.Params) ([]dto.DoctorSpecializationResponse, int64, error) {
	specializations, total, err := u.catalog.list(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return converter.SpecializationsToResponses(specializations), total, nil
}

func (u *specializationUsecase) UpdateSpecialization(ctx context.Context, id int, req *dto.DoctorSpecializationRequest) (*dto.DoctorSpecializationResponse, error) {
	specialization, err := u.catalog.update(ctx, id, req.Name, func(s *entity.DoctorSpecialization) {
		s.Name = req.Name
	})
	if err != nil {
		return nil, err
	}
	return converter.SpecializationToResponse(specialization), nil
}

func (u *specializationUsecase) DeleteSpecialization(ctx context.Context, id int) error {
	return u.catalog.delete(ctx, id)
}

// Request types

type RequestTypeUsecase interface {
	CreateRequestType(ctx context.Context, req *dto.RequestTypeRequest) (*dto.RequestTypeResponse, error)
	GetRequestType(ctx context.Context, id int) (*dto.RequestTypeResponse, error)
	GetAllRequestTypes(ctx context.Context, params pagination.Params) ([]dto.RequestTypeResponse, int64, error)
	UpdateRequestType(ctx context.Context, id int, req *dto.RequestTypeRequest) (*dto.RequestTypeResponse, error)
	DeleteRequestType(ctx context.Context, id int) error
}

type requestTypeUsecase struct {
	catalog catalog[entity.RequestType]
}

func NewRequestTypeUsecase(db *gorm.DB, log *logrus.Logger, repo repository.RequestTypeRepository) RequestTypeUsecase {
	return &requestTypeUsecase{catalog: catalog[entity.RequestType]{
		db:       db,
		log:      log,
		repo:     repo,
		notFound: ErrRequestTypeNotFound,
		idOf:     func(t *entity.RequestType) int { return t.ID },
	}}
}

func (u *requestTypeUsecase) CreateRequestType(ctx context.Context, req *dto.RequestTypeRequest) (*dto.RequestTypeResponse, error) {
	requestType := &entity.RequestType{
		Name:        req.Name,
		Description: req.Description,
		Length:      req.Length,
	}
	if err := u.catalog.create(ctx, req.Name, requestType); err != nil {
		return nil, err
	}
	return converter.RequestTypeToResponse(requestType), nil
}

func (u *requestTypeUsecase) GetRequestType(ctx context.Context, id int) (*dto.RequestTypeResponse, error) {
	requestType, err := u.catalog.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.RequestTypeToResponse(requestType), nil
}

func (u *requestTypeUsecase) GetAllRequestTypes(ctx context.Context, params pagination.Params) ([]dto.RequestTypeResponse, int64, error) {
	requestTypes, total, err := u.catalog.list(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return converter.RequestTypesToResponses(requestTypes), total, nil
}

func (u *requestTypeUsecase) UpdateRequestType(ctx context.Context, id int, req *dto.RequestTypeRequest) (*dto.RequestTypeResponse, error) {
	requestType, err := u.catalog.update(ctx, id, req.Name, func(t *entity.RequestType) {
		t.Name = req.Name
		t.Description = req.Description
		t.Length = req.Length
	})
	if err != nil {
		return nil, err
	}
	return converter.RequestTypeToResponse(requestType), nil
}

func (u *requestTypeUsecase) DeleteRequestType(ctx context.Context, id int) error {
	return u.catalog.delete(ctx, id)
}

// Test types

type TestTypeUsecase interface {
	CreateTestType(ctx context.Context, req *dto.TestTypeRequest) (*dto.TestTypeResponse, error)
	GetTestType(ctx context.Context, id int) (*dto.TestTypeResponse, error)
	GetAllTestTypes(ctx context.Context, params pagination.Params) ([]dto.TestTypeResponse, int64, error)
	UpdateTestType(ctx context.Context, id int, req *dto.TestTypeRequest) (*dto.TestTypeResponse, error)
	DeleteTestType(ctx context.Context, id int) error
}

type testTypeUsecase struct {
	catalog catalog[entity.TestType]
}

func NewTestTypeUsecase(db *gorm.DB, log *logrus.Logger, repo repository.TestTypeRepository) TestTypeUsecase {
	return &testTypeUsecase{catalog: catalog[entity.TestType]{
		db:       db,
		log:      log,
		repo:     repo,
		notFound: ErrTestTypeNotFound,
		idOf:     func(t *entity.TestType) int { return t.ID },
	}}
}

func (u *testTypeUsecase) CreateTestType(ctx context.Context, req *dto.TestTypeRequest) (*dto.TestTypeResponse, error) {
	testType := &entity.TestType{Name: req.Name, Description: req.Description}
	if err := u.catalog.create(ctx, req.Name, testType); err != nil {
		return nil, err
	}
	return converter.TestTypeToResponse(testType), nil
}

func (u *testTypeUsecase) GetTestType(ctx context.Context, id int) (*dto.TestTypeResponse, error) {
	testType, err := u.catalog.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.TestTypeToResponse(testType), nil
}

func (u *testTypeUsecase) GetAllTestTypes(ctx context.Context, params pagination.Params) ([]dto.TestTypeResponse, int64, error) {
	testTypes, total, err := u.catalog.list(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return converter.TestTypesToResponses(testTypes), total, nil
}

func (u *testTypeUsecase) UpdateTestType(ctx context.Context, id int, req *dto.TestTypeRequest) (*dto.TestTypeResponse, error) {
	testType, err := u.catalog.update(ctx, id, req.Name, func(t *entity.TestType) {
		t.Name = req.Name
		t.Description = req.Description
	})
	if err != nil {
		return nil, err
	}
	return converter.TestTypeToResponse(testType), nil
}

func (u *testTypeUsecase) DeleteTestType(ctx context.Context, id int) error {
	return u.catalog.delete(ctx, id)
}

// Medicines

type MedicineUsecase interface {
	CreateMedicine(ctx context.Context, req *dto.MedicineRequest) (*dto.MedicineResponse, error)
	GetMedicine(ctx context.Context, id int) (*dto.MedicineResponse, error)
	GetAllMedicines(ctx context.Context, params pagination.Params) ([]dto.MedicineResponse, int64, error)
	UpdateMedicine(ctx context.Context, id int, req *dto.MedicineRequest) (*dto.MedicineResponse, error)
	DeleteMedicine(ctx context.Context, id int) error
}

type medicineUsecase struct {
	catalog catalog[entity.Medicine]
}

func NewMedicineUsecase(db *gorm.DB, log *logrus.Logger, repo repository.MedicineRepository) MedicineUsecase {
	return &medicineUsecase{catalog: catalog[entity.Medicine]{
		db:       db,
		log:      log,
		repo:     repo,
		notFound: ErrMedicineNotFound,
		idOf:     func(m *entity.Medicine) int { return m.ID },
	}}
}

func (u *medicineUsecase) CreateMedicine(ctx context.Context, req *dto.MedicineRequest) (*dto.MedicineResponse, error) {
	medicine := &entity.Medicine{Name: req.Name, Description: req.Description}
	if err := u.catalog.create(ctx, req.Name, medicine); err != nil {
		return nil, err
	}
	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetMedicine(ctx context.Context, id int) (*dto.MedicineResponse, error) {
	medicine, err := u.catalog.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetAllMedicines(ctx context.Context, params pagination.Params) ([]dto.MedicineResponse, int64, error) {
	medicines, total, err := u.catalog.list(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return converter.MedicinesToResponses(medicines), total, nil
}

func (u *medicineUsecase) UpdateMedicine(ctx context.Context, id int, req *dto.MedicineRequest) (*dto.MedicineResponse, error) {
	medicine, err := u.catalog.update(ctx, id, req.Name, func(m *entity.Medicine) {
		m.Name = req.Name
		m.Description = req.Description
	})
	if err != nil {
		return nil, err
	}
	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) DeleteMedicine(ctx context.Context, id int) error {
	return u.catalog.delete(ctx, id)
}
