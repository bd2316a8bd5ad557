package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Catalog is the reference data loaded from a YAML file by the seed command.
type Catalog struct {
	Specializations []CatalogEntry     `yaml:"specializations"`
	RequestTypes    []RequestTypeEntry `yaml:"request_types"`
	TestTypes       []CatalogEntry     `yaml:"test_types"`
	Medicines       []CatalogEntry     `yaml:"medicines"`
}

type CatalogEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type RequestTypeEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Length      int    `yaml:"length"`
}

// SeedResult counts rows touched per run.
type SeedResult struct {
	Created int
	Updated int
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return nil, errors.New("catalog path is empty")
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(content)
}

func ParseCatalog(content []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(content, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Validate rejects empty catalogs, blank names and duplicate names within a section.
func (c *Catalog) Validate() error {
	if len(c.Specializations)+len(c.RequestTypes)+len(c.TestTypes)+len(c.Medicines) == 0 {
		return errors.New("catalog is empty")
	}

	sections := map[string][]string{
		"specializations": entryNames(c.Specializations),
		"test_types":      entryNames(c.TestTypes),
		"medicines":       entryNames(c.Medicines),
	}
	requestTypeNames := make([]string, len(c.RequestTypes))
	for i, rt := range c.RequestTypes {
		if rt.Length < 0 {
			return fmt.Errorf("request_types: %q has negative length", rt.Name)
		}
		requestTypeNames[i] = rt.Name
	}
	sections["request_types"] = requestTypeNames

	for section, names := range sections {
		seen := make(map[string]bool, len(names))
		for _, name := range names {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("%s: entry without a name", section)
			}
			if seen[name] {
				return fmt.Errorf("%s: duplicate name %q", section, name)
			}
			seen[name] = true
		}
	}
	return nil
}

func entryNames(entries []CatalogEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

type CatalogSeeder interface {
	Seed(ctx context.Context, catalog *Catalog) (*SeedResult, error)
}

type catalogSeeder struct {
	db                 *gorm.DB
	log                *logrus.Logger
	specializationRepo repository.DoctorSpecializationRepository
	requestTypeRepo    repository.RequestTypeRepository
	testTypeRepo       repository.TestTypeRepository
	medicineRepo       repository.MedicineRepository
}

func NewCatalogSeeder(
	db *gorm.DB,
	log *logrus.Logger,
	specializationRepo repository.DoctorSpecializationRepository,
	requestTypeRepo repository.RequestTypeRepository,
	testTypeRepo repository.TestTypeRepository,
	medicineRepo repository.MedicineRepository,
) CatalogSeeder {
	return &catalogSeeder{
		db:                 db,
		log:                log,
		specializationRepo: specializationRepo,
		requestTypeRepo:    requestTypeRepo,
		testTypeRepo:       testTypeRepo,
		medicineRepo:       medicineRepo,
	}
}

// Seed upserts every entry by name in a single transaction.
func (s *catalogSeeder) Seed(ctx context.Context, catalog *Catalog) (*SeedResult, error) {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result := &SeedResult{}

	for _, e := range catalog.Specializations {
		existing, err := s.specializationRepo.FindByName(tx, e.Name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			if err := s.specializationRepo.Create(tx, &entity.DoctorSpecialization{Name: e.Name}); err != nil {
				return nil, fmt.Errorf("create specialization %q: %w", e.Name, err)
			}
			result.Created++
		}
	}

	for _, e := range catalog.RequestTypes {
		existing, err := s.requestTypeRepo.FindByName(tx, e.Name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			if err := s.requestTypeRepo.Create(tx, &entity.RequestType{Name: e.Name, Description: e.Description, Length: e.Length}); err != nil {
				return nil, fmt.Errorf("create request type %q: %w", e.Name, err)
			}
			result.Created++
			continue
		}
		if existing.Description != e.Description || existing.Length != e.Length {
			existing.Description = e.Description
			existing.Length = e.Length
			if err := s.requestTypeRepo.Update(tx, existing); err != nil {
				return nil, fmt.Errorf("update request type %q: %w", e.Name, err)
			}
			result.Updated++
		}
	}

	for _, e := range catalog.TestTypes {
		existing, err := s.testTypeRepo.FindByName(tx, e.Name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			if err := s.testTypeRepo.Create(tx, &entity.TestType{Name: e.Name, Description: e.Description}); err != nil {
				return nil, fmt.Errorf("create test type %q: %w", e.Name, err)
			}
			result.Created++
			continue
		}
		if existing.Description != e.Description {
			existing.Description = e.Description
			if err := s.testTypeRepo.Update(tx, existing); err != nil {
				return nil, fmt.Errorf("update test type %q: %w", e.Name, err)
			}
			result.Updated++
		}
	}

	for _, e := range catalog.Medicines {
		existing, err := s.medicineRepo.FindByName(tx, e.Name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			if err := s.medicineRepo.Create(tx, &entity.Medicine{Name: e.Name, Description: e.Description}); err != nil {
				return nil, fmt.Errorf("create medicine %q: %w", e.Name, err)
			}
			result.Created++
			continue
		}
		if existing.Description != e.Description {
			existing.Description = e.Description
			if err := s.medicineRepo.Update(tx, existing); err != nil {
				return nil, fmt.Errorf("update medicine %q: %w", e.Name, err)
			}
			result.Updated++
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"created": result.Created,
		"updated": result.Updated,
	}).Info("Catalog seeded")

	return result, nil
}
