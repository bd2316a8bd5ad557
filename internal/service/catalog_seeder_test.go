package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `
specializations:
  - name: Cardiology
  - name: Neurology
request_types:
  - name: Consultation
    description: First visit
    length: 30
test_types:
  - name: Blood count
    description: Complete blood count
medicines:
  - name: Ibuprofen
    description: 400 mg tablets
`

func newSeeder(t *testing.T) (CatalogSeeder, func() *entity.RequestType) {
	db := testutil.NewDB(t)
	seeder := NewCatalogSeeder(db, testutil.NewLogger(),
		repository.NewDoctorSpecializationRepository(),
		repository.NewRequestTypeRepository(),
		repository.NewTestTypeRepository(),
		repository.NewMedicineRepository(),
	)
	findConsultation := func() *entity.RequestType {
		rt, err := repository.NewRequestTypeRepository().FindByName(db, "Consultation")
		require.NoError(t, err)
		return rt
	}
	return seeder, findConsultation
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Len(t, catalog.Specializations, 2)
	require.Len(t, catalog.RequestTypes, 1)
	assert.Equal(t, 30, catalog.RequestTypes[0].Length)
	assert.Equal(t, "Complete blood count", catalog.TestTypes[0].Description)
}

func TestLoadCatalog_Errors(t *testing.T) {
	_, err := LoadCatalog("")
	assert.Error(t, err)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseCatalog_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":          "{}",
		"blank name":     "medicines:\n  - description: nameless\n",
		"duplicate":      "test_types:\n  - name: X-ray\n  - name: X-ray\n",
		"negative":       "request_types:\n  - name: Checkup\n    length: -5\n",
		"malformed yaml": "specializations: [",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestCatalogSeeder_SeedIsIdempotent(t *testing.T) {
	seeder, findConsultation := newSeeder(t)
	catalog, err := ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)

	result, err := seeder.Seed(context.Background(), catalog)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Created)
	assert.Equal(t, 0, result.Updated)

	result, err = seeder.Seed(context.Background(), catalog)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Updated)

	catalog.RequestTypes[0].Length = 45
	result, err = seeder.Seed(context.Background(), catalog)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)

	consultation := findConsultation()
	require.NotNil(t, consultation)
	assert.Equal(t, 45, consultation.Length)
}
