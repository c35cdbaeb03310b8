package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carcatalog-api/models"
	"carcatalog-api/repositories"
)

// testEnv bundles the full service stack over an isolated in-memory
// database.
type testEnv struct {
	db         *gorm.DB
	makes      *MakeService
	modelsSvc  *ModelService
	categories *CategoryService
	cars       *CarService
	importSvc  *ImportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// A named shared-cache memory database keeps the schema visible
	// across pooled connections while staying private to this test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Make{},
		&models.Model{},
		&models.Category{},
		&models.Car{},
	))

	log := zap.NewNop()
	makes := NewMakeService(repositories.NewMakeRepository(db), log)
	modelsSvc := NewModelService(repositories.NewModelRepository(db), log)
	categories := NewCategoryService(repositories.NewCategoryRepository(db), log)
	carRepo := repositories.NewCarRepository(db)
	cars := NewCarService(carRepo, makes, modelsSvc, categories, log)
	importSvc := NewImportService(carRepo, makes, modelsSvc, categories, log)

	return &testEnv{
		db:         db,
		makes:      makes,
		modelsSvc:  modelsSvc,
		categories: categories,
		cars:       cars,
		importSvc:  importSvc,
	}
}

func (e *testEnv) createCar(t *testing.T, make, model, category string, year int) CarDTO {
	t.Helper()
	car, err := e.cars.CreateCar(CreateCarInput{
		Make:     make,
		Model:    model,
		Category: category,
		Year:     year,
	})
	require.NoError(t, err)
	return car
}
