package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"carcatalog-api/models"
	"carcatalog-api/repositories"
)

// ImportService loads the bundled catalog file into an empty database.
// Expected columns: objectId, Make, Year, Model, Category.
type ImportService struct {
	cars       *repositories.CarRepository
	makes      *MakeService
	modelsSvc  *ModelService
	categories *CategoryService
	logger     *zap.Logger
}

func NewImportService(
	cars *repositories.CarRepository,
	makes *MakeService,
	modelsSvc *ModelService,
	categories *CategoryService,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		cars:       cars,
		makes:      makes,
		modelsSvc:  modelsSvc,
		categories: categories,
		logger:     logger,
	}
}

// Run imports the CSV file at path when every table is empty. A
// non-empty database skips the import entirely.
func (s *ImportService) Run(path string) error {
	empty, err := s.databaseEmpty()
	if err != nil {
		return err
	}
	if !empty {
		s.logger.Info("data import skipped, database is not empty")
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	imported, err := s.importRecords(file)
	if err != nil {
		return err
	}

	s.logger.Info("data import finished", zap.Int("cars", imported))
	return nil
}

func (s *ImportService) databaseEmpty() (bool, error) {
	counts := []func() (int64, error){
		s.cars.Count,
		s.makes.repo.Count,
		s.modelsSvc.repo.Count,
		s.categories.repo.Count,
	}
	for _, count := range counts {
		n, err := count()
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

func (s *ImportService) importRecords(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Header row: objectId, Make, Year, Model, Category.
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	imported := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("failed to read CSV record: %w", err)
		}

		if !validRecord(record) {
			s.logger.Warn("skipping empty or malformed record", zap.Strings("record", record))
			continue
		}

		if err := s.importRecord(record); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func (s *ImportService) importRecord(record []string) error {
	objectID := record[0]
	year, err := strconv.Atoi(record[2])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", record[2], err)
	}

	make, err := s.makes.FindByNameOrCreate(record[1])
	if err != nil {
		return err
	}
	model, err := s.modelsSvc.FindByNameOrCreate(record[3])
	if err != nil {
		return err
	}
	category, err := s.categories.FindByNameOrCreate(record[4])
	if err != nil {
		return err
	}

	return s.cars.Create(&models.Car{
		MakeID:     make.ID,
		ModelID:    model.ID,
		CategoryID: category.ID,
		Year:       year,
		ObjectID:   objectID,
	})
}

func validRecord(record []string) bool {
	if len(record) < 5 {
		return false
	}
	for _, field := range record[:5] {
		if field == "" {
			return false
		}
	}
	return true
}
