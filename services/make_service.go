package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"carcatalog-api/models"
	"carcatalog-api/repositories"
)

// MakeService owns the make name registry: every distinct make name
// maps to exactly one row.
type MakeService struct {
	repo   *repositories.MakeRepository
	logger *zap.Logger
}

func NewMakeService(repo *repositories.MakeRepository, logger *zap.Logger) *MakeService {
	return &MakeService{repo: repo, logger: logger}
}

func (s *MakeService) FindByID(id uint) (*models.Make, error) {
	make, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("make not found", zap.Uint("id", id))
		return nil, err
	}
	return make, nil
}

// FindByNameOrCreate returns the make with this exact name, creating
// it first if absent. A concurrent first-creation race surfaces as the
// storage-level unique constraint error.
func (s *MakeService) FindByNameOrCreate(name string) (*models.Make, error) {
	make, err := s.repo.FindByName(name)
	if err == nil {
		return make, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	make = &models.Make{Name: name}
	if err := s.repo.Create(make); err != nil {
		return nil, err
	}
	s.logger.Info("created make", zap.String("name", name))
	return make, nil
}

// Create registers a new make name, rejecting duplicates.
func (s *MakeService) Create(name string) (*models.Make, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: make name is required", repositories.ErrInvalidArgument)
	}

	exists, err := s.repo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("make already exists", zap.String("name", name))
		return nil, fmt.Errorf("%w: make %q", repositories.ErrDuplicateName, name)
	}

	make := &models.Make{Name: name}
	if err := s.repo.Create(make); err != nil {
		return nil, err
	}
	return make, nil
}

func (s *MakeService) Update(id uint, name string) (*models.Make, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: make name is required", repositories.ErrInvalidArgument)
	}

	make, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("make not found", zap.Uint("id", id))
		return nil, err
	}

	make.Name = name
	if err := s.repo.Save(make); err != nil {
		return nil, err
	}
	return make, nil
}

// Delete removes the row itself. Dependent cars are the caller's
// concern; the cascade path in CarService removes them first.
func (s *MakeService) Delete(id uint) error {
	make, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("make not found", zap.Uint("id", id))
		return err
	}
	return s.repo.Delete(make)
}

// Filter returns a page of makes ordered by id. An empty name means
// no name constraint.
func (s *MakeService) Filter(name string, page, size int) ([]models.Make, int64, error) {
	var where repositories.Conjunction
	if name != "" {
		where = where.And("name", name)
	}
	return s.repo.Filter(where, page, size)
}
