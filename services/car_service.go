package services

import (
	"fmt"

	"go.uber.org/zap"

	"carcatalog-api/models"
	"carcatalog-api/repositories"
)

// CarService implements the car lifecycle, the filterable catalog
// query and the cascading deletes for the three reference entities.
type CarService struct {
	cars       *repositories.CarRepository
	makes      *MakeService
	modelsSvc  *ModelService
	categories *CategoryService
	logger     *zap.Logger
}

func NewCarService(
	cars *repositories.CarRepository,
	makes *MakeService,
	modelsSvc *ModelService,
	categories *CategoryService,
	logger *zap.Logger,
) *CarService {
	return &CarService{
		cars:       cars,
		makes:      makes,
		modelsSvc:  modelsSvc,
		categories: categories,
		logger:     logger,
	}
}

// CreateCarInput carries the wire fields of a creation request. An
// absent or empty ObjectID means one is generated.
type CreateCarInput struct {
	Make     string
	Model    string
	Category string
	Year     int
	ObjectID string
}

// UpdateCarInput carries the wire fields of an update request.
// ObjectID is immutable and therefore absent here.
type UpdateCarInput struct {
	Make     string
	Model    string
	Category string
	Year     int
}

func (s *CarService) FindCarByID(id uint) (CarDTO, error) {
	car, err := s.cars.FindByID(id)
	if err != nil {
		s.logger.Error("car not found", zap.Uint("id", id))
		return CarDTO{}, err
	}
	return carToDTO(car), nil
}

// CreateCar resolves (or creates) the three reference entities by
// name, assigns an objectId when the caller supplied none, and
// persists the new car.
func (s *CarService) CreateCar(in CreateCarInput) (CarDTO, error) {
	if in.Make == "" || in.Model == "" || in.Category == "" || in.Year == 0 {
		return CarDTO{}, fmt.Errorf("%w: make, model, category and year are required", repositories.ErrInvalidArgument)
	}

	make, err := s.makes.FindByNameOrCreate(in.Make)
	if err != nil {
		return CarDTO{}, err
	}
	model, err := s.modelsSvc.FindByNameOrCreate(in.Model)
	if err != nil {
		return CarDTO{}, err
	}
	category, err := s.categories.FindByNameOrCreate(in.Category)
	if err != nil {
		return CarDTO{}, err
	}

	objectID := in.ObjectID
	if objectID == "" {
		objectID, err = s.GenerateObjectID()
		if err != nil {
			return CarDTO{}, err
		}
	}

	car := &models.Car{
		MakeID:     make.ID,
		ModelID:    model.ID,
		CategoryID: category.ID,
		Year:       in.Year,
		ObjectID:   objectID,
		Make:       *make,
		Model:      *model,
		Category:   *category,
	}
	if err := s.cars.Create(car); err != nil {
		return CarDTO{}, err
	}

	s.logger.Info("created car",
		zap.Uint("id", car.ID),
		zap.String("object_id", car.ObjectID),
	)
	return carToDTO(car), nil
}

// UpdateCar renames the car's already-linked make, model and category
// rows in place and overwrites the year. It never re-resolves a name
// to a different row, and objectId is left untouched.
func (s *CarService) UpdateCar(id uint, in UpdateCarInput) (CarDTO, error) {
	if in.Make == "" || in.Model == "" || in.Category == "" || in.Year == 0 {
		return CarDTO{}, fmt.Errorf("%w: make, model, category and year are required", repositories.ErrInvalidArgument)
	}

	car, err := s.cars.FindByID(id)
	if err != nil {
		s.logger.Error("car not found", zap.Uint("id", id))
		return CarDTO{}, err
	}

	if _, err := s.makes.Update(car.MakeID, in.Make); err != nil {
		return CarDTO{}, err
	}
	if _, err := s.modelsSvc.Update(car.ModelID, in.Model); err != nil {
		return CarDTO{}, err
	}
	if _, err := s.categories.Update(car.CategoryID, in.Category); err != nil {
		return CarDTO{}, err
	}

	car.Year = in.Year
	if err := s.cars.Save(car); err != nil {
		return CarDTO{}, err
	}

	car.Make.Name = in.Make
	car.Model.Name = in.Model
	car.Category.Name = in.Category
	return carToDTO(car), nil
}

func (s *CarService) DeleteCar(id uint) error {
	car, err := s.cars.FindByID(id)
	if err != nil {
		s.logger.Error("car not found", zap.Uint("id", id))
		return err
	}
	return s.cars.Delete(car)
}

// FilterCars runs the catalog query: the conjunction of the provided
// equality filters, ordered by id ascending and paginated. Empty
// strings and a zero year mean "no filter".
func (s *CarService) FilterCars(makeName, modelName, categoryName string, year, page, size int) ([]CarListItemDTO, int64, error) {
	var where repositories.Conjunction
	if makeName != "" {
		where = where.And("makes.name", makeName)
	}
	if modelName != "" {
		where = where.And("models.name", modelName)
	}
	if categoryName != "" {
		where = where.And("categories.name", categoryName)
	}
	if year != 0 {
		where = where.And("cars.year", year)
	}

	cars, total, err := s.cars.Filter(where, page, size)
	if err != nil {
		return nil, 0, err
	}

	items := make([]CarListItemDTO, 0, len(cars))
	for i := range cars {
		items = append(items, carToListItemDTO(&cars[i]))
	}
	return items, total, nil
}

// DeleteMakeAndAssociations removes every car referencing the make,
// then the make itself. A failure partway leaves the remaining cars
// and the make in place; nothing is rolled back.
func (s *CarService) DeleteMakeAndAssociations(id uint) error {
	if _, err := s.makes.FindByID(id); err != nil {
		return err
	}

	cars, err := s.cars.FindByMakeID(id)
	if err != nil {
		return err
	}
	for i := range cars {
		if err := s.cars.Delete(&cars[i]); err != nil {
			return err
		}
	}

	s.logger.Info("cascade delete make", zap.Uint("id", id), zap.Int("cars", len(cars)))
	return s.makes.Delete(id)
}

// DeleteModelAndAssociations is the model equivalent of
// DeleteMakeAndAssociations.
func (s *CarService) DeleteModelAndAssociations(id uint) error {
	if _, err := s.modelsSvc.FindByID(id); err != nil {
		return err
	}

	cars, err := s.cars.FindByModelID(id)
	if err != nil {
		return err
	}
	for i := range cars {
		if err := s.cars.Delete(&cars[i]); err != nil {
			return err
		}
	}

	s.logger.Info("cascade delete model", zap.Uint("id", id), zap.Int("cars", len(cars)))
	return s.modelsSvc.Delete(id)
}

// DeleteCategoryAndAssociations is the category equivalent of
// DeleteMakeAndAssociations.
func (s *CarService) DeleteCategoryAndAssociations(id uint) error {
	if _, err := s.categories.FindByID(id); err != nil {
		return err
	}

	cars, err := s.cars.FindByCategoryID(id)
	if err != nil {
		return err
	}
	for i := range cars {
		if err := s.cars.Delete(&cars[i]); err != nil {
			return err
		}
	}

	s.logger.Info("cascade delete category", zap.Uint("id", id), zap.Int("cars", len(cars)))
	return s.categories.Delete(id)
}

// GenerateObjectID draws 11-character alphanumeric candidates until
// one does not collide with a persisted objectId. With 62^11 possible
// identifiers the loop terminates almost always on the first attempt.
func (s *CarService) GenerateObjectID() (string, error) {
	for {
		objectID := randomObjectID()

		exists, err := s.cars.ExistsByObjectID(objectID)
		if err != nil {
			return "", err
		}
		if !exists {
			return objectID, nil
		}
	}
}
