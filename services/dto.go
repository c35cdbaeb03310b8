package services

import (
	"carcatalog-api/models"
)

// CarDTO is the detail view of a single car.
type CarDTO struct {
	ID       uint   `json:"id"`
	Make     string `json:"make"`
	Model    string `json:"model"`
	Category string `json:"category"`
	Year     int    `json:"year"`
	ObjectID string `json:"objectId"`
}

// CarListItemDTO is the slimmer projection used by paginated listings:
// no internal id, no objectId.
type CarListItemDTO struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Category string `json:"category"`
	Year     int    `json:"year"`
}

func carToDTO(car *models.Car) CarDTO {
	return CarDTO{
		ID:       car.ID,
		Make:     car.Make.Name,
		Model:    car.Model.Name,
		Category: car.Category.Name,
		Year:     car.Year,
		ObjectID: car.ObjectID,
	}
}

func carToListItemDTO(car *models.Car) CarListItemDTO {
	return CarListItemDTO{
		Make:     car.Make.Name,
		Model:    car.Model.Name,
		Category: car.Category.Name,
		Year:     car.Year,
	}
}
