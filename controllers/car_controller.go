package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carcatalog-api/services"
	"carcatalog-api/utils"
)

type CarController struct {
	service *services.CarService
}

func NewCarController(service *services.CarService) *CarController {
	return &CarController{service: service}
}

type CreateCarRequest struct {
	Make     string `json:"make" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Category string `json:"category" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	ObjectID string `json:"objectId"`
}

type UpdateCarRequest struct {
	Make     string `json:"make" binding:"required"`
	Model    string `json:"model" binding:"required"`
	Category string `json:"category" binding:"required"`
	Year     int    `json:"year" binding:"required"`
}

// GetCars lists cars filtered by makeName, modelName, categoryName and
// year. Absent or empty parameters apply no constraint.
func (cc *CarController) GetCars(c *gin.Context) {
	page, size := utils.ParsePagination(c)

	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.SendValidationError(c, "year must be an integer")
			return
		}
		year = parsed
	}

	items, total, err := cc.service.FilterCars(
		c.Query("makeName"),
		c.Query("modelName"),
		c.Query("categoryName"),
		year, page, size,
	)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SendPaginated(c, items, page, size, total)
}

func (cc *CarController) GetCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	car, err := cc.service.FindCarByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

func (cc *CarController) CreateCar(c *gin.Context) {
	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	car, err := cc.service.CreateCar(services.CreateCarInput{
		Make:     req.Make,
		Model:    req.Model,
		Category: req.Category,
		Year:     req.Year,
		ObjectID: req.ObjectID,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, car)
}

func (cc *CarController) UpdateCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	car, err := cc.service.UpdateCar(id, services.UpdateCarInput{
		Make:     req.Make,
		Model:    req.Model,
		Category: req.Category,
		Year:     req.Year,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

func (cc *CarController) DeleteCar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.service.DeleteCar(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter. A malformed id responds 400
// and reports false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
