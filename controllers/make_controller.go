package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carcatalog-api/services"
	"carcatalog-api/utils"
)

type MakeController struct {
	makes *services.MakeService
	cars  *services.CarService
}

func NewMakeController(makes *services.MakeService, cars *services.CarService) *MakeController {
	return &MakeController{makes: makes, cars: cars}
}

type CreateUpdateMakeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (mc *MakeController) GetMakes(c *gin.Context) {
	page, size := utils.ParsePagination(c)

	makes, total, err := mc.makes.Filter(c.Query("name"), page, size)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SendPaginated(c, makes, page, size, total)
}

func (mc *MakeController) GetMake(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	make, err := mc.makes.FindByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, make)
}

func (mc *MakeController) CreateMake(c *gin.Context) {
	var req CreateUpdateMakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	make, err := mc.makes.Create(req.Name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, make)
}

func (mc *MakeController) UpdateMake(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CreateUpdateMakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	make, err := mc.makes.Update(id, req.Name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, make)
}

// DeleteMake removes the make together with every car referencing it.
func (mc *MakeController) DeleteMake(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := mc.cars.DeleteMakeAndAssociations(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
