package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carcatalog-api/services"
	"carcatalog-api/utils"
)

type ModelController struct {
	modelsSvc *services.ModelService
	cars      *services.CarService
}

func NewModelController(modelsSvc *services.ModelService, cars *services.CarService) *ModelController {
	return &ModelController{modelsSvc: modelsSvc, cars: cars}
}

type CreateUpdateModelRequest struct {
	Name string `json:"name" binding:"required"`
}

func (mc *ModelController) GetModels(c *gin.Context) {
	page, size := utils.ParsePagination(c)

	list, total, err := mc.modelsSvc.Filter(c.Query("name"), page, size)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SendPaginated(c, list, page, size, total)
}

func (mc *ModelController) GetModel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	model, err := mc.modelsSvc.FindByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model)
}

func (mc *ModelController) CreateModel(c *gin.Context) {
	var req CreateUpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	model, err := mc.modelsSvc.Create(req.Name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model)
}

func (mc *ModelController) UpdateModel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CreateUpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	model, err := mc.modelsSvc.Update(id, req.Name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model)
}

// DeleteModel removes the model together with every car referencing it.
func (mc *ModelController) DeleteModel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := mc.cars.DeleteModelAndAssociations(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
