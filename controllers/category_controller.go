package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carcatalog-api/services"
	"carcatalog-api/utils"
)

type CategoryController struct {
	categories *services.CategoryService
	cars       *services.CarService
}

func NewCategoryController(categories *services.CategoryService, cars *services.CarService) *CategoryController {
	return &CategoryController{categories: categories, cars: cars}
}

type CreateUpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (cc *CategoryController) GetCategories(c *gin.Context) {
	page, size := utils.ParsePagination(c)

	list, total, err := cc.categories.Filter(c.Query("name"), page, size)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SendPaginated(c, list, page, size, total)
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := cc.categories.FindByID(id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CreateUpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	category, err := cc.categories.Create(req.Name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CreateUpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	category, err := cc.categories.Update(id, req.Name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes the category together with every car
// referencing it.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := cc.cars.DeleteCategoryAndAssociations(id); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
