package categories

import (
	"net/http"

	"blog-backend/models"
	"blog-backend/store"
	"blog-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List categories
// @Description Retrieve every category
// @Tags categories
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Category}
// @Failure 500 {object} utils.Response
// @Router /rpc/categories.list [post]
func List(c *gin.Context) {
	categories, err := store.FetchCategories(c.Request.Context())
	if err != nil {
		utils.SendStoreError(c, err, "Error retrieving categories")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", categories)
}

// @Summary Get a category by ID
// @Description Retrieve one category; data is null when it does not exist
// @Tags categories
// @Accept json
// @Produce json
// @Param input body models.IDInput true "Category ID"
// @Success 200 {object} utils.Response{data=models.Category}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /rpc/categories.getById [post]
func GetByID(c *gin.Context) {
	var input models.IDInput
	if !utils.BindInput(c, &input) {
		return
	}

	category, err := store.FetchCategoryByID(c.Request.Context(), input.ID)
	if err != nil {
		utils.SendStoreError(c, err, "Error retrieving category")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", category)
}

// @Summary Get a category by slug
// @Description Retrieve one category; data is null when it does not exist
// @Tags categories
// @Accept json
// @Produce json
// @Param input body models.SlugInput true "Category slug"
// @Success 200 {object} utils.Response{data=models.Category}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /rpc/categories.getBySlug [post]
func GetBySlug(c *gin.Context) {
	var input models.SlugInput
	if !utils.BindInput(c, &input) {
		return
	}

	category, err := store.FetchCategoryBySlug(c.Request.Context(), input.Slug)
	if err != nil {
		utils.SendStoreError(c, err, "Error retrieving category")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", category)
}

// @Summary Create a new category
// @Description Create a new category with the provided information
// @Tags categories
// @Accept json
// @Produce json
// @Param input body models.CategoryCreate true "Category information"
// @Success 201 {object} utils.Response{data=models.Category}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response "slug already exists"
// @Failure 500 {object} utils.Response
// @Router /rpc/categories.create [post]
func Create(c *gin.Context) {
	var input models.CategoryCreate
	if !utils.BindInput(c, &input) {
		return
	}

	category, err := store.CreateCategory(c.Request.Context(), input)
	if err != nil {
		utils.SendStoreError(c, err, "Error creating category")
		return
	}

	utils.LogSuccess("Category created: " + category.Slug)
	utils.SendSuccess(c, http.StatusCreated, "Category created successfully", category)
}

// @Summary Update a category
// @Description Update only the supplied fields of a category; data is null when it does not exist
// @Tags categories
// @Accept json
// @Produce json
// @Param input body models.CategoryUpdate true "Fields to update"
// @Success 200 {object} utils.Response{data=models.Category}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response "slug already exists"
// @Failure 500 {object} utils.Response
// @Router /rpc/categories.update [post]
func Update(c *gin.Context) {
	var input models.CategoryUpdate
	if !utils.BindInput(c, &input) {
		return
	}

	category, err := store.UpdateCategory(c.Request.Context(), input.ID, input)
	if err != nil {
		utils.SendStoreError(c, err, "Error updating category")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", category)
}

// @Summary Delete a category
// @Description Delete a category; its posts are kept and lose this category
// @Tags categories
// @Accept json
// @Produce json
// @Param input body models.IDInput true "Category ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /rpc/categories.delete [post]
func Delete(c *gin.Context) {
	var input models.IDInput
	if !utils.BindInput(c, &input) {
		return
	}

	if err := store.DeleteCategory(c.Request.Context(), input.ID); err != nil {
		utils.SendStoreError(c, err, "Error deleting category")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Category deleted successfully", gin.H{"success": true})
}

// @Summary List categories (plain JSON)
// @Description Fallback endpoint returning the bare category array
// @Tags fallback
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/categories [get]
func PlainList(c *gin.Context) {
	categories, err := store.FetchCategories(c.Request.Context())
	if err != nil {
		utils.LogError(err, "Error retrieving categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}
