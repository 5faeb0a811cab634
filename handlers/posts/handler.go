package posts

import (
	"net/http"
	"strconv"

	"blog-backend/models"
	"blog-backend/store"
	"blog-backend/utils"

	"github.com/gin-gonic/gin"
)

var errEmptyContent = []utils.FieldError{{
	Field:   "content",
	Message: "content is empty once unsafe markup is removed",
}}

// @Summary List all posts
// @Description Retrieve every post with its categories
// @Tags posts
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.Post}
// @Failure 500 {object} utils.Response
// @Router /rpc/posts.listAll [post]
func ListAll(c *gin.Context) {
	posts, err := store.FetchAllBlogs(c.Request.Context())
	if err != nil {
		utils.SendStoreError(c, err, "Error retrieving posts")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", posts)
}

// @Summary List posts of a category
// @Description Retrieve the posts linked to a category, each with all of its categories
// @Tags posts
// @Accept json
// @Produce json
// @Param input body models.CategoryFilter true "Category ID"
// @Success 200 {object} utils.Response{data=[]models.Post}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /rpc/posts.listByCategory [post]
func ListByCategory(c *gin.Context) {
	var input models.CategoryFilter
	if !utils.BindInput(c, &input) {
		return
	}

	posts, err := store.FetchBlogs(c.Request.Context(), input.CategoryID)
	if err != nil {
		utils.SendStoreError(c, err, "Error retrieving posts")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", posts)
}

// @Summary Get a post by ID
// @Description Retrieve one post; data is null when it does not exist
// @Tags posts
// @Accept json
// @Produce json
// @Param input body models.IDInput true "Post ID"
// @Success 200 {object} utils.Response{data=models.Post}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /rpc/posts.getById [post]
func GetByID(c *gin.Context) {
	var input models.IDInput
	if !utils.BindInput(c, &input) {
		return
	}

	post, err := store.FetchBlogByID(c.Request.Context(), input.ID)
	if err != nil {
		utils.SendStoreError(c, err, "Error retrieving post")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", post)
}

// @Summary Get a post by slug
// @Description Retrieve one post; data is null when it does not exist
// @Tags posts
// @Accept json
// @Produce json
// @Param input body models.SlugInput true "Post slug"
// @Success 200 {object} utils.Response{data=models.Post}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /rpc/posts.getBySlug [post]
func GetBySlug(c *gin.Context) {
	var input models.SlugInput
	if !utils.BindInput(c, &input) {
		return
	}

	post, err := store.FetchBlogBySlug(c.Request.Context(), input.Slug)
	if err != nil {
		utils.SendStoreError(c, err, "Error retrieving post")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", post)
}

// @Summary Create a new post
// @Description Create a post linked to at least one category
// @Tags posts
// @Accept json
// @Produce json
// @Param input body models.PostCreate true "Post information"
// @Success 201 {object} utils.Response{data=models.Post}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response "slug already exists"
// @Failure 500 {object} utils.Response
// @Router /rpc/posts.create [post]
func Create(c *gin.Context) {
	var input models.PostCreate
	if !utils.BindInput(c, &input) {
		return
	}

	input.Content = utils.SanitizeContent(input.Content)
	if input.Content == "" {
		utils.SendValidationError(c, errEmptyContent)
		return
	}

	post, err := store.CreateBlog(c.Request.Context(), input)
	if err != nil {
		utils.SendStoreError(c, err, "Error creating post")
		return
	}

	utils.LogSuccess("Post created: " + post.Slug)
	utils.SendSuccess(c, http.StatusCreated, "Post created successfully", post)
}

// @Summary Update a post
// @Description Update the supplied fields; categoryIds, when present, replaces the whole category set
// @Tags posts
// @Accept json
// @Produce json
// @Param input body models.PostUpdate true "Fields to update"
// @Success 200 {object} utils.Response{data=models.Post}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response "slug already exists"
// @Failure 500 {object} utils.Response
// @Router /rpc/posts.update [post]
func Update(c *gin.Context) {
	var input models.PostUpdate
	if !utils.BindInput(c, &input) {
		return
	}

	if input.Content != nil {
		content := utils.SanitizeContent(*input.Content)
		if content == "" {
			utils.SendValidationError(c, errEmptyContent)
			return
		}
		input.Content = &content
	}

	post, err := store.UpdateBlogWithCategories(c.Request.Context(), input.ID, input)
	if err != nil {
		utils.SendStoreError(c, err, "Error updating post")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "", post)
}

// @Summary Delete a post
// @Description Delete a post and its category links
// @Tags posts
// @Accept json
// @Produce json
// @Param input body models.IDInput true "Post ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /rpc/posts.delete [post]
func Delete(c *gin.Context) {
	var input models.IDInput
	if !utils.BindInput(c, &input) {
		return
	}

	if err := store.DeleteBlog(c.Request.Context(), input.ID); err != nil {
		utils.SendStoreError(c, err, "Error deleting post")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Post deleted successfully", gin.H{"success": true})
}

type plainCategoryFilter struct {
	Category uint `json:"category" binding:"required"`
}

// @Summary List posts of a category (plain JSON)
// @Description Fallback endpoint returning the bare post array; category comes from the JSON body or the query string
// @Tags fallback
// @Accept json
// @Produce json
// @Param category query int false "Category ID"
// @Success 200 {array} models.Post
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/blogs [post]
func PlainListByCategory(c *gin.Context) {
	var filter plainCategoryFilter
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: category must be a positive integer"})
			return
		}
		filter.Category = uint(id)
	} else if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	posts, err := store.FetchBlogs(c.Request.Context(), filter.Category)
	if err != nil {
		utils.LogError(err, "Error retrieving posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}
