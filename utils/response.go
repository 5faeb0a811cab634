package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RequestIDKey is the gin context key holding the current request id.
const RequestIDKey = "request_id"

// Response structure standard pour les réponses API
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data"`
	Error   string       `json:"error,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// SendSuccess envoie une réponse de succès
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError envoie une réponse d'erreur
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
	})
}

// SendValidationError answers 400 with one entry per offending field.
func SendValidationError(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error:   "validation failed",
		Fields:  fields,
	})
}

// BindInput decodes the JSON body into obj and answers the validation error
// itself when the body is malformed. An empty body binds as {}.
func BindInput(c *gin.Context, obj interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		if err := ValidateStruct(obj); err != nil {
			SendValidationError(c, FieldErrors(err))
			return false
		}
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		SendValidationError(c, FieldErrors(err))
		return false
	}
	return true
}

// SendStoreError logs a data access failure and maps it to a status code:
// slug conflicts are 409, links to unknown categories 400, the rest 500.
func SendStoreError(c *gin.Context, err error, message string) {
	LogErrorWithRequest(c.GetString(RequestIDKey), err, message)

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		SendError(c, http.StatusConflict, "slug already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		SendError(c, http.StatusBadRequest, "unknown category")
	default:
		SendError(c, http.StatusInternalServerError, message+": "+err.Error())
	}
}
