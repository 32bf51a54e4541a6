package controllers

import (
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"zele-backend/config"
	"zele-backend/models"
	"zele-backend/store"

	"github.com/gin-gonic/gin"
)

// Controller holds the dependencies shared by all handlers.
type Controller struct {
	Store    store.Store
	Validate *validator.Validate
	Cfg      *config.AppConfig
}

// New builds a Controller around a store gateway and the loaded config.
func New(st store.Store, cfg *config.AppConfig) *Controller {
	return &Controller{
		Store:    st,
		Validate: models.NewValidator(),
		Cfg:      cfg,
	}
}

// bindAndValidate binds the JSON body into out and runs schema validation.
// On failure it writes the 400 response and returns false so the handler
// can short-circuit before touching the store.
func (ctrl *Controller) bindAndValidate(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return false
	}
	if err := ctrl.Validate.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": validationErrorsToMap(err)})
		return false
	}
	return true
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.StructNamespace()] = fe.Tag()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
