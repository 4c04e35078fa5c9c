package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/quickway/travels_backoffice/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the `role` and `status` tags to Gin's validator.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return domain.Role(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("status", func(fl validator.FieldLevel) bool {
			return domain.Status(fl.Field().String()).Valid()
		})
	})
}
