// utils/binding.go - Custom validators on gin's binding engine
package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators wires domain validators into gin's request
// binding so struct tags can use them (`binding:"session_token"`).
// Call once at startup.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("session_token", func(fl validator.FieldLevel) bool {
		return ValidSession(fl.Field().String())
	})
}
