package routes

import (
	"github.com/classboard/classboard-be/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators hooks domain validations into gin's binding engine.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("posttag", func(fl validator.FieldLevel) bool {
			return model.Tag(fl.Field().String()).Valid()
		})
	}
}
