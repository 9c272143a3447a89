package venue

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidation teaches gin's binding layer the closed venue set, so
// an unknown venue fails at bind time with a field-level error instead of
// a silent no-match later.
func RegisterValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("venue", func(fl validator.FieldLevel) bool {
			_, err := Parse(fl.Field().String())
			return err == nil
		})
	}
}
