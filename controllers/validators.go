package controllers

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/lucabarone/trattoria-pos/models"
)

// Monetary values travel as decimal strings with exactly two
// fractional digits, e.g. "8.00".
var priceRe = regexp.MustCompile(`^\d+\.\d{2}$`)

var registerOnce sync.Once

// RegisterValidators installs the custom `price` and `dishcategory`
// validators on gin's binding engine. Called from SetupRouter; safe to
// call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
			return priceRe.MatchString(fl.Field().String())
		})
		v.RegisterValidation("dishcategory", func(fl validator.FieldLevel) bool {
			return models.IsValidCategory(fl.Field().String())
		})
	})
}
