package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

	knownSlots = map[string]struct{}{
		"primary": {}, "accent": {}, "surface": {}, "success": {},
		"warning": {}, "danger": {}, "info": {}, "neutral": {},
	}
)

// validatorInstance configures and returns the shared validator used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_slot", func(fl validator.FieldLevel) bool {
			_, ok := knownSlots[fl.Field().String()]
			return ok
		})

		validateInst = v
	})
	return validateInst
}
