package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Axton-Industries/Nextgen-work/internal/service"
	"github.com/Axton-Industries/Nextgen-work/internal/timefilter"
)

// RegisterValidators installs the custom binding tags used by the request DTOs.
// It must run before the router serves requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not validator/v10")
	}
	if err := v.RegisterValidation("filtermode", func(fl validator.FieldLevel) bool {
		_, ok := timefilter.ParseMode(fl.Field().String())
		return ok
	}); err != nil {
		return err
	}
	return v.RegisterValidation("exportformat", func(fl validator.FieldLevel) bool {
		return service.SupportedFormat(strings.TrimSpace(fl.Field().String()))
	})
}
