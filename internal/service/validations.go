package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/cadence/pkg/dateutil"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Mon-first day label as stored in custom-day sets
		validate.RegisterValidation("daylabel", func(fl validator.FieldLevel) bool {
			return dateutil.IsDayLabel(fl.Field().String())
		})
	})
}
