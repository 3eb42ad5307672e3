package handlers

import (
	"errors"

	"github.com/SscSPs/currency_toolkit/internal/core/detection"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodeTag accepts anything NormalizeCurrencyCode resolves, e.g. "usd", "NIS" or "€".
const currencyCodeTag = "currencycode"

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return v.RegisterValidation(currencyCodeTag, validateCurrencyCode)
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	_, ok := detection.NormalizeCurrencyCode(fl.Field().String())
	return ok
}
