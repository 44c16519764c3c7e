// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"appraisal/internal/valuation"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// New returns a validator that reads gin's binding tags, with the custom
// validators registered, for checking requests outside an HTTP handler.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterOn(v)
	return v
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("property_category", validatePropertyCategory)
	_ = v.RegisterValidation("valuation_method", validateValuationMethod)
	_ = v.RegisterValidation("fraction", validateFraction)
	_ = v.RegisterValidation("condition_score", validateConditionScore)
	_ = v.RegisterValidation("lease_type", validateLeaseType)
	_ = v.RegisterValidation("site_rent_basis", validateSiteRentBasis)
}

func validatePropertyCategory(fl validator.FieldLevel) bool {
	_, ok := valuation.ParseCategory(fl.Field().String())
	return ok
}

func validateValuationMethod(fl validator.FieldLevel) bool {
	_, err := valuation.MethodFor(valuation.Method(fl.Field().String()))
	return err == nil
}

func validateFraction(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return f >= 0 && f <= 1
}

func validateConditionScore(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return f >= 1 && f <= 5
}

func validateLeaseType(fl validator.FieldLevel) bool {
	switch valuation.LeaseType(fl.Field().String()) {
	case valuation.LeaseStandard, valuation.LeaseTemporary, valuation.LeaseLongTerm,
		valuation.LeaseDirect, valuation.LeaseExempted:
		return true
	}
	return false
}

func validateSiteRentBasis(fl validator.FieldLevel) bool {
	switch valuation.SiteRentBasis(fl.Field().String()) {
	case valuation.BasisComparables, valuation.BasisResidual,
		valuation.BasisPercentageOfValue, valuation.BasisIncomeShare:
		return true
	}
	return false
}
