package valuation

import (
	apperrors "appraisal/internal/errors"
)

// Request bundles every input a method might need. Each method reads only
// its own fields and reports the ones it is missing.
type Request struct {
	Subject     *SubjectProperty        `json:"subject,omitempty" yaml:"subject,omitempty"`
	Comparables []ComparableProperty    `json:"comparables,omitempty" yaml:"comparables,omitempty"`
	Weights     AdjustmentWeights       `json:"weights,omitempty" yaml:"weights,omitempty"`
	Development *DevelopmentAssumptions `json:"development,omitempty" yaml:"development,omitempty"`
	CashFlow    *CashFlowAssumptions    `json:"cash_flow,omitempty" yaml:"cash_flow,omitempty"`
	Business    *BusinessFinancials     `json:"business,omitempty" yaml:"business,omitempty"`
	Sensitivity bool                    `json:"sensitivity,omitempty" yaml:"sensitivity,omitempty"`
}

func (r Request) options() []Option {
	if r.Sensitivity {
		return []Option{WithSensitivity()}
	}
	return nil
}

// ValuationMethod is implemented once per engine so a selected method can be
// invoked without knowing which one it is.
type ValuationMethod interface {
	Method() Method
	Value(req Request) (Result, error)
}

// SalesComparison runs ValueByComparison.
type SalesComparison struct{}

// Method implements ValuationMethod.
func (SalesComparison) Method() Method { return MethodSalesComparison }

// Value implements ValuationMethod.
func (SalesComparison) Value(req Request) (Result, error) {
	if req.Subject == nil {
		return Result{}, invalidInput("sales comparison needs a subject property")
	}
	return ValueByComparison(*req.Subject, req.Comparables, req.Weights)
}

// Residual runs ValueByResidual.
type Residual struct{}

// Method implements ValuationMethod.
func (Residual) Method() Method { return MethodResidual }

// Value implements ValuationMethod.
func (Residual) Value(req Request) (Result, error) {
	if req.Development == nil {
		return Result{}, insufficientData("residual valuation needs development assumptions")
	}
	return ValueByResidual(*req.Development, req.options()...)
}

// DiscountedCashFlow runs ValueByDCF.
type DiscountedCashFlow struct{}

// Method implements ValuationMethod.
func (DiscountedCashFlow) Method() Method { return MethodDCF }

// Value implements ValuationMethod.
func (DiscountedCashFlow) Value(req Request) (Result, error) {
	if req.CashFlow == nil {
		return Result{}, insufficientData("cash flow valuation needs cash flow assumptions")
	}
	return ValueByDCF(*req.CashFlow)
}

// Profits runs ValueByProfits.
type Profits struct{}

// Method implements ValuationMethod.
func (Profits) Method() Method { return MethodProfits }

// Value implements ValuationMethod.
func (Profits) Value(req Request) (Result, error) {
	if req.Business == nil {
		return Result{}, insufficientData("profits valuation needs business financials")
	}
	return ValueByProfits(*req.Business, req.options()...)
}

// MethodFor returns the implementation tagged m.
func MethodFor(m Method) (ValuationMethod, error) {
	switch m {
	case MethodSalesComparison:
		return SalesComparison{}, nil
	case MethodResidual:
		return Residual{}, nil
	case MethodDCF:
		return DiscountedCashFlow{}, nil
	case MethodProfits:
		return Profits{}, nil
	}
	return nil, apperrors.WithMessage(apperrors.ErrUnknownMethod, "Unsupported valuation method: "+string(m))
}
