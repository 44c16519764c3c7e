package valuation

import (
	"fmt"
	"math"

	apperrors "appraisal/internal/errors"
)

func invalidInput(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func invalidAssumption(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrInvalidAssumption, fmt.Sprintf(format, args...))
}

func insufficientData(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrInsufficientData, fmt.Sprintf(format, args...))
}

func arithmeticDomain(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrArithmeticDomain, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// positive rejects zero, negative and non-finite values.
func positive(name string, v float64) error {
	if !finite(v) || v <= 0 {
		return invalidInput("%s must be greater than zero, got %v", name, v)
	}
	return nil
}

// nonNegative rejects negative and non-finite values.
func nonNegative(name string, v float64) error {
	if !finite(v) || v < 0 {
		return invalidInput("%s must not be negative, got %v", name, v)
	}
	return nil
}

// fraction rejects values outside [0, 1].
func fraction(name string, v float64) error {
	if !finite(v) || v < 0 || v > 1 {
		return invalidInput("%s must be a fraction between 0 and 1, got %v", name, v)
	}
	return nil
}

// signed only rejects non-finite values.
func signed(name string, v float64) error {
	if !finite(v) {
		return invalidInput("%s must be a finite number, got %v", name, v)
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// checked guards an intermediate figure against division blow-ups.
func checked(name string, v float64) (float64, error) {
	if !finite(v) {
		return 0, arithmeticDomain("%s is not a finite number", name)
	}
	return v, nil
}
