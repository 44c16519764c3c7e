package valuation

import "math"

const (
	irrGuess         = 0.1
	irrMaxIterations = 100
	irrTolerance     = 1e-7
	irrMinDerivative = 1e-10
	irrLowerBound    = -0.99
	irrUpperBound    = 10.0
)

// NPV discounts cashflows at rate; cashflows[0] falls at time zero.
func NPV(rate float64, cashflows []float64) float64 {
	var v float64
	for t, cf := range cashflows {
		v += cf / math.Pow(1+rate, float64(t))
	}
	return v
}

func npvDerivative(rate float64, cashflows []float64) float64 {
	var d float64
	for t := 1; t < len(cashflows); t++ {
		d -= float64(t) * cashflows[t] / math.Pow(1+rate, float64(t+1))
	}
	return d
}

// IRR finds the rate at which NPV of cashflows is zero. It runs Newton's
// method from 10% and falls back to bisection over (-99%, 1000%) when the
// derivative vanishes or the iteration leaves that bracket. ok is false when
// neither finds a root, which is a normal outcome for some cashflow shapes.
func IRR(cashflows []float64) (rate float64, ok bool) {
	if len(cashflows) < 2 {
		return 0, false
	}
	tol := irrTolerance * scale(cashflows)

	r := irrGuess
	for range irrMaxIterations {
		v := NPV(r, cashflows)
		if math.Abs(v) < tol {
			return r, true
		}
		d := npvDerivative(r, cashflows)
		if math.Abs(d) < irrMinDerivative {
			break
		}
		next := r - v/d
		if !finite(next) || next <= irrLowerBound || next > irrUpperBound {
			break
		}
		r = next
	}
	return bisectIRR(cashflows, tol)
}

func bisectIRR(cashflows []float64, tol float64) (float64, bool) {
	lo, hi := irrLowerBound, irrUpperBound
	flo, fhi := NPV(lo, cashflows), NPV(hi, cashflows)
	if !finite(flo) || !finite(fhi) || flo*fhi > 0 {
		return 0, false
	}
	for range 200 {
		mid := (lo + hi) / 2
		fm := NPV(mid, cashflows)
		if math.Abs(fm) < tol || hi-lo < 1e-12 {
			return mid, true
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return 0, false
}

func scale(cashflows []float64) float64 {
	m := 1.0
	for _, cf := range cashflows {
		m = math.Max(m, math.Abs(cf))
	}
	return m
}
