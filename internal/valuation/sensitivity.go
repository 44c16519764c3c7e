package valuation

import (
	"golang.org/x/sync/errgroup"
)

// Func is a pure valuation over named numeric inputs.
type Func func(inputs map[string]float64) (float64, error)

// Axis perturbs one named input by each fractional change in turn.
type Axis struct {
	Input   string    `json:"input"`
	Changes []float64 `json:"changes"`
}

// Scenario is one cell of a sensitivity grid. Changes line up with Grid.Axes.
type Scenario struct {
	Changes []float64 `json:"changes"`
	Value   float64   `json:"value"`
	// ValueChange is the fractional move from Grid.Base, zero when Base is zero.
	ValueChange float64 `json:"value_change"`
}

// Grid holds the outputs of every combination of axis changes.
type Grid struct {
	Base      float64    `json:"base"`
	Axes      []Axis     `json:"axes"`
	Scenarios []Scenario `json:"scenarios"`
}

// Analyze evaluates fn at base and at every combination of the axes' changes,
// first axis outermost. Cells are independent and are evaluated in parallel;
// their order in the grid does not depend on scheduling.
func Analyze(fn Func, base map[string]float64, axes ...Axis) (*Grid, error) {
	if len(axes) == 0 {
		return nil, invalidInput("sensitivity analysis needs at least one axis")
	}
	for _, a := range axes {
		if _, ok := base[a.Input]; !ok {
			return nil, invalidInput("sensitivity input %q is not a base input", a.Input)
		}
		if len(a.Changes) == 0 {
			return nil, invalidInput("sensitivity axis %q has no changes", a.Input)
		}
	}

	baseValue, err := fn(copyInputs(base))
	if err != nil {
		return nil, err
	}

	combos := combinations(axes)
	scenarios := make([]Scenario, len(combos))

	var g errgroup.Group
	for i, changes := range combos {
		g.Go(func() error {
			inputs := copyInputs(base)
			for j, a := range axes {
				inputs[a.Input] *= 1 + changes[j]
			}
			v, err := fn(inputs)
			if err != nil {
				return err
			}
			var delta float64
			if baseValue != 0 {
				delta = (v - baseValue) / baseValue
			}
			scenarios[i] = Scenario{Changes: changes, Value: v, ValueChange: delta}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Axis, len(axes))
	for i, a := range axes {
		out[i] = Axis{Input: a.Input, Changes: append([]float64(nil), a.Changes...)}
	}
	return &Grid{Base: baseValue, Axes: out, Scenarios: scenarios}, nil
}

// Lookup returns the scenario value for the given changes, one per axis.
func (g *Grid) Lookup(changes ...float64) (float64, bool) {
	for _, s := range g.Scenarios {
		if len(s.Changes) != len(changes) {
			continue
		}
		match := true
		for i := range changes {
			if s.Changes[i] != changes[i] {
				match = false
				break
			}
		}
		if match {
			return s.Value, true
		}
	}
	return 0, false
}

func (g *Grid) record() map[string]any {
	axes := make([]any, len(g.Axes))
	for i, a := range g.Axes {
		changes := make([]any, len(a.Changes))
		for j, c := range a.Changes {
			changes[j] = c
		}
		axes[i] = map[string]any{"input": a.Input, "changes": changes}
	}
	scenarios := make([]any, len(g.Scenarios))
	for i, s := range g.Scenarios {
		changes := make([]any, len(s.Changes))
		for j, c := range s.Changes {
			changes[j] = c
		}
		scenarios[i] = map[string]any{
			"changes":      changes,
			"value":        s.Value,
			"value_change": s.ValueChange,
		}
	}
	return map[string]any{"base": g.Base, "axes": axes, "scenarios": scenarios}
}

func combinations(axes []Axis) [][]float64 {
	combos := [][]float64{{}}
	for _, a := range axes {
		next := make([][]float64, 0, len(combos)*len(a.Changes))
		for _, prefix := range combos {
			for _, c := range a.Changes {
				row := make([]float64, len(prefix), len(prefix)+1)
				copy(row, prefix)
				next = append(next, append(row, c))
			}
		}
		combos = next
	}
	return combos
}

func copyInputs(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
