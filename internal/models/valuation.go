package models

import (
	"github.com/shopspring/decimal"

	"appraisal/internal/valuation"
)

// Valuation is an archived engine run. Headline figures are stored as exact
// decimals so reports and sorts do not drift; the full result, including the
// breakdown and any sensitivity grid, is kept alongside as JSON.
type Valuation struct {
	Base
	Method           valuation.Method           `gorm:"type:varchar(32);not null;index" json:"method"`
	Category         valuation.PropertyCategory `gorm:"type:varchar(32);index" json:"category,omitempty"`
	Label            string                     `gorm:"type:varchar(255)" json:"label,omitempty"`
	TotalValue       decimal.Decimal            `gorm:"type:numeric(20,2);not null" json:"total_value" swaggertype:"string"`
	ValuePerUnitArea decimal.Decimal            `gorm:"type:numeric(20,4);not null" json:"value_per_unit_area" swaggertype:"string"`
	Confidence       *float64                   `json:"confidence,omitempty"`
	Flags            []string                   `gorm:"serializer:json;type:text" json:"flags,omitempty"`
	Result           valuation.Result           `gorm:"serializer:json;type:text;not null" json:"result"`
}

// NewValuation builds an archive record for res.
func NewValuation(res valuation.Result, category valuation.PropertyCategory, label string) *Valuation {
	return &Valuation{
		Method:           res.Method,
		Category:         category,
		Label:            label,
		TotalValue:       decimal.NewFromFloat(res.TotalValue).Round(2),
		ValuePerUnitArea: decimal.NewFromFloat(res.ValuePerUnitArea).Round(4),
		Confidence:       res.Confidence,
		Flags:            res.Flags,
		Result:           res,
	}
}
