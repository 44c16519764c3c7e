package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/logger"
	"appraisal/internal/models"
	"appraisal/internal/pagination"
	"appraisal/internal/valuation"
)

// ComparisonRequest values a subject against recent comparable sales.
// Weights default to the configured adjustment matrix when omitted.
type ComparisonRequest struct {
	Label       string                         `json:"label" yaml:"label" binding:"max=255"`
	Subject     valuation.SubjectProperty      `json:"subject" yaml:"subject"`
	Comparables []valuation.ComparableProperty `json:"comparables" yaml:"comparables" binding:"dive"`
	Weights     valuation.AdjustmentWeights    `json:"weights,omitempty" yaml:"weights,omitempty"`
}

// ResidualRequest values a development site.
type ResidualRequest struct {
	Label    string                     `json:"label" yaml:"label" binding:"max=255"`
	Category valuation.PropertyCategory `json:"category,omitempty" yaml:"category,omitempty" binding:"omitempty,property_category"`
	DevelopmentInput
	Sensitivity bool `json:"sensitivity,omitempty" yaml:"sensitivity,omitempty"`
}

// DCFRequest values an income-producing property.
type DCFRequest struct {
	Label    string                     `json:"label" yaml:"label" binding:"max=255"`
	Category valuation.PropertyCategory `json:"category,omitempty" yaml:"category,omitempty" binding:"omitempty,property_category"`
	CashFlowInput
}

// ProfitsRequest values a trading property from its accounts.
type ProfitsRequest struct {
	Label    string                     `json:"label" yaml:"label" binding:"max=255"`
	Category valuation.PropertyCategory `json:"category,omitempty" yaml:"category,omitempty" binding:"omitempty,property_category"`
	BusinessInput
	Sensitivity bool `json:"sensitivity,omitempty" yaml:"sensitivity,omitempty"`
}

// SiteRentRequest prices the ground rent of a site.
type SiteRentRequest struct {
	Label    string                     `json:"label" yaml:"label" binding:"max=255"`
	Category valuation.PropertyCategory `json:"category,omitempty" yaml:"category,omitempty" binding:"omitempty,property_category"`
	SiteRentTerms
}

// ValuationRequest carries everything any method might need. When Method is
// empty the method is chosen from Category and the number of comparables.
type ValuationRequest struct {
	Label       string                         `json:"label" yaml:"label" binding:"max=255"`
	Method      valuation.Method               `json:"method,omitempty" yaml:"method,omitempty" binding:"omitempty,valuation_method"`
	Category    valuation.PropertyCategory     `json:"category,omitempty" yaml:"category,omitempty" binding:"omitempty,property_category"`
	Subject     *valuation.SubjectProperty     `json:"subject,omitempty" yaml:"subject,omitempty"`
	Comparables []valuation.ComparableProperty `json:"comparables,omitempty" yaml:"comparables,omitempty" binding:"dive"`
	Weights     valuation.AdjustmentWeights    `json:"weights,omitempty" yaml:"weights,omitempty"`
	Development *DevelopmentInput              `json:"development,omitempty" yaml:"development,omitempty"`
	CashFlow    *CashFlowInput                 `json:"cash_flow,omitempty" yaml:"cash_flow,omitempty"`
	Business    *BusinessInput                 `json:"business,omitempty" yaml:"business,omitempty"`
	Sensitivity bool                           `json:"sensitivity,omitempty" yaml:"sensitivity,omitempty"`
}

// valuationService runs the engine and archives every successful result.
type valuationService struct {
	db               *gorm.DB
	assumptions      valuation.Assumptions
	batchConcurrency int
}

// NewValuationService creates a new ValuationServicer.
func NewValuationService(db *gorm.DB, assumptions valuation.Assumptions, batchConcurrency int) ValuationServicer {
	if batchConcurrency < 1 {
		batchConcurrency = 1
	}
	return &valuationService{db: db, assumptions: assumptions, batchConcurrency: batchConcurrency}
}

// Defaults returns the assumptions used to complete partial requests.
func (s *valuationService) Defaults() valuation.Assumptions {
	return s.assumptions
}

// Compare runs the sales comparison method.
func (s *valuationService) Compare(req ComparisonRequest) (*models.Valuation, error) {
	category, err := normalizeCategory(req.Subject.Category)
	if err != nil {
		return nil, err
	}
	subject := req.Subject
	subject.Category = category

	weights := req.Weights
	if weights == nil {
		weights = s.assumptions.Comparison.Weights
	}
	return s.run(req.Label, category, func() (valuation.Result, error) {
		return valuation.ValueByComparison(subject, req.Comparables, weights)
	})
}

// Residual runs the residual land value method.
func (s *valuationService) Residual(req ResidualRequest) (*models.Valuation, error) {
	category, err := normalizeCategory(req.Category)
	if err != nil {
		return nil, err
	}
	a := req.Resolve(s.assumptions.Residual)
	return s.run(req.Label, category, func() (valuation.Result, error) {
		return valuation.ValueByResidual(a, sensitivity(req.Sensitivity)...)
	})
}

// DCF runs the discounted cash flow method.
func (s *valuationService) DCF(req DCFRequest) (*models.Valuation, error) {
	category, err := normalizeCategory(req.Category)
	if err != nil {
		return nil, err
	}
	a := req.Resolve(s.assumptions.CashFlow)
	return s.run(req.Label, category, func() (valuation.Result, error) {
		return valuation.ValueByDCF(a)
	})
}

// Profits runs the profits method.
func (s *valuationService) Profits(req ProfitsRequest) (*models.Valuation, error) {
	category, err := normalizeCategory(req.Category)
	if err != nil {
		return nil, err
	}
	b := req.Resolve(s.assumptions.Profits)
	return s.run(req.Label, category, func() (valuation.Result, error) {
		return valuation.ValueByProfits(b, sensitivity(req.Sensitivity)...)
	})
}

// SiteRent prices the annual ground rent of a site.
func (s *valuationService) SiteRent(req SiteRentRequest) (*models.Valuation, error) {
	category, err := normalizeCategory(req.Category)
	if err != nil {
		return nil, err
	}
	in := req.Resolve(s.assumptions.SiteRent)
	return s.run(req.Label, category, func() (valuation.Result, error) {
		return valuation.ValueSiteRent(in)
	})
}

// Select returns the method the selector recommends.
func (s *valuationService) Select(category valuation.PropertyCategory, comparableCount int) (*MethodSelection, error) {
	if comparableCount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "comparable count must not be negative")
	}
	sel := valuation.SelectMethod(resolveAlias(category), comparableCount)
	return NewMethodSelection(sel), nil
}

// Run values req with its named method, or selects one when none is named.
func (s *valuationService) Run(req ValuationRequest) (*ValuationOutcome, error) {
	if req.Method == "" {
		return s.Auto(req)
	}
	impl, err := valuation.MethodFor(req.Method)
	if err != nil {
		return nil, err
	}
	return s.runMethod(impl, nil, req)
}

// Auto selects a method for the request's category and comparables, then runs it.
func (s *valuationService) Auto(req ValuationRequest) (*ValuationOutcome, error) {
	category := req.Category
	if category == "" && req.Subject != nil {
		category = req.Subject.Category
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required to select a valuation method")
	}
	category, err := normalizeCategory(category)
	if err != nil {
		return nil, err
	}
	req.Category = category

	sel := valuation.SelectMethod(category, len(req.Comparables))
	return s.runMethod(sel.Method, NewMethodSelection(sel), req)
}

func (s *valuationService) runMethod(impl valuation.ValuationMethod, sel *MethodSelection, req ValuationRequest) (*ValuationOutcome, error) {
	category, err := normalizeCategory(req.Category)
	if err != nil {
		return nil, err
	}
	engineReq := req.Resolve(s.assumptions)
	v, err := s.run(req.Label, category, func() (valuation.Result, error) {
		return impl.Value(engineReq)
	})
	if err != nil {
		return nil, err
	}
	return &ValuationOutcome{Selection: sel, Valuation: v}, nil
}

// Resolve completes every optional input of r with a so the engine receives
// a full request.
func (r ValuationRequest) Resolve(a valuation.Assumptions) valuation.Request {
	out := valuation.Request{
		Comparables: r.Comparables,
		Weights:     r.Weights,
		Sensitivity: r.Sensitivity,
	}
	if out.Weights == nil {
		out.Weights = a.Comparison.Weights
	}
	if r.Subject != nil {
		subject := *r.Subject
		out.Subject = &subject
	}
	if r.Development != nil {
		d := r.Development.Resolve(a.Residual)
		out.Development = &d
	}
	if r.CashFlow != nil {
		cf := r.CashFlow.Resolve(a.CashFlow)
		out.CashFlow = &cf
	}
	if r.Business != nil {
		b := r.Business.Resolve(a.Profits)
		out.Business = &b
	}
	return out
}

// run evaluates fn and archives its result.
func (s *valuationService) run(label string, category valuation.PropertyCategory, fn func() (valuation.Result, error)) (*models.Valuation, error) {
	start := time.Now()
	res, err := fn()
	if err != nil {
		logger.Get().Infow("valuation rejected", "category", category, "error", err.Error())
		return nil, err
	}

	record := models.NewValuation(res, category, label)
	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("valuation completed",
		"id", record.ID,
		"method", res.Method,
		"category", category,
		"total_value", record.TotalValue.String(),
		"flags", res.Flags,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return record, nil
}

// GetValuation returns an archived valuation.
func (s *valuationService) GetValuation(id string) (*models.Valuation, error) {
	if !models.IsValidID(id) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid valuation ID")
	}
	var v models.Valuation
	if err := s.db.Where("id = ?", id).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrValuationNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &v, nil
}

// ListValuations returns archived valuations in the requested order, newest
// first by default.
func (s *valuationService) ListValuations(page pagination.PageRequest, filter ValuationFilter) (*pagination.PageResponse[models.Valuation], error) {
	page.Defaults()

	base := s.db.Model(&models.Valuation{})
	if filter.Method != nil {
		base = base.Where("method = ?", *filter.Method)
	}
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var items []models.Valuation
	if err := base.Scopes(pagination.Paginate(page)).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(items, page.Page, page.PageSize, totalItems)
	return &resp, nil
}

func sensitivity(on bool) []valuation.Option {
	if on {
		return []valuation.Option{valuation.WithSensitivity()}
	}
	return nil
}

// normalizeCategory resolves aliases and rejects unknown categories. An
// empty category is allowed; it is only required for method selection.
func normalizeCategory(c valuation.PropertyCategory) (valuation.PropertyCategory, error) {
	if c == "" {
		return "", nil
	}
	parsed, ok := valuation.ParseCategory(string(c))
	if !ok {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown property category: "+string(c))
	}
	return parsed, nil
}

// resolveAlias maps aliases to their category and leaves unknown names for
// the selector's residential fallback.
func resolveAlias(c valuation.PropertyCategory) valuation.PropertyCategory {
	if parsed, ok := valuation.ParseCategory(string(c)); ok {
		return parsed
	}
	return c
}

// NewMethodSelection describes sel for callers.
func NewMethodSelection(sel valuation.Selection) *MethodSelection {
	m := sel.Method.Method()
	return &MethodSelection{
		Method:    m,
		Name:      m.Name(),
		Tier:      sel.Tier,
		Rationale: sel.Rationale,
	}
}
