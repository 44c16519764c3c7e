package services

import (
	"context"

	"appraisal/internal/models"
	"appraisal/internal/pagination"
	"appraisal/internal/valuation"
)

// ValuationFilter holds optional filter parameters for listing valuations.
type ValuationFilter struct {
	Method   *valuation.Method
	Category *valuation.PropertyCategory
}

// MethodSelection is the selector's choice as returned to callers.
type MethodSelection struct {
	Method    valuation.Method   `json:"method"`
	Name      string             `json:"name"`
	Tier      valuation.DataTier `json:"tier"`
	Rationale string             `json:"rationale"`
}

// ValuationOutcome pairs an archived valuation with the selection that
// produced it. Selection is nil when the caller named the method.
type ValuationOutcome struct {
	Selection *MethodSelection  `json:"selection,omitempty"`
	Valuation *models.Valuation `json:"valuation"`
}

// BatchOutcome is the result of one batch item. Exactly one of Outcome and
// Error is set.
type BatchOutcome struct {
	Index   int               `json:"index"`
	Outcome *ValuationOutcome `json:"outcome,omitempty"`
	Error   *BatchError       `json:"error,omitempty"`
}

// BatchError describes why a batch item failed.
type BatchError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValuationServicer defines the contract for running and archiving valuations.
type ValuationServicer interface {
	Compare(req ComparisonRequest) (*models.Valuation, error)
	Residual(req ResidualRequest) (*models.Valuation, error)
	DCF(req DCFRequest) (*models.Valuation, error)
	Profits(req ProfitsRequest) (*models.Valuation, error)
	SiteRent(req SiteRentRequest) (*models.Valuation, error)
	Run(req ValuationRequest) (*ValuationOutcome, error)
	Auto(req ValuationRequest) (*ValuationOutcome, error)
	Select(category valuation.PropertyCategory, comparableCount int) (*MethodSelection, error)
	RunBatch(ctx context.Context, reqs []ValuationRequest) ([]BatchOutcome, error)
	GetValuation(id string) (*models.Valuation, error)
	ListValuations(page pagination.PageRequest, filter ValuationFilter) (*pagination.PageResponse[models.Valuation], error)
	Defaults() valuation.Assumptions
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
