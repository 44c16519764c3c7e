package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/models"
	"appraisal/internal/pagination"
	"appraisal/internal/services"
	"appraisal/internal/valuation"
)

// ValuationHandler handles valuation requests and the valuation archive.
type ValuationHandler struct {
	valuationService services.ValuationServicer
	auditService     services.AuditServicer
}

// NewValuationHandler creates a new ValuationHandler.
func NewValuationHandler(valuationService services.ValuationServicer, auditService services.AuditServicer) *ValuationHandler {
	return &ValuationHandler{valuationService: valuationService, auditService: auditService}
}

// BatchRequest represents the request payload for a batch valuation.
type BatchRequest struct {
	Items []services.ValuationRequest `json:"items" binding:"required,min=1,max=100,dive"`
}

// BatchResponse holds one outcome per batch item, in request order.
type BatchResponse struct {
	Results   []services.BatchOutcome `json:"results"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
}

// SalesComparison values a property against comparable sales.
// @Summary     Sales comparison valuation
// @Description Value a subject property from the adjusted prices of comparable sales
// @Tags        valuations
// @Accept      json
// @Produce     json
// @Param       request body services.ComparisonRequest true "Subject and comparables"
// @Success     201 {object} models.Valuation "Archived valuation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Insufficient data or invalid assumptions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /valuations/sales-comparison [post]
func (h *ValuationHandler) SalesComparison(c *gin.Context) {
	var req services.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	v, err := h.valuationService.Compare(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit(c, v, map[string]any{"comparables": len(req.Comparables)})
	c.JSON(http.StatusCreated, gin.H{"valuation": v})
}

// Residual values a development site.
// @Summary     Residual land valuation
// @Description Value a development site as GDV less development costs and developer profit
// @Tags        valuations
// @Accept      json
// @Produce     json
// @Param       request body services.ResidualRequest true "Development scheme"
// @Success     201 {object} models.Valuation "Archived valuation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Invalid assumptions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /valuations/residual [post]
func (h *ValuationHandler) Residual(c *gin.Context) {
	var req services.ResidualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	v, err := h.valuationService.Residual(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit(c, v, map[string]any{"sensitivity": req.Sensitivity})
	c.JSON(http.StatusCreated, gin.H{"valuation": v})
}

// DCF values an income-producing property.
// @Summary     Discounted cash flow valuation
// @Description Value a property from its forecast net cash flows and terminal value
// @Tags        valuations
// @Accept      json
// @Produce     json
// @Param       request body services.DCFRequest true "Income forecast"
// @Success     201 {object} models.Valuation "Archived valuation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Invalid assumptions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /valuations/dcf [post]
func (h *ValuationHandler) DCF(c *gin.Context) {
	var req services.DCFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	v, err := h.valuationService.DCF(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit(c, v, nil)
	c.JSON(http.StatusCreated, gin.H{"valuation": v})
}

// Profits values a trading property from its accounts.
// @Summary     Profits method valuation
// @Description Derive market rent for a trading property from its divisible balance
// @Tags        valuations
// @Accept      json
// @Produce     json
// @Param       request body services.ProfitsRequest true "Business financials"
// @Success     201 {object} models.Valuation "Archived valuation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Invalid assumptions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /valuations/profits [post]
func (h *ValuationHandler) Profits(c *gin.Context) {
	var req services.ProfitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	v, err := h.valuationService.Profits(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit(c, v, map[string]any{"revenue_sources": len(req.RevenueSources)})
	c.JSON(http.StatusCreated, gin.H{"valuation": v})
}

// SiteRent prices the ground rent of a site.
// @Summary     Site rental value
// @Description Price the annual and monthly ground rent of a site under a lease type
// @Tags        valuations
// @Accept      json
// @Produce     json
// @Param       request body services.SiteRentRequest true "Site and lease terms"
// @Success     201 {object} models.Valuation "Archived valuation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /valuations/site-rent [post]
func (h *ValuationHandler) SiteRent(c *gin.Context) {
	var req services.SiteRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	v, err := h.valuationService.SiteRent(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit(c, v, map[string]any{"basis": req.Basis, "lease_type": req.LeaseType})
	c.JSON(http.StatusCreated, gin.H{"valuation": v})
}

// Auto selects a method for the property and runs it. A named method in the
// request is honoured instead of the selector's choice.
// @Summary     Select and run a valuation method
// @Description Pick the method for the category and available comparables, then value the property
// @Tags        valuations
// @Accept      json
// @Produce     json
// @Param       request body services.ValuationRequest true "Property and method inputs"
// @Success     201 {object} services.ValuationOutcome "Selection and archived valuation"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Insufficient data or invalid assumptions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /valuations/auto [post]
func (h *ValuationHandler) Auto(c *gin.Context) {
	var req services.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	out, err := h.valuationService.Run(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]any{}
	if out.Selection != nil {
		changes["selected"] = out.Selection.Method
		changes["tier"] = out.Selection.Tier
	}
	h.audit(c, out.Valuation, changes)
	c.JSON(http.StatusCreated, out)
}

// Batch values several properties in one request.
// @Summary     Batch valuation
// @Description Value up to 100 properties concurrently; each item succeeds or fails on its own
// @Tags        valuations
// @Accept      json
// @Produce     json
// @Param       request body BatchRequest true "Valuation requests"
// @Success     200 {object} BatchResponse "Per-item outcomes in request order"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /valuations/batch [post]
func (h *ValuationHandler) Batch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	outcomes, err := h.valuationService.RunBatch(c.Request.Context(), req.Items)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := BatchResponse{Results: outcomes}
	for _, o := range outcomes {
		if o.Error != nil {
			resp.Failed++
			continue
		}
		resp.Succeeded++
	}

	h.auditService.Log(services.AuditRunBatch, "batch", "", c.ClientIP(),
		map[string]any{"items": len(outcomes), "succeeded": resp.Succeeded, "failed": resp.Failed})
	c.JSON(http.StatusOK, resp)
}

// GetValuations lists archived valuations.
// @Summary     List valuations
// @Description Get a paginated list of archived valuations, newest first unless sort is given
// @Tags        valuations
// @Produce     json
// @Param       method    query string false "Filter by method"
// @Param       category  query string false "Filter by property category"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       sort      query string false "Order: newest, oldest, value_desc or value_asc (default newest)"
// @Success     200 {object} pagination.PageResponse[models.Valuation] "Paginated valuations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /valuations [get]
func (h *ValuationHandler) GetValuations(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	var filter services.ValuationFilter
	if v := c.Query("method"); v != "" {
		m := valuation.Method(v)
		if !knownMethod(m) {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown valuation method: "+v))
			return
		}
		filter.Method = &m
	}
	if v := c.Query("category"); v != "" {
		cat, ok := valuation.ParseCategory(v)
		if !ok {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown property category: "+v))
			return
		}
		filter.Category = &cat
	}

	result, err := h.valuationService.ListValuations(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetValuation returns one archived valuation.
// @Summary     Get valuation by ID
// @Description Get an archived valuation with its full breakdown
// @Tags        valuations
// @Produce     json
// @Param       id path string true "Valuation ID"
// @Success     200 {object} models.Valuation "Valuation details"
// @Failure     400 {object} ErrorResponse "Invalid valuation ID"
// @Failure     404 {object} ErrorResponse "Valuation not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /valuations/{id} [get]
func (h *ValuationHandler) GetValuation(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	v, err := h.valuationService.GetValuation(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valuation": v})
}

// SelectMethod recommends a valuation method without running it.
// @Summary     Recommend a valuation method
// @Description Pick the method for a property category given the number of comparables on hand
// @Tags        methods
// @Produce     json
// @Param       category    query string true  "Property category"
// @Param       comparables query int    false "Number of comparables (default 0)"
// @Success     200 {object} services.MethodSelection "Recommended method"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /methods/select [get]
func (h *ValuationHandler) SelectMethod(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required"))
		return
	}

	count := 0
	if v := c.Query("comparables"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "comparables must be an integer"))
			return
		}
		count = n
	}

	sel, err := h.valuationService.Select(valuation.PropertyCategory(category), count)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sel)
}

// GetAssumptions returns the defaults used to complete partial requests.
// @Summary     Default assumptions
// @Description Get the house defaults applied when a request omits an optional rate
// @Tags        methods
// @Produce     json
// @Success     200 {object} valuation.Assumptions "Default assumptions"
// @Router      /assumptions [get]
func (h *ValuationHandler) GetAssumptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.valuationService.Defaults())
}

func (h *ValuationHandler) audit(c *gin.Context, v *models.Valuation, changes map[string]any) {
	if changes == nil {
		changes = map[string]any{}
	}
	changes["method"] = v.Method
	changes["category"] = v.Category
	changes["total_value"] = v.TotalValue.String()
	h.auditService.Log(services.AuditRunValuation, "valuation", v.ID, c.ClientIP(), changes)
}

func knownMethod(m valuation.Method) bool {
	if m == valuation.MethodSiteRent {
		return true
	}
	for _, known := range valuation.Methods {
		if m == known {
			return true
		}
	}
	return false
}
