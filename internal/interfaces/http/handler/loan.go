package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appLoan "github.com/loanbook/backend/internal/application/loan"
	"github.com/loanbook/backend/internal/interfaces/http/dto"
)

// LoanHandler handles loan and installment plan endpoints
type LoanHandler struct {
	BaseHandler
	service *appLoan.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(service *appLoan.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// RegisterRoutes registers loan routes on the given router group
func (h *LoanHandler) RegisterRoutes(r *gin.RouterGroup) {
	loans := r.Group("/loans")
	{
		loans.POST("", h.CreateLoan)
		loans.GET("", h.ListLoans)
		loans.GET("/selected", h.GetSelectedLoan)
		loans.PUT("/selected", h.SelectLoan)
		loans.GET("/:id", h.GetLoan)
		loans.DELETE("/:id", h.DeleteLoan)

		loans.POST("/:id/installments/initial", h.CreateInitialInstallment)
		loans.POST("/:id/installments", h.InsertInstallment)
		loans.PUT("/:id/installments/:installmentID", h.EditInstallment)
		loans.POST("/:id/installments/:installmentID/pay", h.MarkInstallmentPaid)
		loans.PUT("/:id/installments/:installmentID/due-date", h.UpdateInstallmentDueDate)
		loans.DELETE("/:id/installments/:installmentID", h.DeleteInstallment)
	}
}

// dueDateLayout is the wire format for plan dates. Times of day are not
// part of the plan model.
const dueDateLayout = "2006-01-02"

type createLoanRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	TotalAmount decimal.Decimal `json:"total_amount" binding:"required"`
}

type selectLoanRequest struct {
	ID string `json:"id" binding:"required,uuid"`
}

type createInitialInstallmentRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

type insertInstallmentRequest struct {
	Index      int             `json:"index" binding:"min=0"`
	Title      string          `json:"title" binding:"required,max=200"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	DueDate    string          `json:"due_date" binding:"required"`
}

type editInstallmentRequest struct {
	Title      string          `json:"title" binding:"required,max=200"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	DueDate    string          `json:"due_date" binding:"required"`
}

type updateDueDateRequest struct {
	DueDate string `json:"due_date" binding:"required"`
}

func parseDueDate(raw string) (time.Time, bool) {
	date, err := time.Parse(dueDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// CreateLoan handles POST /api/v1/loans
func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req createLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.service.CreateLoan(c.Request.Context(), appLoan.CreateLoanRequest{
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListLoans handles GET /api/v1/loans
func (h *LoanHandler) ListLoans(c *gin.Context) {
	result, err := h.service.ListLoans(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetLoan handles GET /api/v1/loans/:id
func (h *LoanHandler) GetLoan(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid loan ID")
		return
	}

	result, err := h.service.GetLoan(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeleteLoan handles DELETE /api/v1/loans/:id
func (h *LoanHandler) DeleteLoan(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid loan ID")
		return
	}

	if err := h.service.DeleteLoan(c.Request.Context(), uuid.MustParse(req.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// SelectLoan handles PUT /api/v1/loans/selected
func (h *LoanHandler) SelectLoan(c *gin.Context) {
	var req selectLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.service.SelectLoan(c.Request.Context(), uuid.MustParse(req.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GetSelectedLoan handles GET /api/v1/loans/selected
func (h *LoanHandler) GetSelectedLoan(c *gin.Context) {
	result, err := h.service.SelectedLoan(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// CreateInitialInstallment handles POST /api/v1/loans/:id/installments/initial
func (h *LoanHandler) CreateInitialInstallment(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid loan ID")
		return
	}

	var req createInitialInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.service.CreateInitialInstallment(c.Request.Context(), appLoan.CreateInitialRequest{
		LoanID: uuid.MustParse(uri.ID),
		Title:  req.Title,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// InsertInstallment handles POST /api/v1/loans/:id/installments
func (h *LoanHandler) InsertInstallment(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid loan ID")
		return
	}

	var req insertInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	dueDate, ok := parseDueDate(req.DueDate)
	if !ok {
		h.BadRequest(c, "Due date must be in YYYY-MM-DD format")
		return
	}

	result, err := h.service.InsertInstallment(c.Request.Context(), appLoan.InsertInstallmentRequest{
		LoanID:     uuid.MustParse(uri.ID),
		Index:      req.Index,
		Title:      req.Title,
		Amount:     req.Amount,
		Percentage: req.Percentage,
		DueDate:    dueDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// EditInstallment handles PUT /api/v1/loans/:id/installments/:installmentID
func (h *LoanHandler) EditInstallment(c *gin.Context) {
	var uri dto.InstallmentIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid loan or installment ID")
		return
	}

	var req editInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	dueDate, ok := parseDueDate(req.DueDate)
	if !ok {
		h.BadRequest(c, "Due date must be in YYYY-MM-DD format")
		return
	}

	result, err := h.service.EditInstallment(c.Request.Context(), appLoan.EditInstallmentRequest{
		LoanID:        uuid.MustParse(uri.ID),
		InstallmentID: uuid.MustParse(uri.InstallmentID),
		Title:         req.Title,
		Amount:        req.Amount,
		Percentage:    req.Percentage,
		DueDate:       dueDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// MarkInstallmentPaid handles POST /api/v1/loans/:id/installments/:installmentID/pay
func (h *LoanHandler) MarkInstallmentPaid(c *gin.Context) {
	var uri dto.InstallmentIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid loan or installment ID")
		return
	}

	result, err := h.service.MarkInstallmentPaid(c.Request.Context(), appLoan.MarkPaidRequest{
		LoanID:        uuid.MustParse(uri.ID),
		InstallmentID: uuid.MustParse(uri.InstallmentID),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateInstallmentDueDate handles PUT /api/v1/loans/:id/installments/:installmentID/due-date
func (h *LoanHandler) UpdateInstallmentDueDate(c *gin.Context) {
	var uri dto.InstallmentIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid loan or installment ID")
		return
	}

	var req updateDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	dueDate, ok := parseDueDate(req.DueDate)
	if !ok {
		h.BadRequest(c, "Due date must be in YYYY-MM-DD format")
		return
	}

	result, err := h.service.UpdateInstallmentDueDate(c.Request.Context(), appLoan.UpdateDueDateRequest{
		LoanID:        uuid.MustParse(uri.ID),
		InstallmentID: uuid.MustParse(uri.InstallmentID),
		DueDate:       dueDate,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DeleteInstallment handles DELETE /api/v1/loans/:id/installments/:installmentID
func (h *LoanHandler) DeleteInstallment(c *gin.Context) {
	var uri dto.InstallmentIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid loan or installment ID")
		return
	}

	result, err := h.service.DeleteInstallment(c.Request.Context(), appLoan.DeleteInstallmentRequest{
		LoanID:        uuid.MustParse(uri.ID),
		InstallmentID: uuid.MustParse(uri.InstallmentID),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
