package handler

import (
	"github.com/ayumu-dev/regi-api/internal/application/service"
	"github.com/ayumu-dev/regi-api/internal/domain/enum"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/request"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/response"
	"github.com/ayumu-dev/regi-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles transaction history HTTP requests
type TransactionHandler struct {
	historyService *service.HistoryService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(historyService *service.HistoryService) *TransactionHandler {
	return &TransactionHandler{historyService: historyService}
}

// List handles listing transactions with search and date-range filters
func (h *TransactionHandler) List(c *gin.Context) {
	var filter request.ListTransactionsRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.historyService.ListTransactions(c.Request.Context(), service.HistoryQuery{
		Search: filter.Search,
		Range:  enum.DateRange(filter.Range),
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Get handles fetching a single transaction with its line items
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	txn, err := h.historyService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", txn)
}
