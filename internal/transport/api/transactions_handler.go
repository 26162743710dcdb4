package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/internal/service"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type TransactionsHandler struct {
	transactionSvs TransactionServicer
}

func NewTransactionsHandler(transactionSvs TransactionServicer) *TransactionsHandler {
	return &TransactionsHandler{
		transactionSvs: transactionSvs,
	}
}

// Index GET RouteGroup + TransactionsRoute.
func (t *TransactionsHandler) Index(c *gin.Context) {
	currentMember := getCurrentMember(c)

	filter, filterErr := buildFilterFromQuery(c)
	if filterErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, filterErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := t.transactionSvs.GetByMemberID(reqCtx, currentMember.ID, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		response[i] = newTransactionResponse(&transactions[i])
	}
	c.JSON(http.StatusOK, response)
}

type TypeTotalResponse struct {
	Type   string `json:"type"`
	Count  int64  `json:"count"`
	Amount string `json:"amount"`
}

type StatusTotalResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type SummaryResponse struct {
	TotalCount        int64                 `json:"totalCount"`
	TotalInflow       string                `json:"totalInflow"`
	TotalOutflow      string                `json:"totalOutflow"`
	NetCashflow       string                `json:"netCashflow"`
	PendingCount      int64                 `json:"pendingCount"`
	LastTransactionAt *time.Time            `json:"lastTransactionAt"`
	TotalsByType      []TypeTotalResponse   `json:"totalsByType"`
	TotalsByStatus    []StatusTotalResponse `json:"totalsByStatus"`
}

func newSummaryResponse(summary *service.TransactionSummary) SummaryResponse {
	response := SummaryResponse{
		TotalCount:        summary.TotalCount,
		TotalInflow:       summary.TotalInflow.StringFixed(2),
		TotalOutflow:      summary.TotalOutflow.StringFixed(2),
		NetCashflow:       summary.NetCashflow.StringFixed(2),
		PendingCount:      summary.PendingCount,
		LastTransactionAt: summary.LastTransactionAt,
		TotalsByType:      make([]TypeTotalResponse, len(summary.TotalsByType)),
		TotalsByStatus:    make([]StatusTotalResponse, len(summary.TotalsByStatus)),
	}
	for i, total := range summary.TotalsByType {
		response.TotalsByType[i] = TypeTotalResponse{
			Type:   string(total.Type),
			Count:  total.Count,
			Amount: total.Amount.StringFixed(2),
		}
	}
	for i, total := range summary.TotalsByStatus {
		response.TotalsByStatus[i] = StatusTotalResponse{
			Status: string(total.Status),
			Count:  total.Count,
		}
	}
	return response
}

// Summary GET RouteGroup + TransactionsSummaryRoute.
func (t *TransactionsHandler) Summary(c *gin.Context) {
	currentMember := getCurrentMember(c)

	filter, filterErr := buildFilterFromQuery(c)
	if filterErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, filterErr).SetType(gin.ErrorTypeBind)
		return
	}
	// сводка считается по всему отфильтрованному журналу, пагинация ее не режет.
	filter.Limit = 0
	filter.Offset = 0

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, err := t.transactionSvs.Summary(reqCtx, currentMember.ID, filter)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newSummaryResponse(summary))
}

// buildFilterFromQuery разбирает query-параметры журнала. Принимаются как
// множественные значения (?types=a,b), так и одиночные (?type=a).
func buildFilterFromQuery(c *gin.Context) (repoargs.TransactionFilter, error) {
	var filter repoargs.TransactionFilter

	for _, raw := range splitCommaParam(c, "types", "type") {
		filter.Types = append(filter.Types, domain.TransactionType(raw))
	}
	for _, raw := range splitCommaParam(c, "statuses", "status") {
		filter.Statuses = append(filter.Statuses, domain.TransactionStatus(raw))
	}

	if start := c.Query("start"); start != "" {
		parsed, err := time.Parse(time.RFC3339, start)
		if err != nil {
			return filter, err //nolint:wrapcheck
		}
		filter.Start = &parsed
	}
	if end := c.Query("end"); end != "" {
		parsed, err := time.Parse(time.RFC3339, end)
		if err != nil {
			return filter, err //nolint:wrapcheck
		}
		filter.End = &parsed
	}

	filter.Search = strings.TrimSpace(c.Query("search"))

	page := parsePositiveUint(c.Query("page"), 1)
	pageSize := parsePositiveUint(c.Query("page_size"), defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	return filter, nil
}

func splitCommaParam(c *gin.Context, plural string, singular string) []string {
	raw := c.Query(plural)
	if raw == "" {
		raw = c.Query(singular)
	}
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func parsePositiveUint(raw string, fallback uint) uint {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return fallback
	}
	return uint(parsed)
}
