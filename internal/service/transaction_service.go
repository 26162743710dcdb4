package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
)

type TransactionService struct {
	uow             uow.UOW
	transactionRepo TransactionRepository
}

func NewTransactionService(u uow.UOW) (*TransactionService, error) {
	transactionRepo, repoErr :=
		uow.GetRepositoryAs[TransactionRepository](u, uow.RepositoryName(repoargs.TransactionRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return &TransactionService{
		uow:             u,
		transactionRepo: transactionRepo,
	}, nil
}

// GetByMemberID возвращает журнал участника, новые записи первыми.
func (t *TransactionService) GetByMemberID(
	ctx context.Context,
	memberID int64,
	filter repoargs.TransactionFilter,
) ([]domain.Transaction, error) {
	transactions, err := t.transactionRepo.GetByMemberID(ctx, memberID, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

type TypeTotal struct {
	Type   domain.TransactionType
	Count  int64
	Amount decimal.Decimal
}

type StatusTotal struct {
	Status domain.TransactionStatus
	Count  int64
}

type TransactionSummary struct {
	TotalCount        int64
	TotalInflow       decimal.Decimal
	TotalOutflow      decimal.Decimal
	NetCashflow       decimal.Decimal
	PendingCount      int64
	LastTransactionAt *time.Time
	TotalsByType      []TypeTotal
	TotalsByStatus    []StatusTotal
}

// Summary собирает сводку по отфильтрованному журналу. Разбивки идут в порядке
// объявления типов и статусов, отсутствующие значения присутствуют с нулями.
func (t *TransactionService) Summary(
	ctx context.Context,
	memberID int64,
	filter repoargs.TransactionFilter,
) (*TransactionSummary, error) {
	rows, err := t.transactionRepo.AggregateByMember(ctx, memberID, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	zero := decimal.NewFromInt(0)
	summary := TransactionSummary{
		TotalInflow:  zero,
		TotalOutflow: zero,
		NetCashflow:  zero,
	}

	byType := make(map[domain.TransactionType]*TypeTotal)
	byStatus := make(map[domain.TransactionStatus]int64)

	for _, row := range rows {
		summary.TotalCount += row.Count

		total, ok := byType[row.Type]
		if !ok {
			total = &TypeTotal{Type: row.Type, Amount: zero}
			byType[row.Type] = total
		}
		total.Count += row.Count
		total.Amount = total.Amount.Add(row.Amount)

		byStatus[row.Status] += row.Count
		if row.Status == domain.TransactionStatusPending {
			summary.PendingCount += row.Count
		}

		if summary.LastTransactionAt == nil || row.LastOccurredAt.After(*summary.LastTransactionAt) {
			last := row.LastOccurredAt
			summary.LastTransactionAt = &last
		}
	}

	for _, inflowType := range domain.InflowTypes {
		if total, ok := byType[inflowType]; ok {
			summary.TotalInflow = summary.TotalInflow.Add(total.Amount)
		}
	}
	for _, outflowType := range domain.OutflowTypes {
		if total, ok := byType[outflowType]; ok {
			summary.TotalOutflow = summary.TotalOutflow.Add(total.Amount)
		}
	}
	summary.NetCashflow = summary.TotalInflow.Sub(summary.TotalOutflow)

	summary.TotalsByType = make([]TypeTotal, 0, len(domain.TransactionTypes))
	for _, transactionType := range domain.TransactionTypes {
		if total, ok := byType[transactionType]; ok {
			summary.TotalsByType = append(summary.TotalsByType, *total)
		} else {
			summary.TotalsByType = append(summary.TotalsByType, TypeTotal{Type: transactionType, Amount: zero})
		}
	}
	summary.TotalsByStatus = make([]StatusTotal, 0, len(domain.TransactionStatuses))
	for _, status := range domain.TransactionStatuses {
		summary.TotalsByStatus = append(summary.TotalsByStatus, StatusTotal{
			Status: status,
			Count:  byStatus[status],
		})
	}

	return &summary, nil
}
