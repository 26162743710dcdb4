package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
)

const transactionColumns = `id, created_at, updated_at, member_id, type, status, amount::text, description,
	occurred_at, channel, fee::text, reference, counterparty,
	balance_after::text, platform_balance_after::text, group_ref, goal_ref`

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

// Create добавляет запись журнала. Журнал append-only: UPDATE по transactions
// в репозитории отсутствует намеренно.
func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (
			id, member_id, type, status, amount, description, occurred_at, channel,
			fee, reference, counterparty, balance_after, platform_balance_after, group_ref, goal_ref
		) VALUES (
			$1, $2, $3, $4, $5::numeric, $6, $7, $8,
			$9::numeric, $10, $11, $12::numeric, $13::numeric, $14, $15
		)
		RETURNING ` + transactionColumns

	var fee *string
	if args.Fee != nil {
		feeStr := args.Fee.String()
		fee = &feeStr
	}

	transaction, err := scanTransaction(t.conn.QueryRow(ctx, query,
		uuid.New(),
		args.MemberID,
		args.Type,
		args.Status,
		args.Amount.String(),
		args.Description,
		args.OccurredAt,
		args.Channel,
		fee,
		args.Reference,
		args.Counterparty,
		args.BalanceAfter.String(),
		args.PlatformBalanceAfter.String(),
		args.GroupRef,
		args.GoalRef,
	))
	if err != nil {
		return nil, convertErr(err, "creating %s transaction for member %d", args.Type, args.MemberID)
	}
	return transaction, nil
}

// GetByMemberID возвращает записи журнала участника с учетом фильтра,
// отсортированные по occurred_at и created_at по убыванию.
func (t *TransactionRepository) GetByMemberID(
	ctx context.Context,
	memberID int64,
	filter repoargs.TransactionFilter,
) ([]domain.Transaction, error) {
	where, queryArgs := buildTransactionFilter(memberID, filter)

	query := `SELECT ` + transactionColumns + ` FROM transactions ` + where +
		` ORDER BY occurred_at DESC, created_at DESC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := t.conn.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "getting transactions for member %d", memberID)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting transactions for member %d", memberID)
		}
		transactions = append(transactions, *transaction)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting transactions for member %d", memberID)
	}
	return transactions, nil
}

// AggregateByMember возвращает группировку отфильтрованного журнала по паре
// (тип, статус). Порядок строк не гарантируется — сводку в нужном порядке
// собирает сервисный слой.
func (t *TransactionRepository) AggregateByMember(
	ctx context.Context,
	memberID int64,
	filter repoargs.TransactionFilter,
) ([]repoargs.TransactionAggregateRow, error) {
	where, queryArgs := buildTransactionFilter(memberID, filter)

	query := `
		SELECT type, status, COUNT(*), COALESCE(SUM(amount), 0)::text, MAX(occurred_at)
		FROM transactions ` + where + `
		GROUP BY type, status`

	rows, err := t.conn.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, convertErr(err, "aggregating transactions for member %d", memberID)
	}
	defer rows.Close()

	var aggregates []repoargs.TransactionAggregateRow
	for rows.Next() {
		var row repoargs.TransactionAggregateRow
		var amount string
		if scanErr := rows.Scan(&row.Type, &row.Status, &row.Count, &amount, &row.LastOccurredAt); scanErr != nil {
			return nil, convertErr(scanErr, "aggregating transactions for member %d", memberID)
		}
		row.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, convertErr(err, "aggregating transactions for member %d", memberID)
		}
		aggregates = append(aggregates, row)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "aggregating transactions for member %d", memberID)
	}
	return aggregates, nil
}

// buildTransactionFilter собирает WHERE из ненулевых полей фильтра.
func buildTransactionFilter(memberID int64, filter repoargs.TransactionFilter) (string, []any) {
	conditions := []string{"member_id = $1"}
	args := []any{memberID}

	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, transactionType := range filter.Types {
			types[i] = string(transactionType)
		}
		args = append(args, types)
		conditions = append(conditions, fmt.Sprintf("type = ANY($%d)", len(args)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			statuses[i] = string(status)
		}
		args = append(args, statuses)
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		conditions = append(conditions, fmt.Sprintf("occurred_at >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		conditions = append(conditions, fmt.Sprintf("occurred_at <= $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(description ILIKE $%d OR reference ILIKE $%d OR counterparty ILIKE $%d)", n, n, n))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var amount, balanceAfter, platformBalanceAfter string
	var fee *string

	err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
		&transaction.MemberID,
		&transaction.Type,
		&transaction.Status,
		&amount,
		&transaction.Description,
		&transaction.OccurredAt,
		&transaction.Channel,
		&fee,
		&transaction.Reference,
		&transaction.Counterparty,
		&balanceAfter,
		&platformBalanceAfter,
		&transaction.GroupRef,
		&transaction.GoalRef,
	)
	if err != nil {
		return nil, err
	}

	if transaction.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	if transaction.BalanceAfter, err = decimal.NewFromString(balanceAfter); err != nil {
		return nil, err
	}
	if transaction.PlatformBalanceAfter, err = decimal.NewFromString(platformBalanceAfter); err != nil {
		return nil, err
	}
	if fee != nil {
		feeDec, feeErr := decimal.NewFromString(*fee)
		if feeErr != nil {
			return nil, feeErr
		}
		transaction.Fee = &feeDec
	}
	return &transaction, nil
}
