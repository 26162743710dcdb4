package pgrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
)

const goalColumns = `id, created_at, updated_at, member_id, title, category,
	target_amount::text, current_amount::text, deadline`

const savingsEntryColumns = `id, created_at, goal_id, member_id, amount::text, channel, note, recorded_at`

type SavingsRepository struct {
	conn uow.DBTX
}

func NewSavingsRepository(conn uow.DBTX) *SavingsRepository {
	return &SavingsRepository{conn: conn}
}

func (s *SavingsRepository) CreateGoal(
	ctx context.Context,
	args repoargs.SavingsGoalCreate,
) (*domain.SavingsGoal, error) {
	query := `
		INSERT INTO savings_goals (id, member_id, title, category, target_amount, current_amount, deadline)
		VALUES ($1, $2, $3, $4, $5::numeric, 0, $6)
		RETURNING ` + goalColumns

	goal, err := scanGoal(s.conn.QueryRow(ctx, query,
		uuid.New(), args.MemberID, args.Title, args.Category, args.TargetAmount.String(), args.Deadline))
	if err != nil {
		return nil, convertErr(err, "creating savings goal for member %d", args.MemberID)
	}
	return goal, nil
}

func (s *SavingsRepository) GetGoal(ctx context.Context, id uuid.UUID) (*domain.SavingsGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM savings_goals WHERE id = $1`
	goal, err := scanGoal(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "getting savings goal %s", id)
	}
	return goal, nil
}

func (s *SavingsRepository) GetGoalsByMemberID(ctx context.Context, memberID int64) ([]domain.SavingsGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM savings_goals WHERE member_id = $1 ORDER BY deadline, title`

	rows, err := s.conn.Query(ctx, query, memberID)
	if err != nil {
		return nil, convertErr(err, "getting savings goals for member %d", memberID)
	}
	defer rows.Close()

	var goals []domain.SavingsGoal
	for rows.Next() {
		goal, scanErr := scanGoal(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting savings goals for member %d", memberID)
		}
		goals = append(goals, *goal)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting savings goals for member %d", memberID)
	}
	return goals, nil
}

// LockGoalForUpdate перечитывает цель под эксклюзивной блокировкой строки.
func (s *SavingsRepository) LockGoalForUpdate(ctx context.Context, id uuid.UUID) (*domain.SavingsGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM savings_goals WHERE id = $1 FOR UPDATE`
	goal, err := scanGoal(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "locking savings goal %s", id)
	}
	return goal, nil
}

func (s *SavingsRepository) UpdateCurrentAmount(
	ctx context.Context,
	id uuid.UUID,
	currentAmount decimal.Decimal,
) (*domain.SavingsGoal, error) {
	query := `
		UPDATE savings_goals SET current_amount = $2::numeric, updated_at = now()
		WHERE id = $1
		RETURNING ` + goalColumns

	goal, err := scanGoal(s.conn.QueryRow(ctx, query, id, currentAmount.String()))
	if err != nil {
		return nil, convertErr(err, "updating current amount of goal %s", id)
	}
	return goal, nil
}

func (s *SavingsRepository) CreateContribution(
	ctx context.Context,
	args repoargs.SavingsEntryCreate,
) (*domain.SavingsContribution, error) {
	query := `
		INSERT INTO savings_contributions (id, goal_id, member_id, amount, channel, note, recorded_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
		RETURNING ` + savingsEntryColumns

	var contribution domain.SavingsContribution
	err := scanSavingsEntry(s.conn.QueryRow(ctx, query,
		uuid.New(), args.GoalID, args.MemberID, args.Amount.String(), args.Channel, args.Note, args.RecordedAt),
		&contribution.ID, &contribution.CreatedAt, &contribution.GoalID, &contribution.MemberID,
		&contribution.Amount, &contribution.Channel, &contribution.Note, &contribution.RecordedAt)
	if err != nil {
		return nil, convertErr(err, "creating contribution for goal %s", args.GoalID)
	}
	return &contribution, nil
}

func (s *SavingsRepository) CreateRedemption(
	ctx context.Context,
	args repoargs.SavingsEntryCreate,
) (*domain.SavingsRedemption, error) {
	query := `
		INSERT INTO savings_redemptions (id, goal_id, member_id, amount, channel, note, recorded_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
		RETURNING ` + savingsEntryColumns

	var redemption domain.SavingsRedemption
	err := scanSavingsEntry(s.conn.QueryRow(ctx, query,
		uuid.New(), args.GoalID, args.MemberID, args.Amount.String(), args.Channel, args.Note, args.RecordedAt),
		&redemption.ID, &redemption.CreatedAt, &redemption.GoalID, &redemption.MemberID,
		&redemption.Amount, &redemption.Channel, &redemption.Note, &redemption.RecordedAt)
	if err != nil {
		return nil, convertErr(err, "creating redemption for goal %s", args.GoalID)
	}
	return &redemption, nil
}

func (s *SavingsRepository) GetContributionsByGoal(
	ctx context.Context,
	goalID uuid.UUID,
) ([]domain.SavingsContribution, error) {
	query := `SELECT ` + savingsEntryColumns + ` FROM savings_contributions
		WHERE goal_id = $1 ORDER BY recorded_at DESC`

	rows, err := s.conn.Query(ctx, query, goalID)
	if err != nil {
		return nil, convertErr(err, "getting contributions for goal %s", goalID)
	}
	defer rows.Close()

	var contributions []domain.SavingsContribution
	for rows.Next() {
		var c domain.SavingsContribution
		scanErr := scanSavingsEntry(rows,
			&c.ID, &c.CreatedAt, &c.GoalID, &c.MemberID, &c.Amount, &c.Channel, &c.Note, &c.RecordedAt)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting contributions for goal %s", goalID)
		}
		contributions = append(contributions, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting contributions for goal %s", goalID)
	}
	return contributions, nil
}

func (s *SavingsRepository) GetRedemptionsByGoal(
	ctx context.Context,
	goalID uuid.UUID,
) ([]domain.SavingsRedemption, error) {
	query := `SELECT ` + savingsEntryColumns + ` FROM savings_redemptions
		WHERE goal_id = $1 ORDER BY recorded_at DESC`

	rows, err := s.conn.Query(ctx, query, goalID)
	if err != nil {
		return nil, convertErr(err, "getting redemptions for goal %s", goalID)
	}
	defer rows.Close()

	var redemptions []domain.SavingsRedemption
	for rows.Next() {
		var r domain.SavingsRedemption
		scanErr := scanSavingsEntry(rows,
			&r.ID, &r.CreatedAt, &r.GoalID, &r.MemberID, &r.Amount, &r.Channel, &r.Note, &r.RecordedAt)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting redemptions for goal %s", goalID)
		}
		redemptions = append(redemptions, r)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting redemptions for goal %s", goalID)
	}
	return redemptions, nil
}

func scanGoal(row pgx.Row) (*domain.SavingsGoal, error) {
	var goal domain.SavingsGoal
	var targetAmount, currentAmount string

	err := row.Scan(
		&goal.ID,
		&goal.CreatedAt,
		&goal.UpdatedAt,
		&goal.MemberID,
		&goal.Title,
		&goal.Category,
		&targetAmount,
		&currentAmount,
		&goal.Deadline,
	)
	if err != nil {
		return nil, err
	}

	if goal.TargetAmount, err = decimal.NewFromString(targetAmount); err != nil {
		return nil, err
	}
	if goal.CurrentAmount, err = decimal.NewFromString(currentAmount); err != nil {
		return nil, err
	}
	return &goal, nil
}

// scanSavingsEntry взносы и выплаты имеют одинаковый набор колонок, поэтому
// сканируются одним помощником.
func scanSavingsEntry(
	row pgx.Row,
	id *uuid.UUID,
	createdAt *time.Time,
	goalID *uuid.UUID,
	memberID *int64,
	amount *decimal.Decimal,
	channel *string,
	note *string,
	recordedAt *time.Time,
) error {
	var amountStr string
	if err := row.Scan(id, createdAt, goalID, memberID, &amountStr, channel, note, recordedAt); err != nil {
		return err
	}
	parsed, err := decimal.NewFromString(amountStr)
	if err != nil {
		return err
	}
	*amount = parsed
	return nil
}
