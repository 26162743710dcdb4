package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/internal/service"
)

type LedgerServicer interface {
	Deposit(ctx context.Context, args service.DepositArgs) (*service.WalletOperation, error)
	Withdraw(ctx context.Context, args service.WithdrawArgs) (*service.WalletOperation, error)
}

type SavingsServicer interface {
	CreateGoal(ctx context.Context, args service.CreateGoalArgs) (*domain.SavingsGoal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*domain.SavingsGoal, error)
	GetGoalsByMemberID(ctx context.Context, memberID int64) ([]domain.SavingsGoal, error)
	GetContributions(ctx context.Context, goalID uuid.UUID) ([]domain.SavingsContribution, error)
	GetRedemptions(ctx context.Context, goalID uuid.UUID) ([]domain.SavingsRedemption, error)
	RecordContribution(ctx context.Context, args service.ContributionArgs) (*service.ContributionOutcome, error)
	CollectSavings(ctx context.Context, args service.CollectionArgs) (*service.CollectionOutcome, error)
}

type TransactionServicer interface {
	GetByMemberID(
		ctx context.Context,
		memberID int64,
		filter repoargs.TransactionFilter,
	) ([]domain.Transaction, error)
	Summary(
		ctx context.Context,
		memberID int64,
		filter repoargs.TransactionFilter,
	) (*service.TransactionSummary, error)
}

type WalletServicer interface {
	GetBalance(ctx context.Context, member service.Member) *domain.Wallet
}
