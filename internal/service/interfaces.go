package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type WalletRepository interface {
	EnsurePlatform(ctx context.Context, currency string) (*domain.Wallet, error)
	EnsureForMember(ctx context.Context, args repoargs.EnsureMemberWallet) (*domain.Wallet, error)
	GetByMemberID(ctx context.Context, memberID int64) (*domain.Wallet, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) (*domain.Wallet, error)
	TouchUpdatedAt(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error)
	GetByMemberID(
		ctx context.Context,
		memberID int64,
		filter repoargs.TransactionFilter,
	) ([]domain.Transaction, error)
	AggregateByMember(
		ctx context.Context,
		memberID int64,
		filter repoargs.TransactionFilter,
	) ([]repoargs.TransactionAggregateRow, error)
}

type SavingsRepository interface {
	CreateGoal(ctx context.Context, args repoargs.SavingsGoalCreate) (*domain.SavingsGoal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*domain.SavingsGoal, error)
	GetGoalsByMemberID(ctx context.Context, memberID int64) ([]domain.SavingsGoal, error)
	LockGoalForUpdate(ctx context.Context, id uuid.UUID) (*domain.SavingsGoal, error)
	UpdateCurrentAmount(
		ctx context.Context,
		id uuid.UUID,
		currentAmount decimal.Decimal,
	) (*domain.SavingsGoal, error)
	CreateContribution(ctx context.Context, args repoargs.SavingsEntryCreate) (*domain.SavingsContribution, error)
	CreateRedemption(ctx context.Context, args repoargs.SavingsEntryCreate) (*domain.SavingsRedemption, error)
	GetContributionsByGoal(ctx context.Context, goalID uuid.UUID) ([]domain.SavingsContribution, error)
	GetRedemptionsByGoal(ctx context.Context, goalID uuid.UUID) ([]domain.SavingsRedemption, error)
}

// SavingsLedger часть леджера, которую сервис накоплений выполняет внутри
// собственной транзакции (целевая строка уже заблокирована к этому моменту).
type SavingsLedger interface {
	ApplySavingsContributionTx(ctx context.Context, tx uow.TX, args SavingsTransferArgs) (*WalletOperation, error)
	ApplySavingsPayoutTx(ctx context.Context, tx uow.TX, args SavingsTransferArgs) (*WalletOperation, error)
}
