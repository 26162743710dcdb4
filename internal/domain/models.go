package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit      TransactionType = "deposit"
	TransactionTypeWithdrawal   TransactionType = "withdrawal"
	TransactionTypeContribution TransactionType = "contribution"
	TransactionTypePayout       TransactionType = "payout"
	TransactionTypeSavings      TransactionType = "savings"
)

// TransactionTypes порядок объявления фиксирован: в этом порядке строится разбивка сводки.
var TransactionTypes = []TransactionType{
	TransactionTypeDeposit,
	TransactionTypeWithdrawal,
	TransactionTypeContribution,
	TransactionTypePayout,
	TransactionTypeSavings,
}

// InflowTypes и OutflowTypes — фиксированная классификация направления движения денег
// относительно кошелька участника.
var (
	InflowTypes  = []TransactionType{TransactionTypeDeposit, TransactionTypePayout}
	OutflowTypes = []TransactionType{TransactionTypeWithdrawal, TransactionTypeContribution, TransactionTypeSavings}
)

type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusFailed  TransactionStatus = "failed"
)

var TransactionStatuses = []TransactionStatus{
	TransactionStatusSuccess,
	TransactionStatusPending,
	TransactionStatusFailed,
}

func ValidTransactionStatus(status TransactionStatus) bool {
	for _, s := range TransactionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Wallet struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
	MemberID   *int64
	Name       string
	IsPlatform bool
	Balance    decimal.Decimal
	Currency   string
}

type Transaction struct {
	ID                   uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
	MemberID             int64
	Type                 TransactionType
	Status               TransactionStatus
	Amount               decimal.Decimal
	Description          string
	OccurredAt           time.Time
	Channel              string
	Fee                  *decimal.Decimal
	Reference            string
	Counterparty         string
	BalanceAfter         decimal.Decimal
	PlatformBalanceAfter decimal.Decimal
	GroupRef             *uuid.UUID
	GoalRef              *uuid.UUID
}

func (t *Transaction) IsInflow() bool {
	for _, inflowType := range InflowTypes {
		if t.Type == inflowType {
			return true
		}
	}
	return false
}

func (t *Transaction) IsOutflow() bool {
	return !t.IsInflow()
}

type SavingsGoal struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
	MemberID      int64
	Title         string
	Category      string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
}

// Progress возвращает долю накопленного от цели. Если цель нулевая — 0, чтобы
// не делить на ноль.
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	return g.CurrentAmount.InexactFloat64() / g.TargetAmount.InexactFloat64()
}

type SavingsContribution struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	GoalID     uuid.UUID
	MemberID   int64
	Amount     decimal.Decimal
	Channel    string
	Note       string
	RecordedAt time.Time
}

type SavingsRedemption struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	GoalID     uuid.UUID
	MemberID   int64
	Amount     decimal.Decimal
	Channel    string
	Note       string
	RecordedAt time.Time
}

// SavingsMilestone фиксирует пересечение порога прогресса цели одним взносом.
type SavingsMilestone struct {
	Threshold  float64
	AchievedAt time.Time
	Message    string
}
