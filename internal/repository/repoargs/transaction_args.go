package repoargs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
)

type TransactionCreate struct {
	MemberID             int64
	Type                 domain.TransactionType
	Status               domain.TransactionStatus
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

// TransactionFilter нулевые поля означают отсутствие фильтра.
type TransactionFilter struct {
	Types    []domain.TransactionType
	Statuses []domain.TransactionStatus
	Start    *time.Time
	End      *time.Time
	// Search ищет подстроку в описании, референсе и контрагенте без учета регистра.
	Search string
	Limit  uint
	Offset uint
}

// TransactionAggregateRow строка группировки журнала по (тип, статус).
type TransactionAggregateRow struct {
	Type           domain.TransactionType
	Status         domain.TransactionStatus
	Count          int64
	Amount         decimal.Decimal
	LastOccurredAt time.Time
}
