package repoargs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SavingsGoalCreate struct {
	MemberID     int64
	Title        string
	Category     string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

type SavingsEntryCreate struct {
	GoalID     uuid.UUID
	MemberID   int64
	Amount     decimal.Decimal
	Channel    string
	Note       string
	RecordedAt time.Time
}
