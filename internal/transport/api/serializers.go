package api

import (
	"time"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/service"
)

// Денежные суммы сериализуются десятичными строками: float в API отсутствует
// на любом уровне.

type WalletResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IsPlatform bool      `json:"isPlatform"`
	Balance    string    `json:"balance"`
	Currency   string    `json:"currency"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newWalletResponse(wallet *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:         wallet.ID.String(),
		Name:       wallet.Name,
		IsPlatform: wallet.IsPlatform,
		Balance:    wallet.Balance.StringFixed(2),
		Currency:   wallet.Currency,
		UpdatedAt:  wallet.UpdatedAt,
	}
}

type TransactionResponse struct {
	ID                   string    `json:"id"`
	Type                 string    `json:"type"`
	Status               string    `json:"status"`
	Amount               string    `json:"amount"`
	Description          string    `json:"description"`
	OccurredAt           time.Time `json:"occurredAt"`
	Channel              string    `json:"channel,omitempty"`
	Fee                  *string   `json:"fee,omitempty"`
	Reference            string    `json:"reference,omitempty"`
	Counterparty         string    `json:"counterparty,omitempty"`
	BalanceAfter         string    `json:"balanceAfter"`
	PlatformBalanceAfter string    `json:"platformBalanceAfter"`
	GroupRef             *string   `json:"groupRef,omitempty"`
	GoalRef              *string   `json:"goalRef,omitempty"`
	IsInflow             bool      `json:"isInflow"`
}

func newTransactionResponse(transaction *domain.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                   transaction.ID.String(),
		Type:                 string(transaction.Type),
		Status:               string(transaction.Status),
		Amount:               transaction.Amount.StringFixed(2),
		Description:          transaction.Description,
		OccurredAt:           transaction.OccurredAt,
		Channel:              transaction.Channel,
		Reference:            transaction.Reference,
		Counterparty:         transaction.Counterparty,
		BalanceAfter:         transaction.BalanceAfter.StringFixed(2),
		PlatformBalanceAfter: transaction.PlatformBalanceAfter.StringFixed(2),
		IsInflow:             transaction.IsInflow(),
	}
	if transaction.Fee != nil {
		fee := transaction.Fee.StringFixed(2)
		response.Fee = &fee
	}
	if transaction.GroupRef != nil {
		groupRef := transaction.GroupRef.String()
		response.GroupRef = &groupRef
	}
	if transaction.GoalRef != nil {
		goalRef := transaction.GoalRef.String()
		response.GoalRef = &goalRef
	}
	return response
}

// WalletOperationResponse контракт ответа всех денежных операций.
type WalletOperationResponse struct {
	Transaction    TransactionResponse `json:"transaction"`
	Wallet         WalletResponse      `json:"wallet"`
	PlatformWallet WalletResponse      `json:"platformWallet"`
}

func newWalletOperationResponse(operation *service.WalletOperation) WalletOperationResponse {
	return WalletOperationResponse{
		Transaction:    newTransactionResponse(operation.Transaction),
		Wallet:         newWalletResponse(operation.Wallet),
		PlatformWallet: newWalletResponse(operation.PlatformWallet),
	}
}

type SavingsGoalResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	TargetAmount  string    `json:"targetAmount"`
	CurrentAmount string    `json:"currentAmount"`
	Progress      float64   `json:"progress"`
	Deadline      time.Time `json:"deadline"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newSavingsGoalResponse(goal *domain.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:            goal.ID.String(),
		Title:         goal.Title,
		Category:      goal.Category,
		TargetAmount:  goal.TargetAmount.StringFixed(2),
		CurrentAmount: goal.CurrentAmount.StringFixed(2),
		Progress:      goal.Progress(),
		Deadline:      goal.Deadline,
		CreatedAt:     goal.CreatedAt,
	}
}

type SavingsEntryResponse struct {
	ID         string    `json:"id"`
	Amount     string    `json:"amount"`
	Channel    string    `json:"channel"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

func newContributionResponse(contribution *domain.SavingsContribution) SavingsEntryResponse {
	return SavingsEntryResponse{
		ID:         contribution.ID.String(),
		Amount:     contribution.Amount.StringFixed(2),
		Channel:    contribution.Channel,
		Note:       contribution.Note,
		RecordedAt: contribution.RecordedAt,
	}
}

func newRedemptionResponse(redemption *domain.SavingsRedemption) SavingsEntryResponse {
	return SavingsEntryResponse{
		ID:         redemption.ID.String(),
		Amount:     redemption.Amount.StringFixed(2),
		Channel:    redemption.Channel,
		Note:       redemption.Note,
		RecordedAt: redemption.RecordedAt,
	}
}

type MilestoneResponse struct {
	Threshold  float64   `json:"threshold"`
	AchievedAt time.Time `json:"achievedAt"`
	Message    string    `json:"message"`
}

func newMilestoneResponses(milestones []domain.SavingsMilestone) []MilestoneResponse {
	responses := make([]MilestoneResponse, len(milestones))
	for i, milestone := range milestones {
		responses[i] = MilestoneResponse{
			Threshold:  milestone.Threshold,
			AchievedAt: milestone.AchievedAt,
			Message:    milestone.Message,
		}
	}
	return responses
}
