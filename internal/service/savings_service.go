package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
)

// milestoneThresholds фиксированный упорядоченный список порогов прогресса.
// Пороги проверяются строго по возрастанию, чтобы один крупный взнос выдал
// несколько вех в детерминированном порядке.
var milestoneThresholds = []decimal.Decimal{
	decimal.NewFromFloat(0.25),
	decimal.NewFromFloat(0.5),
	decimal.NewFromFloat(0.75),
}

type SavingsService struct {
	uow         uow.UOW
	savingsRepo SavingsRepository
	ledger      SavingsLedger
}

func NewSavingsService(u uow.UOW, ledger SavingsLedger) (*SavingsService, error) {
	savingsRepo, repoErr := uow.GetRepositoryAs[SavingsRepository](u, uow.RepositoryName(repoargs.SavingsRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return &SavingsService{
		uow:         u,
		savingsRepo: savingsRepo,
		ledger:      ledger,
	}, nil
}

type CreateGoalArgs struct {
	Member       Member
	Title        string
	Category     string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

func (s *SavingsService) CreateGoal(ctx context.Context, args CreateGoalArgs) (*domain.SavingsGoal, error) {
	target, targetErr := domain.NormalizeAmount(args.TargetAmount)
	if targetErr != nil {
		return nil, targetErr
	}
	goal, createErr := s.savingsRepo.CreateGoal(ctx, repoargs.SavingsGoalCreate{
		MemberID:     args.Member.ID,
		Title:        args.Title,
		Category:     args.Category,
		TargetAmount: target,
		Deadline:     args.Deadline,
	})
	if createErr != nil {
		return nil, fmt.Errorf("creating savings goal: %w", createErr)
	}
	return goal, nil
}

func (s *SavingsService) GetGoal(ctx context.Context, id uuid.UUID) (*domain.SavingsGoal, error) {
	goal, err := s.savingsRepo.GetGoal(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return goal, nil
}

func (s *SavingsService) GetGoalsByMemberID(ctx context.Context, memberID int64) ([]domain.SavingsGoal, error) {
	goals, err := s.savingsRepo.GetGoalsByMemberID(ctx, memberID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return goals, nil
}

func (s *SavingsService) GetContributions(ctx context.Context, goalID uuid.UUID) ([]domain.SavingsContribution, error) {
	contributions, err := s.savingsRepo.GetContributionsByGoal(ctx, goalID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return contributions, nil
}

func (s *SavingsService) GetRedemptions(ctx context.Context, goalID uuid.UUID) ([]domain.SavingsRedemption, error) {
	redemptions, err := s.savingsRepo.GetRedemptionsByGoal(ctx, goalID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return redemptions, nil
}

type ContributionArgs struct {
	GoalID  uuid.UUID
	Member  Member
	Amount  decimal.Decimal
	Channel string
	Note    string
}

type ContributionOutcome struct {
	Goal               *domain.SavingsGoal
	Contribution       *domain.SavingsContribution
	UnlockedMilestones []domain.SavingsMilestone
	Transaction        *domain.Transaction
	Wallet             *domain.Wallet
	PlatformWallet     *domain.Wallet
}

// RecordContribution проводит взнос в цель одной транзакцией: блокирует строку
// цели, выполняет леджер-операцию участник -> платформа, увеличивает
// current_amount и создает запись взноса. Вехи вычисляются по прогрессу до и
// после взноса.
func (s *SavingsService) RecordContribution(ctx context.Context, args ContributionArgs) (*ContributionOutcome, error) {
	amount, amountErr := domain.NormalizeAmount(args.Amount)
	if amountErr != nil {
		return nil, amountErr
	}

	var outcome *ContributionOutcome
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		savingsRepo, repoErr := uow.GetAs[SavingsRepository](tx, uow.RepositoryName(repoargs.SavingsRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		goal, lockErr := savingsRepo.LockGoalForUpdate(c, args.GoalID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		previousProgress := goal.Progress()

		operation, ledgerErr := s.ledger.ApplySavingsContributionTx(c, tx, SavingsTransferArgs{
			Member:  args.Member,
			Goal:    goal,
			Amount:  amount,
			Channel: args.Channel,
			Note:    args.Note,
		})
		if ledgerErr != nil {
			return ledgerErr //nolint:wrapcheck
		}

		updatedGoal, updErr := savingsRepo.UpdateCurrentAmount(c, goal.ID, goal.CurrentAmount.Add(amount))
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		contribution, createErr := savingsRepo.CreateContribution(c, repoargs.SavingsEntryCreate{
			GoalID:     goal.ID,
			MemberID:   args.Member.ID,
			Amount:     amount,
			Channel:    args.Channel,
			Note:       args.Note,
			RecordedAt: time.Now(),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		outcome = &ContributionOutcome{
			Goal:               updatedGoal,
			Contribution:       contribution,
			UnlockedMilestones: calculateMilestones(updatedGoal, previousProgress, contribution.RecordedAt),
			Transaction:        operation.Transaction,
			Wallet:             operation.Wallet,
			PlatformWallet:     operation.PlatformWallet,
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("recording contribution: %w", txErr)
	}
	return outcome, nil
}

type CollectionArgs struct {
	GoalID  uuid.UUID
	Member  Member
	Amount  decimal.Decimal
	Channel string
	Note    string
}

type CollectionOutcome struct {
	Goal           *domain.SavingsGoal
	Redemption     *domain.SavingsRedemption
	Transaction    *domain.Transaction
	Wallet         *domain.Wallet
	PlatformWallet *domain.Wallet
}

// CollectSavings возвращает накопления на кошелек участника. Попытка забрать
// больше, чем накоплено, отклоняется до каких-либо изменений кошельков.
// Вехи при выводе не выдаются.
func (s *SavingsService) CollectSavings(ctx context.Context, args CollectionArgs) (*CollectionOutcome, error) {
	amount, amountErr := domain.NormalizeAmount(args.Amount)
	if amountErr != nil {
		return nil, amountErr
	}

	var outcome *CollectionOutcome
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		savingsRepo, repoErr := uow.GetAs[SavingsRepository](tx, uow.RepositoryName(repoargs.SavingsRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		goal, lockErr := savingsRepo.LockGoalForUpdate(c, args.GoalID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		if amount.GreaterThan(goal.CurrentAmount) {
			return domain.ErrOverCollection
		}

		operation, ledgerErr := s.ledger.ApplySavingsPayoutTx(c, tx, SavingsTransferArgs{
			Member:  args.Member,
			Goal:    goal,
			Amount:  amount,
			Channel: args.Channel,
			Note:    args.Note,
		})
		if ledgerErr != nil {
			return ledgerErr //nolint:wrapcheck
		}

		updatedGoal, updErr := savingsRepo.UpdateCurrentAmount(c, goal.ID, goal.CurrentAmount.Sub(amount))
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		redemption, createErr := savingsRepo.CreateRedemption(c, repoargs.SavingsEntryCreate{
			GoalID:     goal.ID,
			MemberID:   args.Member.ID,
			Amount:     amount,
			Channel:    args.Channel,
			Note:       args.Note,
			RecordedAt: time.Now(),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		outcome = &CollectionOutcome{
			Goal:           updatedGoal,
			Redemption:     redemption,
			Transaction:    operation.Transaction,
			Wallet:         operation.Wallet,
			PlatformWallet: operation.PlatformWallet,
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("collecting savings: %w", txErr)
	}
	return outcome, nil
}

// calculateMilestones возвращает вехи, пересеченные этим взносом: порог строго
// больше прошлого прогресса и не больше нового. Веха, однажды пересеченная,
// повторно не выдается — следующий взнос стартует с прогресса выше порога.
func calculateMilestones(
	goal *domain.SavingsGoal,
	previousProgress float64,
	achievedAt time.Time,
) []domain.SavingsMilestone {
	currentProgress := goal.Progress()
	var unlocked []domain.SavingsMilestone

	for _, threshold := range milestoneThresholds {
		thresholdFloat := threshold.InexactFloat64()
		if previousProgress < thresholdFloat && thresholdFloat <= currentProgress {
			unlocked = append(unlocked, domain.SavingsMilestone{
				Threshold:  thresholdFloat,
				AchievedAt: achievedAt,
				Message:    buildMilestoneMessage(goal, threshold),
			})
		}
	}
	return unlocked
}

func buildMilestoneMessage(goal *domain.SavingsGoal, threshold decimal.Decimal) string {
	percent := threshold.Mul(decimal.NewFromInt(100)).IntPart()
	savedAmount := goal.TargetAmount.Mul(threshold).Round(2)
	return fmt.Sprintf(
		"You unlocked the %d%% milestone for %s. ₵%s saved so far!",
		percent, goal.Title, groupDigits(savedAmount),
	)
}

// groupDigits форматирует сумму с разделителями тысяч: 1234567.5 -> "1,234,567.50".
func groupDigits(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, ",") + "." + fracPart
}
