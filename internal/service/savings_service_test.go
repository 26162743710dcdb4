package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/internal/service/mocks"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
	uowmocks "github.com/sankofahq/sankofa-ledger/pkg/uow/mocks"
)

type SavingsServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockSavingsRepo     *mocks.MockSavingsRepository
	mockWalletRepo      *mocks.MockWalletRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	service             *SavingsService
	member              Member
}

func TestSavingsServiceSuite(t *testing.T) {
	suite.Run(t, new(SavingsServiceTestSuite))
}

func (s *SavingsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockSavingsRepo = mocks.NewMockSavingsRepository(s.mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.SavingsRepoName)).
		Return(s.mockSavingsRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.SavingsRepoName)).
		Return(s.mockSavingsRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	s.member = Member{ID: 42, Phone: "+233240000000", FullName: "Ama Mensah"}

	// сервис накоплений работает с настоящим леджером: так проверяется вся
	// цепочка взноса внутри одной транзакции.
	ledger := NewLedgerService(s.mockUOW, testCurrency)

	var err error
	s.service, err = NewSavingsService(s.mockUOW, ledger)
	s.Require().NoError(err)
}

func (s *SavingsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *SavingsServiceTestSuite) makeGoal(target, current string) *domain.SavingsGoal {
	return &domain.SavingsGoal{
		ID:            uuid.New(),
		MemberID:      s.member.ID,
		Title:         "Market Stall",
		Category:      "business",
		TargetAmount:  decimal.RequireFromString(target),
		CurrentAmount: decimal.RequireFromString(current),
		Deadline:      time.Now().AddDate(0, 6, 0),
	}
}

func (s *SavingsServiceTestSuite) expectWallets(memberBalance, platformBalance string) (*domain.Wallet, *domain.Wallet) {
	memberID := s.member.ID
	memberWallet := &domain.Wallet{
		ID:       uuid.New(),
		MemberID: &memberID,
		Name:     s.member.FullName,
		Balance:  decimal.RequireFromString(memberBalance),
		Currency: testCurrency,
	}
	platformWallet := &domain.Wallet{
		ID:         uuid.New(),
		Name:       "Sankofa Platform",
		IsPlatform: true,
		Balance:    decimal.RequireFromString(platformBalance),
		Currency:   testCurrency,
	}

	s.mockWalletRepo.EXPECT().
		EnsureForMember(gomock.Any(), gomock.Any()).
		Return(memberWallet, nil)
	s.mockWalletRepo.EXPECT().
		EnsurePlatform(gomock.Any(), testCurrency).
		Return(platformWallet, nil)
	s.mockWalletRepo.EXPECT().
		LockForUpdate(gomock.Any(), memberWallet.ID).
		Return(memberWallet, nil)
	s.mockWalletRepo.EXPECT().
		LockForUpdate(gomock.Any(), platformWallet.ID).
		Return(platformWallet, nil)

	return memberWallet, platformWallet
}

func (s *SavingsServiceTestSuite) TestCreateGoal() {
	deadline := time.Now().AddDate(1, 0, 0)

	s.mockSavingsRepo.EXPECT().
		CreateGoal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.SavingsGoalCreate) (*domain.SavingsGoal, error) {
			s.Equal(s.member.ID, args.MemberID)
			s.Equal("Market Stall", args.Title)
			s.Equal("5000.00", args.TargetAmount.StringFixed(2))
			return &domain.SavingsGoal{
				ID:           uuid.New(),
				MemberID:     args.MemberID,
				Title:        args.Title,
				Category:     args.Category,
				TargetAmount: args.TargetAmount,
				Deadline:     args.Deadline,
			}, nil
		})

	goal, err := s.service.CreateGoal(s.T().Context(), CreateGoalArgs{
		Member:       s.member,
		Title:        "Market Stall",
		Category:     "business",
		TargetAmount: decimal.RequireFromString("5000.004"),
		Deadline:     deadline,
	})
	s.Require().NoError(err)
	s.Equal("Market Stall", goal.Title)
}

func (s *SavingsServiceTestSuite) TestCreateGoal_InvalidTarget() {
	_, err := s.service.CreateGoal(s.T().Context(), CreateGoalArgs{
		Member:       s.member,
		Title:        "Broken",
		TargetAmount: decimal.NewFromInt(0),
		Deadline:     time.Now(),
	})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *SavingsServiceTestSuite) TestRecordContribution_UnlocksMilestonesAscending() {
	goal := s.makeGoal("1000.00", "0.00")
	memberWallet, platformWallet := s.expectWallets("800.00", "0.00")

	s.mockSavingsRepo.EXPECT().
		LockGoalForUpdate(gomock.Any(), goal.ID).
		Return(goal, nil)

	s.mockWalletRepo.EXPECT().
		UpdateBalance(gomock.Any(), memberWallet.ID, decimalEq("200.00")).
		Return(walletWithBalance(memberWallet, decimal.RequireFromString("200.00")), nil)
	s.mockWalletRepo.EXPECT().
		UpdateBalance(gomock.Any(), platformWallet.ID, decimalEq("600.00")).
		Return(walletWithBalance(platformWallet, decimal.RequireFromString("600.00")), nil)

	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(echoTransaction)

	s.mockSavingsRepo.EXPECT().
		UpdateCurrentAmount(gomock.Any(), goal.ID, decimalEq("600.00")).
		DoAndReturn(func(_ context.Context, id uuid.UUID, current decimal.Decimal) (*domain.SavingsGoal, error) {
			updated := *goal
			updated.CurrentAmount = current
			return &updated, nil
		})

	s.mockSavingsRepo.EXPECT().
		CreateContribution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.SavingsEntryCreate) (*domain.SavingsContribution, error) {
			return &domain.SavingsContribution{
				ID:         uuid.New(),
				GoalID:     args.GoalID,
				MemberID:   args.MemberID,
				Amount:     args.Amount,
				Channel:    args.Channel,
				Note:       args.Note,
				RecordedAt: args.RecordedAt,
			}, nil
		})

	outcome, err := s.service.RecordContribution(s.T().Context(), ContributionArgs{
		GoalID: goal.ID,
		Member: s.member,
		Amount: decimal.NewFromInt(600),
	})
	s.Require().NoError(err)

	// один крупный взнос пересек пороги 25% и 50%, строго по возрастанию.
	s.Require().Len(outcome.UnlockedMilestones, 2)
	s.InDelta(0.25, outcome.UnlockedMilestones[0].Threshold, 1e-9)
	s.InDelta(0.5, outcome.UnlockedMilestones[1].Threshold, 1e-9)
	s.Equal(
		"You unlocked the 25% milestone for Market Stall. ₵250.00 saved so far!",
		outcome.UnlockedMilestones[0].Message,
	)
	s.Equal(
		"You unlocked the 50% milestone for Market Stall. ₵500.00 saved so far!",
		outcome.UnlockedMilestones[1].Message,
	)

	s.Equal(domain.TransactionTypeSavings, outcome.Transaction.Type)
	s.Equal("600.00", outcome.Goal.CurrentAmount.StringFixed(2))
	s.Equal("200.00", outcome.Wallet.Balance.StringFixed(2))
	s.Equal("600.00", outcome.PlatformWallet.Balance.StringFixed(2))
}

func (s *SavingsServiceTestSuite) TestRecordContribution_MilestoneNotRepeated() {
	// прогресс уже за порогом 25%: взнос до 60% выдает только веху 50%.
	goal := s.makeGoal("1000.00", "300.00")
	memberWallet, platformWallet := s.expectWallets("500.00", "300.00")

	s.mockSavingsRepo.EXPECT().
		LockGoalForUpdate(gomock.Any(), goal.ID).
		Return(goal, nil)

	s.mockWalletRepo.EXPECT().
		UpdateBalance(gomock.Any(), memberWallet.ID, gomock.Any()).
		Return(walletWithBalance(memberWallet, decimal.RequireFromString("200.00")), nil)
	s.mockWalletRepo.EXPECT().
		UpdateBalance(gomock.Any(), platformWallet.ID, gomock.Any()).
		Return(walletWithBalance(platformWallet, decimal.RequireFromString("600.00")), nil)

	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(echoTransaction)

	s.mockSavingsRepo.EXPECT().
		UpdateCurrentAmount(gomock.Any(), goal.ID, decimalEq("600.00")).
		DoAndReturn(func(_ context.Context, id uuid.UUID, current decimal.Decimal) (*domain.SavingsGoal, error) {
			updated := *goal
			updated.CurrentAmount = current
			return &updated, nil
		})

	s.mockSavingsRepo.EXPECT().
		CreateContribution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.SavingsEntryCreate) (*domain.SavingsContribution, error) {
			return &domain.SavingsContribution{
				ID:         uuid.New(),
				GoalID:     args.GoalID,
				Amount:     args.Amount,
				RecordedAt: args.RecordedAt,
			}, nil
		})

	outcome, err := s.service.RecordContribution(s.T().Context(), ContributionArgs{
		GoalID: goal.ID,
		Member: s.member,
		Amount: decimal.NewFromInt(300),
	})
	s.Require().NoError(err)

	s.Require().Len(outcome.UnlockedMilestones, 1)
	s.InDelta(0.5, outcome.UnlockedMilestones[0].Threshold, 1e-9)
}

func (s *SavingsServiceTestSuite) TestRecordContribution_InsufficientWalletBalance() {
	goal := s.makeGoal("1000.00", "0.00")
	s.expectWallets("20.00", "0.00")

	s.mockSavingsRepo.EXPECT().
		LockGoalForUpdate(gomock.Any(), goal.ID).
		Return(goal, nil)

	// ни балансы, ни цель, ни журнал не меняются.
	s.mockWalletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockSavingsRepo.EXPECT().UpdateCurrentAmount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockSavingsRepo.EXPECT().CreateContribution(gomock.Any(), gomock.Any()).Times(0)
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.RecordContribution(s.T().Context(), ContributionArgs{
		GoalID: goal.ID,
		Member: s.member,
		Amount: decimal.NewFromInt(100),
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
}

func (s *SavingsServiceTestSuite) TestCollectSavings() {
	goal := s.makeGoal("1000.00", "400.00")
	memberWallet, platformWallet := s.expectWallets("50.00", "400.00")

	s.mockSavingsRepo.EXPECT().
		LockGoalForUpdate(gomock.Any(), goal.ID).
		Return(goal, nil)

	s.mockWalletRepo.EXPECT().
		UpdateBalance(gomock.Any(), memberWallet.ID, decimalEq("350.00")).
		Return(walletWithBalance(memberWallet, decimal.RequireFromString("350.00")), nil)
	s.mockWalletRepo.EXPECT().
		UpdateBalance(gomock.Any(), platformWallet.ID, decimalEq("100.00")).
		Return(walletWithBalance(platformWallet, decimal.RequireFromString("100.00")), nil)

	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(echoTransaction)

	s.mockSavingsRepo.EXPECT().
		UpdateCurrentAmount(gomock.Any(), goal.ID, decimalEq("100.00")).
		DoAndReturn(func(_ context.Context, id uuid.UUID, current decimal.Decimal) (*domain.SavingsGoal, error) {
			updated := *goal
			updated.CurrentAmount = current
			return &updated, nil
		})

	s.mockSavingsRepo.EXPECT().
		CreateRedemption(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.SavingsEntryCreate) (*domain.SavingsRedemption, error) {
			return &domain.SavingsRedemption{
				ID:         uuid.New(),
				GoalID:     args.GoalID,
				MemberID:   args.MemberID,
				Amount:     args.Amount,
				RecordedAt: args.RecordedAt,
			}, nil
		})

	outcome, err := s.service.CollectSavings(s.T().Context(), CollectionArgs{
		GoalID: goal.ID,
		Member: s.member,
		Amount: decimal.NewFromInt(300),
	})
	s.Require().NoError(err)

	s.Equal(domain.TransactionTypePayout, outcome.Transaction.Type)
	s.Equal("100.00", outcome.Goal.CurrentAmount.StringFixed(2))
	s.Equal("350.00", outcome.Wallet.Balance.StringFixed(2))
	s.Equal("100.00", outcome.PlatformWallet.Balance.StringFixed(2))
}

func (s *SavingsServiceTestSuite) TestCollectSavings_OverCollection() {
	goal := s.makeGoal("1000.00", "100.00")

	s.mockSavingsRepo.EXPECT().
		LockGoalForUpdate(gomock.Any(), goal.ID).
		Return(goal, nil)

	// проверка превышения идет до любых обращений к кошелькам.
	s.mockWalletRepo.EXPECT().EnsureForMember(gomock.Any(), gomock.Any()).Times(0)
	s.mockWalletRepo.EXPECT().UpdateBalance(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockSavingsRepo.EXPECT().UpdateCurrentAmount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockSavingsRepo.EXPECT().CreateRedemption(gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.CollectSavings(s.T().Context(), CollectionArgs{
		GoalID: goal.ID,
		Member: s.member,
		Amount: decimal.NewFromInt(150),
	})
	s.Require().ErrorIs(err, domain.ErrOverCollection)
}

func (s *SavingsServiceTestSuite) TestCollectSavings_ExactBalanceAllowed() {
	goal := s.makeGoal("1000.00", "100.00")
	memberWallet, platformWallet := s.expectWallets("0.00", "100.00")

	s.mockSavingsRepo.EXPECT().
		LockGoalForUpdate(gomock.Any(), goal.ID).
		Return(goal, nil)

	s.mockWalletRepo.EXPECT().
		UpdateBalance(gomock.Any(), memberWallet.ID, decimalEq("100.00")).
		Return(walletWithBalance(memberWallet, decimal.RequireFromString("100.00")), nil)
	s.mockWalletRepo.EXPECT().
		UpdateBalance(gomock.Any(), platformWallet.ID, decimalEq("0.00")).
		Return(walletWithBalance(platformWallet, decimal.RequireFromString("0.00")), nil)

	s.mockTransactionRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(echoTransaction)

	s.mockSavingsRepo.EXPECT().
		UpdateCurrentAmount(gomock.Any(), goal.ID, decimalEq("0.00")).
		DoAndReturn(func(_ context.Context, id uuid.UUID, current decimal.Decimal) (*domain.SavingsGoal, error) {
			updated := *goal
			updated.CurrentAmount = current
			return &updated, nil
		})
	s.mockSavingsRepo.EXPECT().
		CreateRedemption(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.SavingsEntryCreate) (*domain.SavingsRedemption, error) {
			return &domain.SavingsRedemption{ID: uuid.New(), GoalID: args.GoalID, Amount: args.Amount}, nil
		})

	outcome, err := s.service.CollectSavings(s.T().Context(), CollectionArgs{
		GoalID: goal.ID,
		Member: s.member,
		Amount: decimal.NewFromInt(100),
	})
	s.Require().NoError(err)
	s.True(outcome.Goal.CurrentAmount.IsZero())
}

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"0", "0.00"},
		{"999.9", "999.90"},
		{"1000", "1,000.00"},
		{"1234567.5", "1,234,567.50"},
		{"-45000", "-45,000.00"},
	}
	for _, tc := range cases {
		if got := groupDigits(decimal.RequireFromString(tc.input)); got != tc.want {
			t.Errorf("groupDigits(%s) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCalculateMilestones_AllThresholdsAtOnce(t *testing.T) {
	goal := &domain.SavingsGoal{
		Title:         "Wedding",
		TargetAmount:  decimal.NewFromInt(100),
		CurrentAmount: decimal.NewFromInt(80),
	}

	unlocked := calculateMilestones(goal, 0, time.Now())
	if len(unlocked) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(unlocked))
	}
	for i, want := range []float64{0.25, 0.5, 0.75} {
		if unlocked[i].Threshold != want {
			t.Errorf("milestone %d: threshold %v, want %v", i, unlocked[i].Threshold, want)
		}
	}
}
