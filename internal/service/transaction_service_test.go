package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/internal/service/mocks"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
	uowmocks "github.com/sankofahq/sankofa-ledger/pkg/uow/mocks"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockUOW             *uowmocks.MockUOW
	mockTransactionRepo *mocks.MockTransactionRepository
	service             *TransactionService
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransactionRepo, nil).AnyTimes()

	var err error
	s.service, err = NewTransactionService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TransactionServiceTestSuite) TestGetByMemberID() {
	var memberID int64 = 7
	filter := repoargs.TransactionFilter{
		Types: []domain.TransactionType{domain.TransactionTypeDeposit},
		Limit: 20,
	}
	expected := []domain.Transaction{
		{MemberID: memberID, Type: domain.TransactionTypeDeposit, Amount: decimal.NewFromInt(10)},
	}

	s.mockTransactionRepo.EXPECT().
		GetByMemberID(gomock.Any(), memberID, filter).
		Return(expected, nil)

	transactions, err := s.service.GetByMemberID(s.T().Context(), memberID, filter)
	s.Require().NoError(err)
	s.Equal(expected, transactions)
}

func (s *TransactionServiceTestSuite) TestSummary() {
	var memberID int64 = 7

	oldest := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	newest := time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

	rows := []repoargs.TransactionAggregateRow{
		{
			Type:           domain.TransactionTypeSavings,
			Status:         domain.TransactionStatusSuccess,
			Count:          2,
			Amount:         decimal.RequireFromString("100.00"),
			LastOccurredAt: oldest,
		}, {
			Type:           domain.TransactionTypeDeposit,
			Status:         domain.TransactionStatusSuccess,
			Count:          3,
			Amount:         decimal.RequireFromString("300.00"),
			LastOccurredAt: newest,
		}, {
			Type:           domain.TransactionTypeWithdrawal,
			Status:         domain.TransactionStatusPending,
			Count:          1,
			Amount:         decimal.RequireFromString("50.00"),
			LastOccurredAt: oldest,
		},
	}

	s.mockTransactionRepo.EXPECT().
		AggregateByMember(gomock.Any(), memberID, gomock.Any()).
		Return(rows, nil)

	summary, err := s.service.Summary(s.T().Context(), memberID, repoargs.TransactionFilter{})
	s.Require().NoError(err)

	s.Equal(int64(6), summary.TotalCount)
	s.Equal("300.00", summary.TotalInflow.StringFixed(2))
	s.Equal("150.00", summary.TotalOutflow.StringFixed(2))
	s.Equal("150.00", summary.NetCashflow.StringFixed(2))
	s.Equal(int64(1), summary.PendingCount)
	s.Require().NotNil(summary.LastTransactionAt)
	s.True(summary.LastTransactionAt.Equal(newest))

	// разбивка по типам идет в порядке объявления и содержит нули для
	// отсутствующих типов.
	s.Require().Len(summary.TotalsByType, len(domain.TransactionTypes))
	for i, transactionType := range domain.TransactionTypes {
		s.Equal(transactionType, summary.TotalsByType[i].Type)
	}
	s.Equal(int64(3), summary.TotalsByType[0].Count) // deposit
	s.Equal(int64(1), summary.TotalsByType[1].Count) // withdrawal
	s.Equal(int64(0), summary.TotalsByType[2].Count) // contribution
	s.True(summary.TotalsByType[2].Amount.IsZero())
	s.Equal(int64(0), summary.TotalsByType[3].Count) // payout
	s.Equal(int64(2), summary.TotalsByType[4].Count) // savings

	s.Require().Len(summary.TotalsByStatus, len(domain.TransactionStatuses))
	s.Equal(domain.TransactionStatusSuccess, summary.TotalsByStatus[0].Status)
	s.Equal(int64(5), summary.TotalsByStatus[0].Count)
	s.Equal(domain.TransactionStatusPending, summary.TotalsByStatus[1].Status)
	s.Equal(int64(1), summary.TotalsByStatus[1].Count)
	s.Equal(domain.TransactionStatusFailed, summary.TotalsByStatus[2].Status)
	s.Equal(int64(0), summary.TotalsByStatus[2].Count)
}

func (s *TransactionServiceTestSuite) TestSummary_Empty() {
	s.mockTransactionRepo.EXPECT().
		AggregateByMember(gomock.Any(), int64(1), gomock.Any()).
		Return(nil, nil)

	summary, err := s.service.Summary(s.T().Context(), 1, repoargs.TransactionFilter{})
	s.Require().NoError(err)

	s.Zero(summary.TotalCount)
	s.True(summary.TotalInflow.IsZero())
	s.True(summary.TotalOutflow.IsZero())
	s.True(summary.NetCashflow.IsZero())
	s.Nil(summary.LastTransactionAt)
	s.Len(summary.TotalsByType, len(domain.TransactionTypes))
	s.Len(summary.TotalsByStatus, len(domain.TransactionStatuses))
}
