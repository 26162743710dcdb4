package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/logger"
	"github.com/sankofahq/sankofa-ledger/internal/service"
	"github.com/sankofahq/sankofa-ledger/internal/transport/api/mocks"
	"github.com/sankofahq/sankofa-ledger/internal/transport/api/testutils"
	"github.com/sankofahq/sankofa-ledger/internal/transport/api/tokens"
)

type SavingsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockSavingsService *mocks.MockSavingsServicer
	jwtSecret          []byte
	memberToken        string
	member             service.Member
}

func TestSavingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SavingsHandlerTestSuite))
}

func (s *SavingsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockSavingsService = mocks.NewMockSavingsServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.member = service.Member{ID: 42, Phone: "+233240000042", FullName: "Ama Mensah"}

	token, tokenErr := tokens.GenerateMemberJWT(tokens.MemberClaims{
		MemberID: s.member.ID,
		Phone:    s.member.Phone,
		FullName: s.member.FullName,
	}, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.memberToken = token

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		SavingsService: s.mockSavingsService,
		JWTSecretKey:   s.jwtSecret,
	})
}

func (s *SavingsHandlerTestSuite) makeGoal() *domain.SavingsGoal {
	return &domain.SavingsGoal{
		ID:            uuid.New(),
		MemberID:      s.member.ID,
		Title:         "Market Stall",
		Category:      "business",
		TargetAmount:  decimal.RequireFromString("1000.00"),
		CurrentAmount: decimal.RequireFromString("250.00"),
		Deadline:      time.Now().AddDate(0, 6, 0),
	}
}

func (s *SavingsHandlerTestSuite) TestCreateGoal() {
	s.mockSavingsService.EXPECT().
		CreateGoal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, args service.CreateGoalArgs) (*domain.SavingsGoal, error) {
			s.Equal(s.member, args.Member)
			s.Equal("Market Stall", args.Title)
			s.Equal("1000.00", args.TargetAmount.StringFixed(2))
			goal := s.makeGoal()
			goal.CurrentAmount = decimal.NewFromInt(0)
			return goal, nil
		})

	payload := []byte(`{"title": "Market Stall", "category": "business", "targetAmount": "1000.00", "deadline": "2027-03-01T00:00:00Z"}`)
	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + GoalsRoute,
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearerToken(s.memberToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusCreated, response.StatusCode)

	var body SavingsGoalResponse
	s.Require().NoError(json.NewDecoder(response.Body).Decode(&body))
	s.Equal("Market Stall", body.Title)
	s.Equal("1000.00", body.TargetAmount)
	s.Zero(body.Progress)
}

func (s *SavingsHandlerTestSuite) TestCreateGoal_MissingTitle() {
	s.mockSavingsService.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).Times(0)

	payload := []byte(`{"targetAmount": "1000.00", "deadline": "2027-03-01T00:00:00Z"}`)
	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + GoalsRoute,
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearerToken(s.memberToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadRequest, response.StatusCode)
}

func (s *SavingsHandlerTestSuite) TestIndex() {
	goal := s.makeGoal()
	s.mockSavingsService.EXPECT().
		GetGoalsByMemberID(gomock.Any(), s.member.ID).
		Return([]domain.SavingsGoal{*goal}, nil)

	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + GoalsRoute,
	}, testutils.WithBearerToken(s.memberToken))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, response.StatusCode)

	var body []SavingsGoalResponse
	s.Require().NoError(json.NewDecoder(response.Body).Decode(&body))
	s.Require().Len(body, 1)
	s.Equal(goal.ID.String(), body[0].ID)
	s.InDelta(0.25, body[0].Progress, 1e-9)
}

func (s *SavingsHandlerTestSuite) TestAddContribution() {
	goal := s.makeGoal()

	s.mockSavingsService.EXPECT().
		GetGoal(gomock.Any(), goal.ID).
		Return(goal, nil)

	s.mockSavingsService.EXPECT().
		RecordContribution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, args service.ContributionArgs) (*service.ContributionOutcome, error) {
			s.Equal(goal.ID, args.GoalID)
			s.Equal(s.member, args.Member)
			s.Equal("250.00", args.Amount.StringFixed(2))

			updated := *goal
			updated.CurrentAmount = decimal.RequireFromString("500.00")
			memberID := s.member.ID
			return &service.ContributionOutcome{
				Goal: &updated,
				Contribution: &domain.SavingsContribution{
					ID:         uuid.New(),
					GoalID:     goal.ID,
					MemberID:   s.member.ID,
					Amount:     args.Amount,
					Channel:    "Mobile Money",
					RecordedAt: time.Now(),
				},
				UnlockedMilestones: []domain.SavingsMilestone{
					{Threshold: 0.5, AchievedAt: time.Now(), Message: "You unlocked the 50% milestone for Market Stall. ₵500.00 saved so far!"},
				},
				Transaction: &domain.Transaction{
					ID:     uuid.New(),
					Type:   domain.TransactionTypeSavings,
					Status: domain.TransactionStatusSuccess,
					Amount: args.Amount,
				},
				Wallet:         &domain.Wallet{ID: uuid.New(), MemberID: &memberID, Balance: decimal.RequireFromString("100.00")},
				PlatformWallet: &domain.Wallet{ID: uuid.New(), IsPlatform: true, Balance: decimal.RequireFromString("500.00")},
			}, nil
		})

	payload := []byte(`{"amount": "250.00", "channel": "Mobile Money"}`)
	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/savings/goals/" + goal.ID.String() + "/contributions",
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearerToken(s.memberToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusCreated, response.StatusCode)

	var body ContributionResponse
	s.Require().NoError(json.NewDecoder(response.Body).Decode(&body))
	s.Equal("500.00", body.Goal.CurrentAmount)
	s.Require().Len(body.UnlockedMilestones, 1)
	s.InDelta(0.5, body.UnlockedMilestones[0].Threshold, 1e-9)
	s.Equal("savings", body.Transaction.Type)
}

func (s *SavingsHandlerTestSuite) TestAddContribution_ForeignGoal() {
	// цель другого участника неотличима от несуществующей.
	goal := s.makeGoal()
	goal.MemberID = 999

	s.mockSavingsService.EXPECT().
		GetGoal(gomock.Any(), goal.ID).
		Return(goal, nil)
	s.mockSavingsService.EXPECT().RecordContribution(gomock.Any(), gomock.Any()).Times(0)

	payload := []byte(`{"amount": "100.00"}`)
	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/savings/goals/" + goal.ID.String() + "/contributions",
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearerToken(s.memberToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusNotFound, response.StatusCode)
}

func (s *SavingsHandlerTestSuite) TestAddContribution_GoalNotFound() {
	missingID := uuid.New()
	s.mockSavingsService.EXPECT().
		GetGoal(gomock.Any(), missingID).
		Return(nil, domain.ErrRecordNotFound)

	payload := []byte(`{"amount": "100.00"}`)
	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/savings/goals/" + missingID.String() + "/contributions",
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearerToken(s.memberToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusNotFound, response.StatusCode)
}

func (s *SavingsHandlerTestSuite) TestAddContribution_MalformedGoalID() {
	s.mockSavingsService.EXPECT().GetGoal(gomock.Any(), gomock.Any()).Times(0)

	payload := []byte(`{"amount": "100.00"}`)
	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/savings/goals/not-a-uuid/contributions",
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearerToken(s.memberToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusNotFound, response.StatusCode)
}

func (s *SavingsHandlerTestSuite) TestContributions() {
	goal := s.makeGoal()

	s.mockSavingsService.EXPECT().
		GetGoal(gomock.Any(), goal.ID).
		Return(goal, nil)
	s.mockSavingsService.EXPECT().
		GetContributions(gomock.Any(), goal.ID).
		Return([]domain.SavingsContribution{
			{
				ID:         uuid.New(),
				GoalID:     goal.ID,
				MemberID:   s.member.ID,
				Amount:     decimal.RequireFromString("50.00"),
				Channel:    "Mobile Money",
				RecordedAt: time.Now(),
			},
		}, nil)

	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/savings/goals/" + goal.ID.String() + "/contributions",
	}, testutils.WithBearerToken(s.memberToken))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, response.StatusCode)

	var body []SavingsEntryResponse
	s.Require().NoError(json.NewDecoder(response.Body).Decode(&body))
	s.Require().Len(body, 1)
	s.Equal("50.00", body[0].Amount)
}

func (s *SavingsHandlerTestSuite) TestRedemptions() {
	goal := s.makeGoal()

	s.mockSavingsService.EXPECT().
		GetGoal(gomock.Any(), goal.ID).
		Return(goal, nil)
	s.mockSavingsService.EXPECT().
		GetRedemptions(gomock.Any(), goal.ID).
		Return([]domain.SavingsRedemption{
			{
				ID:         uuid.New(),
				GoalID:     goal.ID,
				MemberID:   s.member.ID,
				Amount:     decimal.RequireFromString("120.00"),
				Channel:    "Mobile Money",
				Note:       "stall rent",
				RecordedAt: time.Now(),
			},
		}, nil)

	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + "/savings/goals/" + goal.ID.String() + "/redemptions",
	}, testutils.WithBearerToken(s.memberToken))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, response.StatusCode)

	var body []SavingsEntryResponse
	s.Require().NoError(json.NewDecoder(response.Body).Decode(&body))
	s.Require().Len(body, 1)
	s.Equal("120.00", body[0].Amount)
	s.Equal("stall rent", body[0].Note)
}

func (s *SavingsHandlerTestSuite) TestCollect_OverCollection() {
	goal := s.makeGoal()

	s.mockSavingsService.EXPECT().
		GetGoal(gomock.Any(), goal.ID).
		Return(goal, nil)
	s.mockSavingsService.EXPECT().
		CollectSavings(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrOverCollection)

	payload := []byte(`{"amount": "100000.00"}`)
	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/savings/goals/" + goal.ID.String() + "/collect",
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearerToken(s.memberToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusUnprocessableEntity, response.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(response.Body).Decode(&body))
	s.Equal("Cannot collect more than the saved balance.", body["amount"])
}

func (s *SavingsHandlerTestSuite) TestCollect() {
	goal := s.makeGoal()

	s.mockSavingsService.EXPECT().
		GetGoal(gomock.Any(), goal.ID).
		Return(goal, nil)
	s.mockSavingsService.EXPECT().
		CollectSavings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, args service.CollectionArgs) (*service.CollectionOutcome, error) {
			updated := *goal
			updated.CurrentAmount = decimal.RequireFromString("150.00")
			memberID := s.member.ID
			return &service.CollectionOutcome{
				Goal: &updated,
				Redemption: &domain.SavingsRedemption{
					ID:         uuid.New(),
					GoalID:     goal.ID,
					MemberID:   s.member.ID,
					Amount:     args.Amount,
					RecordedAt: time.Now(),
				},
				Transaction: &domain.Transaction{
					ID:     uuid.New(),
					Type:   domain.TransactionTypePayout,
					Status: domain.TransactionStatusSuccess,
					Amount: args.Amount,
				},
				Wallet:         &domain.Wallet{ID: uuid.New(), MemberID: &memberID, Balance: decimal.RequireFromString("100.00")},
				PlatformWallet: &domain.Wallet{ID: uuid.New(), IsPlatform: true, Balance: decimal.RequireFromString("150.00")},
			}, nil
		})

	payload := []byte(`{"amount": "100.00"}`)
	response, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/savings/goals/" + goal.ID.String() + "/collect",
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearerToken(s.memberToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer response.Body.Close() //nolint:errcheck

	s.Equal(http.StatusCreated, response.StatusCode)

	var body CollectionResponse
	s.Require().NoError(json.NewDecoder(response.Body).Decode(&body))
	s.Equal("payout", body.Transaction.Type)
	s.Equal("150.00", body.Goal.CurrentAmount)
}
