package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/service"
)

type SavingsHandler struct {
	savingsSvs SavingsServicer
}

func NewSavingsHandler(savingsSvs SavingsServicer) *SavingsHandler {
	return &SavingsHandler{
		savingsSvs: savingsSvs,
	}
}

type CreateGoalParams struct {
	Title        string          `json:"title" binding:"required,max_bytes=128"`
	Category     string          `json:"category" binding:"omitempty,max_bytes=64"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     time.Time       `json:"deadline" binding:"required"`
}

// CreateGoal POST RouteGroup + GoalsRoute.
func (s *SavingsHandler) CreateGoal(c *gin.Context) {
	currentMember := getCurrentMember(c)

	var params CreateGoalParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	goal, err := s.savingsSvs.CreateGoal(reqCtx, service.CreateGoalArgs{
		Member:       currentMember,
		Title:        params.Title,
		Category:     params.Category,
		TargetAmount: params.TargetAmount,
		Deadline:     params.Deadline,
	})
	if err != nil {
		abortWithSavingsError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newSavingsGoalResponse(goal))
}

// Index GET RouteGroup + GoalsRoute.
func (s *SavingsHandler) Index(c *gin.Context) {
	currentMember := getCurrentMember(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	goals, err := s.savingsSvs.GetGoalsByMemberID(reqCtx, currentMember.ID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]SavingsGoalResponse, len(goals))
	for i := range goals {
		response[i] = newSavingsGoalResponse(&goals[i])
	}
	c.JSON(http.StatusOK, response)
}

// Contributions GET RouteGroup + GoalContributionsRoute.
func (s *SavingsHandler) Contributions(c *gin.Context) {
	currentMember := getCurrentMember(c)

	goalID, ok := s.findMemberGoalID(c, currentMember)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	contributions, err := s.savingsSvs.GetContributions(reqCtx, goalID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]SavingsEntryResponse, len(contributions))
	for i := range contributions {
		response[i] = newContributionResponse(&contributions[i])
	}
	c.JSON(http.StatusOK, response)
}

// Redemptions GET RouteGroup + GoalRedemptionsRoute.
func (s *SavingsHandler) Redemptions(c *gin.Context) {
	currentMember := getCurrentMember(c)

	goalID, ok := s.findMemberGoalID(c, currentMember)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	redemptions, err := s.savingsSvs.GetRedemptions(reqCtx, goalID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]SavingsEntryResponse, len(redemptions))
	for i := range redemptions {
		response[i] = newRedemptionResponse(&redemptions[i])
	}
	c.JSON(http.StatusOK, response)
}

type SavingsEntryParams struct {
	Amount  decimal.Decimal `json:"amount"`
	Channel string          `json:"channel" binding:"omitempty,max_bytes=64"`
	Note    string          `json:"note" binding:"omitempty,max_bytes=255"`
}

type ContributionResponse struct {
	Goal               *SavingsGoalResponse `json:"goal"`
	Contribution       SavingsEntryResponse `json:"contribution"`
	UnlockedMilestones []MilestoneResponse  `json:"unlockedMilestones"`
	Transaction        TransactionResponse  `json:"transaction"`
	Wallet             WalletResponse       `json:"wallet"`
	PlatformWallet     WalletResponse       `json:"platformWallet"`
}

// AddContribution POST RouteGroup + GoalContributionsRoute.
func (s *SavingsHandler) AddContribution(c *gin.Context) {
	currentMember := getCurrentMember(c)

	goalID, ok := s.findMemberGoalID(c, currentMember)
	if !ok {
		return
	}

	var params SavingsEntryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	outcome, err := s.savingsSvs.RecordContribution(reqCtx, service.ContributionArgs{
		GoalID:  goalID,
		Member:  currentMember,
		Amount:  params.Amount,
		Channel: params.Channel,
		Note:    params.Note,
	})
	if err != nil {
		abortWithSavingsError(c, err)
		return
	}

	goalResponse := newSavingsGoalResponse(outcome.Goal)
	c.JSON(http.StatusCreated, ContributionResponse{
		Goal:               &goalResponse,
		Contribution:       newContributionResponse(outcome.Contribution),
		UnlockedMilestones: newMilestoneResponses(outcome.UnlockedMilestones),
		Transaction:        newTransactionResponse(outcome.Transaction),
		Wallet:             newWalletResponse(outcome.Wallet),
		PlatformWallet:     newWalletResponse(outcome.PlatformWallet),
	})
}

type CollectionResponse struct {
	Goal           *SavingsGoalResponse `json:"goal"`
	Redemption     SavingsEntryResponse `json:"redemption"`
	Transaction    TransactionResponse  `json:"transaction"`
	Wallet         WalletResponse       `json:"wallet"`
	PlatformWallet WalletResponse       `json:"platformWallet"`
}

// Collect POST RouteGroup + GoalCollectRoute.
func (s *SavingsHandler) Collect(c *gin.Context) {
	currentMember := getCurrentMember(c)

	goalID, ok := s.findMemberGoalID(c, currentMember)
	if !ok {
		return
	}

	var params SavingsEntryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	outcome, err := s.savingsSvs.CollectSavings(reqCtx, service.CollectionArgs{
		GoalID:  goalID,
		Member:  currentMember,
		Amount:  params.Amount,
		Channel: params.Channel,
		Note:    params.Note,
	})
	if err != nil {
		abortWithSavingsError(c, err)
		return
	}

	goalResponse := newSavingsGoalResponse(outcome.Goal)
	c.JSON(http.StatusCreated, CollectionResponse{
		Goal:           &goalResponse,
		Redemption:     newRedemptionResponse(outcome.Redemption),
		Transaction:    newTransactionResponse(outcome.Transaction),
		Wallet:         newWalletResponse(outcome.Wallet),
		PlatformWallet: newWalletResponse(outcome.PlatformWallet),
	})
}

// findMemberGoalID разбирает :id и проверяет что цель принадлежит текущему
// участнику. Чужая цель неотличима от несуществующей: в обоих случаях 404.
func (s *SavingsHandler) findMemberGoalID(c *gin.Context, member service.Member) (uuid.UUID, bool) {
	goalID, parseErr := uuid.Parse(c.Param("id"))
	if parseErr != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return uuid.Nil, false
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	goal, err := s.savingsSvs.GetGoal(reqCtx, goalID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
		} else {
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return uuid.Nil, false
	}
	if goal.MemberID != member.ID {
		c.AbortWithStatus(http.StatusNotFound)
		return uuid.Nil, false
	}
	return goalID, true
}

func abortWithSavingsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"amount": "Amount must be a positive number.",
		})
	case errors.Is(err, domain.ErrInsufficientBalance):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"amount": "Insufficient wallet balance for savings contribution.",
		})
	case errors.Is(err, domain.ErrOverCollection):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"amount": "Cannot collect more than the saved balance.",
		})
	case errors.Is(err, domain.ErrInsufficientPlatformBalance):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"amount": "Insufficient platform balance to release savings.",
		})
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
