package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sankofahq/sankofa-ledger/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup               = "/api"
	WalletRoute              = "/wallet"
	DepositRoute             = "/wallet/deposit"
	WithdrawRoute            = "/wallet/withdraw"
	TransactionsRoute        = "/transactions"
	TransactionsSummaryRoute = "/transactions/summary"
	GoalsRoute               = "/savings/goals"
	GoalContributionsRoute   = "/savings/goals/:id/contributions"
	GoalRedemptionsRoute     = "/savings/goals/:id/redemptions"
	GoalCollectRoute         = "/savings/goals/:id/collect"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	LedgerService      LedgerServicer
	SavingsService     SavingsServicer
	TransactionService TransactionServicer
	WalletService      WalletServicer
	JWTSecretKey       []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	if err := registerValidators(); err != nil && args.Logger != nil {
		args.Logger.WithError(err).Error("validator registration failed")
	}

	walletHandler := NewWalletHandler(args.LedgerService, args.WalletService)
	transactionsHandler := NewTransactionsHandler(args.TransactionService)
	savingsHandler := NewSavingsHandler(args.SavingsService)

	api := r.Group(RouteGroup)
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))

	api.GET(WalletRoute, walletHandler.Show)
	api.POST(DepositRoute, walletHandler.Deposit)
	api.POST(WithdrawRoute, walletHandler.Withdraw)

	api.GET(TransactionsRoute, transactionsHandler.Index)
	api.GET(TransactionsSummaryRoute, transactionsHandler.Summary)

	api.POST(GoalsRoute, savingsHandler.CreateGoal)
	api.GET(GoalsRoute, savingsHandler.Index)
	api.GET(GoalContributionsRoute, savingsHandler.Contributions)
	api.POST(GoalContributionsRoute, savingsHandler.AddContribution)
	api.GET(GoalRedemptionsRoute, savingsHandler.Redemptions)
	api.POST(GoalCollectRoute, savingsHandler.Collect)
	return r
}
