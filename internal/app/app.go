package app

import (
	"context"
	"fmt"

	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"

	"github.com/sankofahq/sankofa-ledger/pkg/uow"

	"github.com/sankofahq/sankofa-ledger/internal/config"
	"github.com/sankofahq/sankofa-ledger/internal/repository/pgrepo"
	"github.com/sankofahq/sankofa-ledger/internal/service"
	"github.com/sankofahq/sankofa-ledger/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, a.Logger, a.Config.Currency)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:             a.Logger,
		LedgerService:      services.LedgerService,
		SavingsService:     services.SavingsService,
		TransactionService: services.TransactionService,
		WalletService:      services.WalletService,
		JWTSecretKey:       []byte(a.Config.JWTMemberSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// wallet repo
	walletRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewWalletRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.WalletRepoName), walletRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// transaction repo
	transactionRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewTransactionRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.TransactionRepoName),
		transactionRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// savings repo
	savingsRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewSavingsRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.SavingsRepoName), savingsRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
