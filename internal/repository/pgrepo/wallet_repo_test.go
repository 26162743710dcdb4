package pgrepo

import (
	"os"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/logger"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
)

// Интеграционные тесты гоняются по живой базе; без TEST_DATABASE_URI пакет
// пропускается целиком.
type WalletRepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *WalletRepository
}

func TestWalletRepositorySuite(t *testing.T) {
	suite.Run(t, new(WalletRepositoryTestSuite))
}

func (s *WalletRepositoryTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_URI is not set")
	}

	pool, err := Connect(s.T().Context(), "../../db/migrations", dsn, logger.New(os.Stdout))
	s.Require().NoError(err)

	s.pool = pool
	s.repo = NewWalletRepository(pool)
}

func (s *WalletRepositoryTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *WalletRepositoryTestSuite) freshMemberArgs() repoargs.EnsureMemberWallet {
	return repoargs.EnsureMemberWallet{
		MemberID: int64(gofakeit.Number(1_000_000, 900_000_000)),
		Name:     gofakeit.Name(),
		Currency: "GHS",
	}
}

// TestEnsureForMember первый вызов создаёт кошелёк, повторный возвращает ту же
// строку; INSERT .. ON CONFLICT (member_id) не должен падать ни на одном из них.
func (s *WalletRepositoryTestSuite) TestEnsureForMember() {
	ctx := s.T().Context()
	args := s.freshMemberArgs()

	created, err := s.repo.EnsureForMember(ctx, args)
	s.Require().NoError(err)
	s.Require().NotNil(created.MemberID)
	s.Equal(args.MemberID, *created.MemberID)
	s.False(created.IsPlatform)
	s.True(created.Balance.IsZero())

	again, err := s.repo.EnsureForMember(ctx, args)
	s.Require().NoError(err)
	s.Equal(created.ID, again.ID)
}

// TestEnsurePlatform_Singleton гонка двух создателей платформенного кошелька
// разрешается частичным уникальным индексом: оба получают одну и ту же строку.
func (s *WalletRepositoryTestSuite) TestEnsurePlatform_Singleton() {
	ctx := s.T().Context()

	wallets := make([]*domain.Wallet, 2)
	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i := range wallets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wallets[i], errs[i] = s.repo.EnsurePlatform(ctx, "GHS")
		}(i)
	}
	wg.Wait()

	for i := range wallets {
		s.Require().NoError(errs[i])
		s.Require().NotNil(wallets[i])
		s.True(wallets[i].IsPlatform)
	}
	s.Equal(wallets[0].ID, wallets[1].ID)
}

func (s *WalletRepositoryTestSuite) TestLockForUpdateAndUpdateBalance() {
	ctx := s.T().Context()
	args := s.freshMemberArgs()

	wallet, err := s.repo.EnsureForMember(ctx, args)
	s.Require().NoError(err)

	tx, err := s.pool.Begin(ctx)
	s.Require().NoError(err)
	txRepo := NewWalletRepository(tx)

	locked, err := txRepo.LockForUpdate(ctx, wallet.ID)
	s.Require().NoError(err)
	s.Equal(wallet.ID, locked.ID)

	updated, err := txRepo.UpdateBalance(ctx, wallet.ID, decimal.RequireFromString("75.25"))
	s.Require().NoError(err)
	s.Equal("75.25", updated.Balance.StringFixed(2))
	s.Require().NoError(tx.Commit(ctx))

	reread, err := s.repo.GetByMemberID(ctx, args.MemberID)
	s.Require().NoError(err)
	s.Equal("75.25", reread.Balance.StringFixed(2))
}
