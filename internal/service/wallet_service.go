package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
)

// WalletService читающая сторона кошельков. Денег не двигает: все мутации
// балансов идут через LedgerService.
type WalletService struct {
	uow        uow.UOW
	walletRepo WalletRepository
	currency   string
	logger     logrus.FieldLogger
}

func NewWalletService(u uow.UOW, currency string, l logrus.FieldLogger) (*WalletService, error) {
	walletRepo, repoErr := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return &WalletService{
		uow:        u,
		walletRepo: walletRepo,
		currency:   currency,
		logger:     l,
	}, nil
}

// GetBalance возвращает кошелек участника, создавая его при необходимости.
// Путь best-effort: если хранилище недоступно, участник увидит нулевой кошелек
// вместо ошибки. Денежные операции этим путем не пользуются — они получают
// кошельки под блокировкой внутри своей транзакции.
func (w *WalletService) GetBalance(ctx context.Context, member Member) *domain.Wallet {
	wallet, err := w.walletRepo.EnsureForMember(ctx, repoargs.EnsureMemberWallet{
		MemberID: member.ID,
		Name:     member.walletName(),
		Currency: w.currency,
	})
	if err != nil {
		w.logger.WithError(err).WithField("memberID", member.ID).Warn("best-effort wallet lookup failed")
		memberID := member.ID
		return &domain.Wallet{
			MemberID: &memberID,
			Name:     member.walletName(),
			Balance:  decimal.NewFromInt(0),
			Currency: w.currency,
		}
	}
	return wallet
}
