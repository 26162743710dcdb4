package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
)

// Member данные участника от внешнего провайдера идентичности. Телефон служит
// контрагентом по умолчанию, имя — названием кошелька.
type Member struct {
	ID       int64
	Phone    string
	FullName string
}

func (m Member) walletName() string {
	if m.FullName != "" {
		return m.FullName
	}
	return m.Phone
}

// WalletOperation результат денежной операции: запись журнала и оба кошелька
// с балансами после применения операции.
type WalletOperation struct {
	Transaction    *domain.Transaction
	Wallet         *domain.Wallet
	PlatformWallet *domain.Wallet
}

type LedgerService struct {
	uow      uow.UOW
	currency string
}

func NewLedgerService(u uow.UOW, currency string) *LedgerService {
	return &LedgerService{
		uow:      u,
		currency: currency,
	}
}

type DepositArgs struct {
	Member       Member
	Amount       decimal.Decimal
	Channel      string
	Reference    string
	Fee          *decimal.Decimal
	Description  string
	Counterparty string
}

// Deposit зачисляет средства участнику и зеркально платформенному кошельку.
// Проверка баланса не выполняется: депозит успешен всегда. Оба кошелька и
// запись журнала изменяются в одной транзакции.
func (l *LedgerService) Deposit(ctx context.Context, args DepositArgs) (*WalletOperation, error) {
	amount, amountErr := domain.NormalizeAmount(args.Amount)
	if amountErr != nil {
		return nil, amountErr
	}
	fee := domain.NormalizeFee(args.Fee)

	var operation *WalletOperation
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		memberWallet, platformWallet, lockErr := l.lockWallets(c, tx, args.Member)
		if lockErr != nil {
			return lockErr
		}

		walletRepo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		memberWallet, updErr := walletRepo.UpdateBalance(c, memberWallet.ID, memberWallet.Balance.Add(amount))
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		platformWallet, updErr = walletRepo.UpdateBalance(c, platformWallet.ID, platformWallet.Balance.Add(amount))
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		transaction, createErr := l.appendTransaction(c, tx, repoargs.TransactionCreate{
			MemberID:             args.Member.ID,
			Type:                 domain.TransactionTypeDeposit,
			Status:               domain.TransactionStatusSuccess,
			Amount:               amount,
			Description:          defaultIfBlank(args.Description, "Wallet deposit"),
			OccurredAt:           time.Now(),
			Channel:              args.Channel,
			Fee:                  fee,
			Reference:            args.Reference,
			Counterparty:         defaultIfBlank(args.Counterparty, args.Member.Phone),
			BalanceAfter:         memberWallet.Balance,
			PlatformBalanceAfter: platformWallet.Balance,
		})
		if createErr != nil {
			return createErr
		}

		operation = &WalletOperation{
			Transaction:    transaction,
			Wallet:         memberWallet,
			PlatformWallet: platformWallet,
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("applying deposit: %w", txErr)
	}
	return operation, nil
}

type WithdrawArgs struct {
	Member       Member
	Amount       decimal.Decimal
	Status       domain.TransactionStatus
	Channel      string
	Reference    string
	Fee          *decimal.Decimal
	Description  string
	Counterparty string
	Destination  string
	Note         string
}

// Withdraw списывает средства с кошелька участника и платформенного кошелька.
// Запрошенный статус failed записывает неуспешную попытку: балансы не меняются,
// но updated_at обоих кошельков обновляется и запись журнала создается — след
// попытки остается виден в аудите.
func (l *LedgerService) Withdraw(ctx context.Context, args WithdrawArgs) (*WalletOperation, error) {
	amount, amountErr := domain.NormalizeAmount(args.Amount)
	if amountErr != nil {
		return nil, amountErr
	}
	fee := domain.NormalizeFee(args.Fee)

	requestedStatus := args.Status
	if requestedStatus == "" {
		requestedStatus = domain.TransactionStatusPending
	}
	if !domain.ValidTransactionStatus(requestedStatus) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, requestedStatus)
	}

	var operation *WalletOperation
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		memberWallet, platformWallet, lockErr := l.lockWallets(c, tx, args.Member)
		if lockErr != nil {
			return lockErr
		}

		if requestedStatus != domain.TransactionStatusFailed && memberWallet.Balance.LessThan(amount) {
			return domain.ErrInsufficientBalance
		}

		walletRepo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var updErr error
		if requestedStatus != domain.TransactionStatusFailed {
			memberWallet, updErr = walletRepo.UpdateBalance(c, memberWallet.ID, memberWallet.Balance.Sub(amount))
			if updErr != nil {
				return updErr //nolint:wrapcheck
			}
			platformWallet, updErr = walletRepo.UpdateBalance(c, platformWallet.ID, platformWallet.Balance.Sub(amount))
			if updErr != nil {
				return updErr //nolint:wrapcheck
			}
		} else {
			memberWallet, updErr = walletRepo.TouchUpdatedAt(c, memberWallet.ID)
			if updErr != nil {
				return updErr //nolint:wrapcheck
			}
			platformWallet, updErr = walletRepo.TouchUpdatedAt(c, platformWallet.ID)
			if updErr != nil {
				return updErr //nolint:wrapcheck
			}
		}

		transaction, createErr := l.appendTransaction(c, tx, repoargs.TransactionCreate{
			MemberID:             args.Member.ID,
			Type:                 domain.TransactionTypeWithdrawal,
			Status:               requestedStatus,
			Amount:               amount,
			Description:          joinNote(defaultIfBlank(args.Description, "Wallet withdrawal"), args.Note),
			OccurredAt:           time.Now(),
			Channel:              args.Channel,
			Fee:                  fee,
			Reference:            args.Reference,
			Counterparty:         defaultIfBlank(args.Destination, defaultIfBlank(args.Counterparty, args.Member.Phone)),
			BalanceAfter:         memberWallet.Balance,
			PlatformBalanceAfter: platformWallet.Balance,
		})
		if createErr != nil {
			return createErr
		}

		operation = &WalletOperation{
			Transaction:    transaction,
			Wallet:         memberWallet,
			PlatformWallet: platformWallet,
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("applying withdrawal: %w", txErr)
	}
	return operation, nil
}

type SavingsTransferArgs struct {
	Member       Member
	Goal         *domain.SavingsGoal
	Amount       decimal.Decimal
	Channel      string
	Reference    string
	Description  string
	Counterparty string
	Note         string
}

// ApplySavingsContribution перевод участник -> платформа: взнос в цель
// накоплений учитывается на платформенном флоте.
func (l *LedgerService) ApplySavingsContribution(
	ctx context.Context,
	args SavingsTransferArgs,
) (*WalletOperation, error) {
	var operation *WalletOperation
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var opErr error
		operation, opErr = l.ApplySavingsContributionTx(c, tx, args)
		return opErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("applying savings contribution: %w", txErr)
	}
	return operation, nil
}

// ApplySavingsContributionTx вариант для вызова внутри уже открытой транзакции
// (сервис накоплений к этому моменту держит блокировку строки цели).
func (l *LedgerService) ApplySavingsContributionTx(
	ctx context.Context,
	tx uow.TX,
	args SavingsTransferArgs,
) (*WalletOperation, error) {
	amount, amountErr := domain.NormalizeAmount(args.Amount)
	if amountErr != nil {
		return nil, amountErr
	}

	memberWallet, platformWallet, lockErr := l.lockWallets(ctx, tx, args.Member)
	if lockErr != nil {
		return nil, lockErr
	}

	if memberWallet.Balance.LessThan(amount) {
		return nil, domain.ErrInsufficientBalance
	}

	walletRepo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	memberWallet, updErr := walletRepo.UpdateBalance(ctx, memberWallet.ID, memberWallet.Balance.Sub(amount))
	if updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}
	platformWallet, updErr = walletRepo.UpdateBalance(ctx, platformWallet.ID, platformWallet.Balance.Add(amount))
	if updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}

	goalID := args.Goal.ID
	transaction, createErr := l.appendTransaction(ctx, tx, repoargs.TransactionCreate{
		MemberID:             args.Member.ID,
		Type:                 domain.TransactionTypeSavings,
		Status:               domain.TransactionStatusSuccess,
		Amount:               amount,
		Description:          joinNote(defaultIfBlank(args.Description, "Savings contribution to "+args.Goal.Title), args.Note),
		OccurredAt:           time.Now(),
		Channel:              args.Channel,
		Reference:            args.Reference,
		Counterparty:         defaultIfBlank(args.Counterparty, args.Member.Phone),
		BalanceAfter:         memberWallet.Balance,
		PlatformBalanceAfter: platformWallet.Balance,
		GoalRef:              &goalID,
	})
	if createErr != nil {
		return nil, createErr
	}

	return &WalletOperation{
		Transaction:    transaction,
		Wallet:         memberWallet,
		PlatformWallet: platformWallet,
	}, nil
}

// ApplySavingsPayout перевод платформа -> участник: возврат накоплений на
// кошелек. Требует достаточного баланса платформенного флота.
func (l *LedgerService) ApplySavingsPayout(
	ctx context.Context,
	args SavingsTransferArgs,
) (*WalletOperation, error) {
	var operation *WalletOperation
	txErr := l.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var opErr error
		operation, opErr = l.ApplySavingsPayoutTx(c, tx, args)
		return opErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("applying savings payout: %w", txErr)
	}
	return operation, nil
}

func (l *LedgerService) ApplySavingsPayoutTx(
	ctx context.Context,
	tx uow.TX,
	args SavingsTransferArgs,
) (*WalletOperation, error) {
	amount, amountErr := domain.NormalizeAmount(args.Amount)
	if amountErr != nil {
		return nil, amountErr
	}

	memberWallet, platformWallet, lockErr := l.lockWallets(ctx, tx, args.Member)
	if lockErr != nil {
		return nil, lockErr
	}

	if platformWallet.Balance.LessThan(amount) {
		return nil, domain.ErrInsufficientPlatformBalance
	}

	walletRepo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	memberWallet, updErr := walletRepo.UpdateBalance(ctx, memberWallet.ID, memberWallet.Balance.Add(amount))
	if updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}
	platformWallet, updErr = walletRepo.UpdateBalance(ctx, platformWallet.ID, platformWallet.Balance.Sub(amount))
	if updErr != nil {
		return nil, updErr //nolint:wrapcheck
	}

	goalID := args.Goal.ID
	transaction, createErr := l.appendTransaction(ctx, tx, repoargs.TransactionCreate{
		MemberID:             args.Member.ID,
		Type:                 domain.TransactionTypePayout,
		Status:               domain.TransactionStatusSuccess,
		Amount:               amount,
		Description:          joinNote(defaultIfBlank(args.Description, "Savings payout from "+args.Goal.Title), args.Note),
		OccurredAt:           time.Now(),
		Channel:              args.Channel,
		Reference:            args.Reference,
		Counterparty:         defaultIfBlank(args.Counterparty, args.Member.Phone),
		BalanceAfter:         memberWallet.Balance,
		PlatformBalanceAfter: platformWallet.Balance,
		GoalRef:              &goalID,
	})
	if createErr != nil {
		return nil, createErr
	}

	return &WalletOperation{
		Transaction:    transaction,
		Wallet:         memberWallet,
		PlatformWallet: platformWallet,
	}, nil
}

// lockWallets гарантирует существование обоих кошельков и берет блокировки в
// фиксированном порядке: сначала кошелек участника, затем платформенный.
// Единый порядок во всех четырех операциях исключает взаимную блокировку
// встречных операций на одной паре кошельков.
func (l *LedgerService) lockWallets(
	ctx context.Context,
	tx uow.TX,
	member Member,
) (*domain.Wallet, *domain.Wallet, error) {
	walletRepo, repoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
	if repoErr != nil {
		return nil, nil, repoErr //nolint:wrapcheck
	}

	memberWallet, memberErr := walletRepo.EnsureForMember(ctx, repoargs.EnsureMemberWallet{
		MemberID: member.ID,
		Name:     member.walletName(),
		Currency: l.currency,
	})
	if memberErr != nil {
		return nil, nil, memberErr //nolint:wrapcheck
	}
	platformWallet, platformErr := walletRepo.EnsurePlatform(ctx, l.currency)
	if platformErr != nil {
		return nil, nil, platformErr //nolint:wrapcheck
	}

	memberWallet, memberErr = walletRepo.LockForUpdate(ctx, memberWallet.ID)
	if memberErr != nil {
		return nil, nil, memberErr //nolint:wrapcheck
	}
	platformWallet, platformErr = walletRepo.LockForUpdate(ctx, platformWallet.ID)
	if platformErr != nil {
		return nil, nil, platformErr //nolint:wrapcheck
	}
	return memberWallet, platformWallet, nil
}

func (l *LedgerService) appendTransaction(
	ctx context.Context,
	tx uow.TX,
	args repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	transactionRepo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	return transactionRepo.Create(ctx, args) //nolint:wrapcheck
}

// joinNote присоединяет произвольную заметку к базовому описанию через длинное
// тире, как это делает мобильный клиент.
func joinNote(description, note string) string {
	if note == "" {
		return description
	}
	if description == "" {
		return note
	}
	return description + " — " + note
}

func defaultIfBlank(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
