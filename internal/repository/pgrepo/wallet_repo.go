package pgrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/repository/repoargs"
	"github.com/sankofahq/sankofa-ledger/pkg/uow"
)

// walletColumns суммы выбираются как text и парсятся в decimal, чтобы не терять
// точность на float64.
const walletColumns = `id, created_at, updated_at, member_id, name, is_platform, balance::text, currency`

type WalletRepository struct {
	conn uow.DBTX
}

func NewWalletRepository(conn uow.DBTX) *WalletRepository {
	return &WalletRepository{conn: conn}
}

// EnsurePlatform возвращает платформенный кошелек, создавая его при первом
// обращении. Гонку двух создателей разруливает частичный уникальный индекс по
// is_platform: проигравший INSERT ничего не вставляет и читает существующую строку.
func (w *WalletRepository) EnsurePlatform(ctx context.Context, currency string) (*domain.Wallet, error) {
	insertQuery := `
		INSERT INTO wallets (id, name, is_platform, balance, currency)
		VALUES ($1, 'Platform Float', TRUE, 0, $2)
		ON CONFLICT (is_platform) WHERE is_platform DO NOTHING`

	if _, err := w.conn.Exec(ctx, insertQuery, uuid.New(), currency); err != nil {
		return nil, convertErr(err, "ensuring platform wallet")
	}

	selectQuery := `SELECT ` + walletColumns + ` FROM wallets WHERE is_platform = TRUE`
	wallet, err := scanWallet(w.conn.QueryRow(ctx, selectQuery))
	if err != nil {
		return nil, convertErr(err, "ensuring platform wallet")
	}
	return wallet, nil
}

// EnsureForMember возвращает кошелек участника, создавая его с нулевым балансом
// если кошелька еще нет.
func (w *WalletRepository) EnsureForMember(
	ctx context.Context,
	args repoargs.EnsureMemberWallet,
) (*domain.Wallet, error) {
	insertQuery := `
		INSERT INTO wallets (id, member_id, name, is_platform, balance, currency)
		VALUES ($1, $2, $3, FALSE, 0, $4)
		ON CONFLICT (member_id) DO NOTHING`

	if _, err := w.conn.Exec(ctx, insertQuery, uuid.New(), args.MemberID, args.Name, args.Currency); err != nil {
		return nil, convertErr(err, "ensuring wallet for member %d", args.MemberID)
	}

	selectQuery := `SELECT ` + walletColumns + ` FROM wallets WHERE member_id = $1`
	wallet, err := scanWallet(w.conn.QueryRow(ctx, selectQuery, args.MemberID))
	if err != nil {
		return nil, convertErr(err, "ensuring wallet for member %d", args.MemberID)
	}
	return wallet, nil
}

func (w *WalletRepository) GetByMemberID(ctx context.Context, memberID int64) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE member_id = $1`
	wallet, err := scanWallet(w.conn.QueryRow(ctx, query, memberID))
	if err != nil {
		return nil, convertErr(err, "getting wallet by member %d", memberID)
	}
	return wallet, nil
}

// LockForUpdate перечитывает строку кошелька под эксклюзивной блокировкой.
// Блокировка держится до конца объемлющей транзакции.
func (w *WalletRepository) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`
	wallet, err := scanWallet(w.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "locking wallet %s", id)
	}
	return wallet, nil
}

func (w *WalletRepository) UpdateBalance(
	ctx context.Context,
	id uuid.UUID,
	balance decimal.Decimal,
) (*domain.Wallet, error) {
	query := `
		UPDATE wallets SET balance = $2::numeric, updated_at = now()
		WHERE id = $1
		RETURNING ` + walletColumns

	wallet, err := scanWallet(w.conn.QueryRow(ctx, query, id, balance.String()))
	if err != nil {
		return nil, convertErr(err, "updating balance of wallet %s", id)
	}
	return wallet, nil
}

// TouchUpdatedAt обновляет updated_at не меняя баланс. Используется для
// фиксации неуспешной попытки вывода средств.
func (w *WalletRepository) TouchUpdatedAt(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `UPDATE wallets SET updated_at = now() WHERE id = $1 RETURNING ` + walletColumns

	wallet, err := scanWallet(w.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, convertErr(err, "touching wallet %s", id)
	}
	return wallet, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	var balance string

	err := row.Scan(
		&wallet.ID,
		&wallet.CreatedAt,
		&wallet.UpdatedAt,
		&wallet.MemberID,
		&wallet.Name,
		&wallet.IsPlatform,
		&balance,
		&wallet.Currency,
	)
	if err != nil {
		return nil, err
	}

	wallet.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
