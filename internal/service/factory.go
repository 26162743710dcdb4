package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sankofahq/sankofa-ledger/pkg/uow"
)

type AppServices struct {
	LedgerService      *LedgerService
	SavingsService     *SavingsService
	TransactionService *TransactionService
	WalletService      *WalletService
}

func Factory(unitOfWork uow.UOW, l *logrus.Logger, currency string) (*AppServices, error) {
	ledgerService := NewLedgerService(unitOfWork, currency)

	savingsService, savingsServiceErr := NewSavingsService(unitOfWork, ledgerService)
	if savingsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", savingsServiceErr.Error())
	}

	transactionService, transactionServiceErr := NewTransactionService(unitOfWork)
	if transactionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transactionServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(unitOfWork, currency, l)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	return &AppServices{
		LedgerService:      ledgerService,
		SavingsService:     savingsService,
		TransactionService: transactionService,
		WalletService:      walletService,
	}, nil
}
