package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/sankofahq/sankofa-ledger/internal/domain"
	"github.com/sankofahq/sankofa-ledger/internal/service"
)

type WalletHandler struct {
	ledgerSvs LedgerServicer
	walletSvs WalletServicer
}

func NewWalletHandler(ledgerSvs LedgerServicer, walletSvs WalletServicer) *WalletHandler {
	return &WalletHandler{
		ledgerSvs: ledgerSvs,
		walletSvs: walletSvs,
	}
}

// Show GET RouteGroup + WalletRoute.
func (w *WalletHandler) Show(c *gin.Context) {
	currentMember := getCurrentMember(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	wallet := w.walletSvs.GetBalance(reqCtx, currentMember)
	c.JSON(http.StatusOK, newWalletResponse(wallet))
}

type DepositParams struct {
	Amount       decimal.Decimal  `json:"amount"`
	Channel      string           `json:"channel" binding:"omitempty,max_bytes=64"`
	Reference    string           `json:"reference" binding:"omitempty,max_bytes=128"`
	Fee          *decimal.Decimal `json:"fee"`
	Description  string           `json:"description" binding:"omitempty,max_bytes=255"`
	Counterparty string           `json:"counterparty" binding:"omitempty,max_bytes=128"`
}

// Deposit POST RouteGroup + DepositRoute.
func (w *WalletHandler) Deposit(c *gin.Context) {
	currentMember := getCurrentMember(c)

	var params DepositParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	operation, err := w.ledgerSvs.Deposit(reqCtx, service.DepositArgs{
		Member:       currentMember,
		Amount:       params.Amount,
		Channel:      params.Channel,
		Reference:    params.Reference,
		Fee:          params.Fee,
		Description:  params.Description,
		Counterparty: params.Counterparty,
	})
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newWalletOperationResponse(operation))
}

type WithdrawParams struct {
	Amount       decimal.Decimal  `json:"amount"`
	Status       string           `json:"status" binding:"omitempty,max_bytes=16"`
	Channel      string           `json:"channel" binding:"omitempty,max_bytes=64"`
	Reference    string           `json:"reference" binding:"omitempty,max_bytes=128"`
	Fee          *decimal.Decimal `json:"fee"`
	Description  string           `json:"description" binding:"omitempty,max_bytes=255"`
	Counterparty string           `json:"counterparty" binding:"omitempty,max_bytes=128"`
	Destination  string           `json:"destination" binding:"omitempty,max_bytes=128"`
	Note         string           `json:"note" binding:"omitempty,max_bytes=255"`
}

// Withdraw POST RouteGroup + WithdrawRoute.
func (w *WalletHandler) Withdraw(c *gin.Context) {
	currentMember := getCurrentMember(c)

	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	operation, err := w.ledgerSvs.Withdraw(reqCtx, service.WithdrawArgs{
		Member:       currentMember,
		Amount:       params.Amount,
		Status:       domain.TransactionStatus(params.Status),
		Channel:      params.Channel,
		Reference:    params.Reference,
		Fee:          params.Fee,
		Description:  params.Description,
		Counterparty: params.Counterparty,
		Destination:  params.Destination,
		Note:         params.Note,
	})
	if err != nil {
		abortWithLedgerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newWalletOperationResponse(operation))
}

// abortWithLedgerError переводит доменные ошибки денежных операций в ответы
// с ключом поля, на котором операция отклонена.
func abortWithLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"amount": "Amount must be a positive number.",
		})
	case errors.Is(err, domain.ErrInsufficientBalance):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"amount": "Insufficient wallet balance for withdrawal.",
		})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"status": "Invalid status supplied.",
		})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
