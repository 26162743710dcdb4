package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// moneyExponent количество знаков после запятой у всех хранимых сумм.
const moneyExponent = 2

// QuantizeAmount приводит сумму к двум знакам после запятой с округлением
// half-up. Суммы, пришедшие из float (например 1.2000000000000002), после
// квантизации становятся точными до цента.
func QuantizeAmount(value decimal.Decimal) decimal.Decimal {
	return value.Round(moneyExponent)
}

// NormalizeAmount квантизирует сумму и требует её строгой положительности.
// Возвращает ErrInvalidAmount для нуля и отрицательных значений.
func NormalizeAmount(value decimal.Decimal) (decimal.Decimal, error) {
	quantized := QuantizeAmount(value)
	if !quantized.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidAmount, value.String())
	}
	return quantized, nil
}

// NormalizeAmountString парсит десятичную строку и нормализует её. Нечисловой
// ввод возвращает ErrInvalidAmount.
func NormalizeAmountString(value string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidAmount, value)
	}
	return NormalizeAmount(parsed)
}

// NormalizeFee квантизирует необязательную комиссию. Комиссия, в отличие от
// суммы операции, может быть нулевой или отрицательной (возврат комиссии);
// знак сохраняется.
func NormalizeFee(fee *decimal.Decimal) *decimal.Decimal {
	if fee == nil {
		return nil
	}
	quantized := QuantizeAmount(*fee)
	return &quantized
}
