package domain

import (
	"testing"

	financeErrors "github.com/sebuszqo/PaymentService/internal/finance/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluatePayment(t *testing.T) {
	tests := []struct {
		name    string
		scheme  PaymentScheme
		amount  int64
		account Account
		want    Verdict
	}{
		{
			name:    "bacs allowed",
			scheme:  PaymentSchemeBacs,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeBacs), Status: AccountStatusDisabled},
			want:    Satisfied,
		},
		{
			name:    "bacs allowed ignores balance",
			scheme:  PaymentSchemeBacs,
			amount:  500,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeBacs), Balance: decimal.NewFromInt(10)},
			want:    Satisfied,
		},
		{
			name:    "bacs not allowed",
			scheme:  PaymentSchemeBacs,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeFasterPayments)},
			want:    Unsatisfied,
		},
		{
			name:    "faster payments sufficient balance",
			scheme:  PaymentSchemeFasterPayments,
			amount:  100,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeFasterPayments), Balance: decimal.NewFromInt(150)},
			want:    Satisfied,
		},
		{
			name:    "faster payments balance equals amount",
			scheme:  PaymentSchemeFasterPayments,
			amount:  100,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeFasterPayments), Balance: decimal.NewFromInt(100)},
			want:    Satisfied,
		},
		{
			name:    "faster payments insufficient balance",
			scheme:  PaymentSchemeFasterPayments,
			amount:  100,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeFasterPayments), Balance: decimal.NewFromInt(50)},
			want:    Unsatisfied,
		},
		{
			name:    "faster payments not allowed",
			scheme:  PaymentSchemeFasterPayments,
			amount:  1,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeBacs, PaymentSchemeChaps), Balance: decimal.NewFromInt(50)},
			want:    Unsatisfied,
		},
		{
			name:    "chaps live",
			scheme:  PaymentSchemeChaps,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeChaps), Status: AccountStatusLive},
			want:    Satisfied,
		},
		{
			name:    "chaps disabled",
			scheme:  PaymentSchemeChaps,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeChaps), Status: AccountStatusDisabled},
			want:    Unsatisfied,
		},
		{
			name:    "chaps inbound payments only",
			scheme:  PaymentSchemeChaps,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeChaps), Status: AccountStatusInboundPaymentsOnly},
			want:    Unsatisfied,
		},
		{
			name:    "chaps not allowed",
			scheme:  PaymentSchemeChaps,
			account: Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeBacs), Status: AccountStatusLive},
			want:    Unsatisfied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := tt.account
			before := account.Balance
			request := MakePaymentRequest{PaymentScheme: tt.scheme, Amount: decimal.NewFromInt(tt.amount)}

			got, err := EvaluatePayment(tt.scheme, request, &account)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, before.Equal(account.Balance), "evaluation must not touch the balance")
		})
	}
}

func TestEvaluatePayment_UnknownScheme(t *testing.T) {
	account := &Account{AllowedPaymentSchemes: NewPaymentSchemes(PaymentSchemeBacs, PaymentSchemeFasterPayments, PaymentSchemeChaps)}

	got, err := EvaluatePayment(PaymentScheme(42), MakePaymentRequest{}, account)

	assert.ErrorIs(t, err, financeErrors.ErrUnknownPaymentScheme)
	assert.Equal(t, Unsatisfied, got)
}
