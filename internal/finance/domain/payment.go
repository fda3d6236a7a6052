package domain

import (
	"strings"
	"time"

	financeErrors "github.com/sebuszqo/PaymentService/internal/finance/errors"
	"github.com/shopspring/decimal"
)

// PaymentScheme starts at 1 so that an unset scheme is never mistaken for a real one.
type PaymentScheme int

const (
	PaymentSchemeBacs PaymentScheme = iota + 1
	PaymentSchemeFasterPayments
	PaymentSchemeChaps
)

var paymentSchemeNames = map[PaymentScheme]string{
	PaymentSchemeBacs:           "Bacs",
	PaymentSchemeFasterPayments: "FasterPayments",
	PaymentSchemeChaps:          "Chaps",
}

func (s PaymentScheme) String() string {
	if name, ok := paymentSchemeNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s PaymentScheme) IsValid() bool {
	_, ok := paymentSchemeNames[s]
	return ok
}

func ParsePaymentScheme(name string) (PaymentScheme, error) {
	for scheme, n := range paymentSchemeNames {
		if strings.EqualFold(n, name) {
			return scheme, nil
		}
	}
	return 0, financeErrors.ErrUnknownPaymentScheme
}

func (s PaymentScheme) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, financeErrors.ErrUnknownPaymentScheme
	}
	return []byte(s.String()), nil
}

func (s *PaymentScheme) UnmarshalText(text []byte) error {
	scheme, err := ParsePaymentScheme(string(text))
	if err != nil {
		return err
	}
	*s = scheme
	return nil
}

type MakePaymentRequest struct {
	CreditorAccountNumber string          `json:"creditor_account_number"`
	DebtorAccountNumber   string          `json:"debtor_account_number"`
	Amount                decimal.Decimal `json:"amount"`
	PaymentDate           time.Time       `json:"payment_date"`
	PaymentScheme         PaymentScheme   `json:"payment_scheme"`
}

func (r *MakePaymentRequest) Validate() error {
	validationErrors := &financeErrors.ValidationErrors{}
	if strings.TrimSpace(r.DebtorAccountNumber) == "" {
		validationErrors.Add(financeErrors.ErrMissingDebtorAccount)
	}
	if !r.PaymentScheme.IsValid() {
		validationErrors.Add(financeErrors.ErrUnknownPaymentScheme)
	}
	return validationErrors.ErrOrNil()
}

type MakePaymentResult struct {
	Success bool `json:"success"`
}
