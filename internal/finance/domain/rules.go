package domain

import (
	financeErrors "github.com/sebuszqo/PaymentService/internal/finance/errors"
)

type Verdict bool

const (
	Unsatisfied Verdict = false
	Satisfied   Verdict = true
)

// EvaluatePayment decides whether account may be debited through scheme.
// It never mutates the account. A scheme outside the known set yields
// Unsatisfied together with ErrUnknownPaymentScheme.
func EvaluatePayment(scheme PaymentScheme, request MakePaymentRequest, account *Account) (Verdict, error) {
	switch scheme {
	case PaymentSchemeBacs:
		return evaluateBacs(account), nil
	case PaymentSchemeFasterPayments:
		return evaluateFasterPayments(request, account), nil
	case PaymentSchemeChaps:
		return evaluateChaps(account), nil
	default:
		return Unsatisfied, financeErrors.ErrUnknownPaymentScheme
	}
}

func evaluateBacs(account *Account) Verdict {
	return Verdict(account.AllowedPaymentSchemes.Contains(PaymentSchemeBacs))
}

func evaluateFasterPayments(request MakePaymentRequest, account *Account) Verdict {
	if !account.AllowedPaymentSchemes.Contains(PaymentSchemeFasterPayments) {
		return Unsatisfied
	}
	return Verdict(account.Balance.GreaterThanOrEqual(request.Amount))
}

func evaluateChaps(account *Account) Verdict {
	if !account.AllowedPaymentSchemes.Contains(PaymentSchemeChaps) {
		return Unsatisfied
	}
	return Verdict(account.Status == AccountStatusLive)
}
