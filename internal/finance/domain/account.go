package domain

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	financeErrors "github.com/sebuszqo/PaymentService/internal/finance/errors"
	"github.com/shopspring/decimal"
)

// ErrCorruptAccount is returned by account stores when a stored or outgoing
// account cannot be decoded or encoded. It is a store fault, never a client error.
var ErrCorruptAccount = errors.New("account data is corrupt")

// AccountRepository is implemented by both the primary and the backup account stores.
// GetAccount returns (nil, nil) when no account exists for the number.
type AccountRepository interface {
	GetAccount(ctx context.Context, accountNumber string) (*Account, error)
	UpdateAccount(ctx context.Context, account *Account) error
}

type AccountStatus int

const (
	AccountStatusLive AccountStatus = iota
	AccountStatusDisabled
	AccountStatusInboundPaymentsOnly
)

var accountStatusNames = map[AccountStatus]string{
	AccountStatusLive:                "Live",
	AccountStatusDisabled:            "Disabled",
	AccountStatusInboundPaymentsOnly: "InboundPaymentsOnly",
}

func (s AccountStatus) String() string {
	if name, ok := accountStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func ParseAccountStatus(name string) (AccountStatus, error) {
	for status, n := range accountStatusNames {
		if strings.EqualFold(n, name) {
			return status, nil
		}
	}
	return 0, financeErrors.ErrUnknownAccountStatus
}

func (s AccountStatus) MarshalText() ([]byte, error) {
	if _, ok := accountStatusNames[s]; !ok {
		return nil, financeErrors.ErrUnknownAccountStatus
	}
	return []byte(s.String()), nil
}

func (s *AccountStatus) UnmarshalText(text []byte) error {
	status, err := ParseAccountStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// PaymentSchemes is the set of schemes an account may be debited through.
type PaymentSchemes map[PaymentScheme]struct{}

func NewPaymentSchemes(schemes ...PaymentScheme) PaymentSchemes {
	set := make(PaymentSchemes, len(schemes))
	for _, scheme := range schemes {
		set[scheme] = struct{}{}
	}
	return set
}

func (p PaymentSchemes) Contains(scheme PaymentScheme) bool {
	_, ok := p[scheme]
	return ok
}

// Slice returns the members ordered by scheme value.
func (p PaymentSchemes) Slice() []PaymentScheme {
	schemes := make([]PaymentScheme, 0, len(p))
	for scheme := range p {
		schemes = append(schemes, scheme)
	}
	sort.Slice(schemes, func(i, j int) bool { return schemes[i] < schemes[j] })
	return schemes
}

// String renders the set as a comma separated list, e.g. "Bacs,Chaps".
func (p PaymentSchemes) String() string {
	names := make([]string, 0, len(p))
	for _, scheme := range p.Slice() {
		names = append(names, scheme.String())
	}
	return strings.Join(names, ",")
}

func ParsePaymentSchemes(list string) (PaymentSchemes, error) {
	set := NewPaymentSchemes()
	if strings.TrimSpace(list) == "" {
		return set, nil
	}
	for _, name := range strings.Split(list, ",") {
		scheme, err := ParsePaymentScheme(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		set[scheme] = struct{}{}
	}
	return set, nil
}

func (p PaymentSchemes) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Slice())
}

func (p *PaymentSchemes) UnmarshalJSON(data []byte) error {
	var schemes []PaymentScheme
	if err := json.Unmarshal(data, &schemes); err != nil {
		return err
	}
	*p = NewPaymentSchemes(schemes...)
	return nil
}

type Account struct {
	AccountNumber         string          `json:"account_number"`
	AllowedPaymentSchemes PaymentSchemes  `json:"allowed_payment_schemes"`
	Status                AccountStatus   `json:"status"`
	Balance               decimal.Decimal `json:"balance"`
}

// Debit subtracts amount from the balance. The balance is allowed to go negative.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}
