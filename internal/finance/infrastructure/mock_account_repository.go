package infrastructure

import (
	"context"

	"github.com/sebuszqo/PaymentService/internal/finance/domain"
)

// MockAccountRepository serves accounts from memory and records every call.
type MockAccountRepository struct {
	Accounts  map[string]*domain.Account
	GetErr    error
	UpdateErr error

	GetCalls    []string
	UpdateCalls []domain.Account
}

func NewMockAccountRepository(accounts ...*domain.Account) *MockAccountRepository {
	m := &MockAccountRepository{Accounts: make(map[string]*domain.Account)}
	for _, account := range accounts {
		m.Accounts[account.AccountNumber] = account
	}
	return m
}

func (m *MockAccountRepository) GetAccount(_ context.Context, accountNumber string) (*domain.Account, error) {
	m.GetCalls = append(m.GetCalls, accountNumber)
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	account, ok := m.Accounts[accountNumber]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (m *MockAccountRepository) UpdateAccount(_ context.Context, account *domain.Account) error {
	m.UpdateCalls = append(m.UpdateCalls, *account)
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	copied := *account
	m.Accounts[account.AccountNumber] = &copied
	return nil
}

func (m *MockAccountRepository) Touched() bool {
	return len(m.GetCalls) > 0 || len(m.UpdateCalls) > 0
}
