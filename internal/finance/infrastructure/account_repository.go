package infrastructure

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sebuszqo/PaymentService/internal/finance/domain"
)

// AccountRepository is the primary account store backed by PostgreSQL.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `
		SELECT account_number, allowed_payment_schemes, status, balance
		FROM accounts
		WHERE account_number = $1
	`

	var account domain.Account
	var schemes, status string
	err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(&account.AccountNumber, &schemes, &status, &account.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not find account")
	}

	account.AllowedPaymentSchemes, err = domain.ParsePaymentSchemes(schemes)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrCorruptAccount, "account %s has invalid allowed payment schemes %q: %v", accountNumber, schemes, err)
	}
	account.Status, err = domain.ParseAccountStatus(status)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrCorruptAccount, "account %s has invalid status %q: %v", accountNumber, status, err)
	}

	return &account, nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (account_number, allowed_payment_schemes, status, balance, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (account_number) DO UPDATE
		SET allowed_payment_schemes = $2, status = $3, balance = $4, updated_at = NOW()
	`
	status, err := account.Status.MarshalText()
	if err != nil {
		return errors.Wrapf(domain.ErrCorruptAccount, "could not encode account %s: %v", account.AccountNumber, err)
	}

	_, err = r.db.ExecContext(ctx, query,
		account.AccountNumber, account.AllowedPaymentSchemes.String(), string(status), account.Balance)
	if err != nil {
		return errors.Wrap(err, "could not update account")
	}
	return nil
}
