package infrastructure

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sebuszqo/PaymentService/internal/finance/domain"
)

const backupAccountKeyPrefix = "account:"

// BackupAccountRepository is the backup account store. Each account is kept as
// a JSON document under "account:<account number>".
type BackupAccountRepository struct {
	client redis.UniversalClient
}

func NewBackupAccountRepository(client redis.UniversalClient) *BackupAccountRepository {
	return &BackupAccountRepository{client: client}
}

func backupAccountKey(accountNumber string) string {
	return backupAccountKeyPrefix + accountNumber
}

func (r *BackupAccountRepository) GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error) {
	data, err := r.client.Get(ctx, backupAccountKey(accountNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "could not find account in backup store")
	}

	var account domain.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, errors.Wrapf(domain.ErrCorruptAccount, "could not decode account %s from backup store: %v", accountNumber, err)
	}
	if account.AllowedPaymentSchemes == nil {
		account.AllowedPaymentSchemes = domain.NewPaymentSchemes()
	}
	return &account, nil
}

func (r *BackupAccountRepository) UpdateAccount(ctx context.Context, account *domain.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return errors.Wrapf(domain.ErrCorruptAccount, "could not encode account %s: %v", account.AccountNumber, err)
	}
	if err := r.client.Set(ctx, backupAccountKey(account.AccountNumber), data, 0).Err(); err != nil {
		return errors.Wrap(err, "could not update account in backup store")
	}
	return nil
}
