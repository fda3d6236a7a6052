package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sebuszqo/PaymentService/internal/finance/domain"
	"go.uber.org/zap"
)

// BackupDataStoreType is the data store type value that routes every request to the backup store.
const BackupDataStoreType = "BackUp"

type PaymentService struct {
	repo      domain.AccountRepository
	storeName string
	logger    *zap.Logger
}

// NewPaymentService picks the account store once. Both the read and the write
// of every payment go to the store chosen here.
func NewPaymentService(primary, backup domain.AccountRepository, dataStoreType string, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	repo, storeName := primary, "primary"
	if dataStoreType == BackupDataStoreType {
		repo, storeName = backup, "backup"
	}
	return &PaymentService{
		repo:      repo,
		storeName: storeName,
		logger:    logger.Named("payment_service").With(zap.String("store", storeName)),
	}
}

func (s *PaymentService) StoreName() string {
	return s.storeName
}

// MakePayment debits the debtor account when the scheme rule allows it.
// Business rejections are reported through result.Success only; the returned
// error is reserved for store faults and unknown schemes.
func (s *PaymentService) MakePayment(ctx context.Context, request domain.MakePaymentRequest) (domain.MakePaymentResult, error) {
	result := domain.MakePaymentResult{}

	account, err := s.repo.GetAccount(ctx, request.DebtorAccountNumber)
	if err != nil {
		return result, errors.Wrapf(err, "get account %s", request.DebtorAccountNumber)
	}
	if account == nil {
		s.logger.Info("debtor account not found",
			zap.String("debtor_account", request.DebtorAccountNumber),
			zap.Stringer("scheme", request.PaymentScheme),
		)
		return result, nil
	}

	verdict, err := domain.EvaluatePayment(request.PaymentScheme, request, account)
	if err != nil {
		s.logger.Warn("payment scheme rejected",
			zap.String("debtor_account", request.DebtorAccountNumber),
			zap.Int("scheme", int(request.PaymentScheme)),
			zap.Error(err),
		)
		return result, err
	}
	if verdict == domain.Unsatisfied {
		s.logger.Info("payment not eligible",
			zap.String("debtor_account", request.DebtorAccountNumber),
			zap.Stringer("scheme", request.PaymentScheme),
			zap.String("amount", request.Amount.String()),
		)
		return result, nil
	}

	account.Debit(request.Amount)
	if err := s.repo.UpdateAccount(ctx, account); err != nil {
		return result, errors.Wrapf(err, "update account %s", account.AccountNumber)
	}

	result.Success = true
	s.logger.Info("payment made",
		zap.String("debtor_account", account.AccountNumber),
		zap.String("creditor_account", request.CreditorAccountNumber),
		zap.Stringer("scheme", request.PaymentScheme),
		zap.String("amount", request.Amount.String()),
		zap.String("balance", account.Balance.String()),
	)
	return result, nil
}
