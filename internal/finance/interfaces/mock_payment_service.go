package interfaces

import (
	"context"

	"github.com/sebuszqo/PaymentService/internal/finance/domain"
)

type MockPaymentService struct {
	Result   domain.MakePaymentResult
	Err      error
	Requests []domain.MakePaymentRequest
}

func (m *MockPaymentService) MakePayment(_ context.Context, request domain.MakePaymentRequest) (domain.MakePaymentResult, error) {
	m.Requests = append(m.Requests, request)
	if m.Err != nil {
		return domain.MakePaymentResult{}, m.Err
	}
	return m.Result, nil
}

func NewMockPaymentService(result domain.MakePaymentResult, err error) *MockPaymentService {
	return &MockPaymentService{Result: result, Err: err}
}
