package interfaces

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sebuszqo/PaymentService/internal/auth"
	"github.com/sebuszqo/PaymentService/internal/finance/domain"
	financeErrors "github.com/sebuszqo/PaymentService/internal/finance/errors"
	"go.uber.org/zap"
)

type PaymentServiceInterface interface {
	MakePayment(ctx context.Context, request domain.MakePaymentRequest) (domain.MakePaymentResult, error)
}

type PaymentHandler struct {
	service      PaymentServiceInterface
	logger       *zap.Logger
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewPaymentHandler(
	service PaymentServiceInterface,
	logger *zap.Logger,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *PaymentHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{
		service:      service,
		logger:       logger.Named("payment_handler"),
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *PaymentHandler) MakePayment(w http.ResponseWriter, r *http.Request) {
	reference := uuid.NewString()
	clientID, _ := auth.ClientIDFromContext(r.Context())
	logger := h.logger.With(zap.String("payment_reference", reference), zap.String("client_id", clientID))

	var request domain.MakePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		if financeErrors.IsValidationError(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := request.Validate(); err != nil {
		if financeErrors.IsValidationErrors(err) {
			var validationErrors *financeErrors.ValidationErrors
			errors.As(err, &validationErrors)
			errorMessages := make([]string, len(validationErrors.Errors))
			for i, vErr := range validationErrors.Errors {
				errorMessages[i] = vErr.Error()
			}
			h.respondError(w, http.StatusBadRequest, "Validation errors occurred", errorMessages)
			return
		}
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.MakePayment(r.Context(), request)
	if err != nil {
		if errors.Is(err, financeErrors.ErrUnknownPaymentScheme) {
			h.respondError(w, http.StatusBadRequest, financeErrors.ErrUnknownPaymentScheme.Error())
			return
		}
		logger.Error("payment failed", zap.String("debtor_account", request.DebtorAccountNumber), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to make payment")
		return
	}

	message := "Payment rejected."
	if result.Success {
		message = "Payment made successfully."
	}
	logger.Info("payment processed",
		zap.String("debtor_account", request.DebtorAccountNumber),
		zap.Stringer("scheme", request.PaymentScheme),
		zap.Bool("success", result.Success),
	)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": message,
		"data":    result,
	})
}
