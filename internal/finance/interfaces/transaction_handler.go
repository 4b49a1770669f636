package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, input domain.TransactionInput) (*domain.Transaction, error)
	GetAllTransactions(ctx context.Context) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID int64, input domain.TransactionInput) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON RespondJSONFunc,
	respondError RespondErrorFunc,
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// transactionRequest is the body of both create and full update.
type transactionRequest struct {
	Amount          *float64                `json:"amount"`
	Type            *domain.TransactionType `json:"type"`
	Description     *string                 `json:"description"`
	CategoryID      *int64                  `json:"category_id"`
	TransactionDate *domain.Timestamp       `json:"transaction_date"`
}

func (req transactionRequest) toInput() (domain.TransactionInput, error) {
	switch {
	case req.Amount == nil:
		return domain.TransactionInput{}, financeErrors.NewValidationError("Field 'amount' is required")
	case req.Type == nil:
		return domain.TransactionInput{}, financeErrors.NewValidationError("Field 'type' is required")
	case req.CategoryID == nil:
		return domain.TransactionInput{}, financeErrors.NewValidationError("Field 'category_id' is required")
	}
	input := domain.TransactionInput{
		Amount:      *req.Amount,
		Type:        *req.Type,
		Description: req.Description,
		CategoryID:  *req.CategoryID,
	}
	if req.TransactionDate != nil {
		date := req.TransactionDate.Time
		input.TransactionDate = &date
	}
	return input, nil
}

func (h *TransactionHandler) decodeInput(r *http.Request) (domain.TransactionInput, error) {
	var req transactionRequest
	if err := decodeBody(r, &req); err != nil {
		return domain.TransactionInput{}, err
	}
	return req.toInput()
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	input, err := h.decodeInput(r)
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to create transaction")
		return
	}

	transaction, err := h.service.CreateTransaction(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to create transaction")
		return
	}
	h.respondJSON(w, http.StatusCreated, transaction)
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.GetAllTransactions(r.Context())
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to retrieve transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := parsePathID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to update transaction")
		return
	}

	input, err := h.decodeInput(r)
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to update transaction")
		return
	}

	transaction, err := h.service.UpdateTransaction(r.Context(), transactionID, input)
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to update transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := parsePathID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to delete transaction")
		return
	}

	if err := h.service.DeleteTransaction(r.Context(), transactionID); err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to delete transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
