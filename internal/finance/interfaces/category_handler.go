package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type CategoryServiceInterface interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON RespondJSONFunc,
	respondError RespondErrorFunc,
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

type categoryRequest struct {
	Name *string `json:"name"`
}

func (req categoryRequest) name() (string, error) {
	if req.Name == nil {
		return "", financeErrors.NewValidationError("Field 'name' is required")
	}
	return *req.Name, nil
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeBody(r, &req); err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to create category")
		return
	}
	name, err := req.name()
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to create category")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to create category")
		return
	}
	h.respondJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetAllCategories(r.Context())
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to retrieve categories")
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parsePathID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to update category")
		return
	}

	var req categoryRequest
	if err := decodeBody(r, &req); err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to update category")
		return
	}
	name, err := req.name()
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to update category")
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, name)
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to update category")
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parsePathID(r, "id")
	if err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to delete category")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		respondServiceError(w, r, h.respondError, err, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
