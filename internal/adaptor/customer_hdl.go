package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"tech-store/internal/dto/request"
	"tech-store/internal/usecase"
	"tech-store/pkg/utils"

	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// CreateProfile handles POST /api/customer/profile. Calling it again for
// the same user returns the existing profile with 200 instead of 201.
func (h *CustomerHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CustomerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, created, err := h.service.GetOrCreateProfile(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create customer profile")
		return
	}

	if created {
		utils.ResponseCreated(w, "Customer profile created successfully", profile)
		return
	}

	utils.ResponseSuccess(w, "Customer profile already exists", profile)
}

// GetProfile handles GET /api/customer/profile
func (h *CustomerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "get customer profile")
		return
	}

	utils.ResponseSuccess(w, "Customer profile retrieved successfully", profile)
}
