package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/application"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber/domain"
	"github.com/JESURAJA7/Roger-Keys/internal/shared/utils"
)

type SubscribeRequest struct {
	Email string `json:"email"`
}

type SubscribeResponse struct {
	Message string `json:"message"`
}

type SubscriberHandler struct {
	service application.SubscriberService
}

func NewSubscriberHandler(service application.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{service: service}
}

// Subscribe handles POST /api/subscribe
func (h *SubscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	created, err := h.service.Subscribe(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEmailRequired) {
			utils.WriteError(w, http.StatusBadRequest, "email is required", nil)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to subscribe", err)
		return
	}

	if !created {
		utils.WriteJSON(w, http.StatusOK, SubscribeResponse{Message: "Already subscribed"})
		return
	}
	utils.WriteJSON(w, http.StatusCreated, SubscribeResponse{Message: "Subscribed successfully"})
}
