package controllers

import (
	"encoding/json"
	"net/http"

	"hanviet-cards/backend/app/dto"
	"hanviet-cards/backend/app/middleware"
	"hanviet-cards/backend/app/services"
)

type CardController struct{ Cards *services.CardService }

func NewCardController(cards *services.CardService) *CardController {
	return &CardController{Cards: cards}
}

// List GET /cards?category=...
func (c *CardController) List(w http.ResponseWriter, r *http.Request) {
	cards, err := c.Cards.List(r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// Get GET /cards/{id}
func (c *CardController) Get(w http.ResponseWriter, r *http.Request) {
	card, err := c.Cards.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// Create POST /cards
func (c *CardController) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUser(r.Context())
	if actor == nil {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	card, err := c.Cards.Create(req, actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

// Update PUT /cards/{id}
func (c *CardController) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUser(r.Context())
	if actor == nil {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.UpdateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	card, err := c.Cards.Update(r.PathValue("id"), req, actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// Delete DELETE /cards/{id}
func (c *CardController) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetUser(r.Context())
	if actor == nil {
		writeJSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := c.Cards.Remove(r.PathValue("id"), actor); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Card deleted successfully"})
}
