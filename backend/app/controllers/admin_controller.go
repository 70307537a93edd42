package controllers

import (
	"net/http"

	"hanviet-cards/backend/app/dto"
	"hanviet-cards/backend/app/services"
)

type AdminController struct{ Seeder *services.SeedService }

func NewAdminController(seeder *services.SeedService) *AdminController {
	return &AdminController{Seeder: seeder}
}

// Seed POST /admin/seed. Failures come back as a structured result so the
// caller can branch on success instead of parsing error bodies.
func (c *AdminController) Seed(w http.ResponseWriter, r *http.Request) {
	if err := c.Seeder.Run(); err != nil {
		writeJSON(w, http.StatusOK, dto.SeedResult{Success: false, Message: "Failed to seed database", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, dto.SeedResult{Success: true, Message: "Database seeded successfully"})
}
