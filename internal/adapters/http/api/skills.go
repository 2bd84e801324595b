// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// SkillsHandler serves the active skill taxonomy.
type SkillsHandler struct {
	deps Dependencies
}

// NewSkillsHandler creates a new skills handler.
func NewSkillsHandler(deps Dependencies) *SkillsHandler {
	return &SkillsHandler{deps: deps}
}

// skillsResponse mirrors the OpenAPI schema for GET /api/skills.
type skillsResponse struct {
	SkillCategories map[string][]string `json:"skill_categories"`
}

// HandleSkills handles GET /api/skills requests.
func (h *SkillsHandler) HandleSkills(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, skillsResponse{SkillCategories: h.deps.SkillCategories()})
}
