package handler

import (
	"net/http"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
	"github.com/yusufkecer/unshakn-backend/internal/repository"
)

type ThemeHandler struct {
	repo *repository.ThemeRepository
}

func NewThemeHandler(repo *repository.ThemeRepository) *ThemeHandler {
	return &ThemeHandler{repo: repo}
}

func (h *ThemeHandler) Get(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.repo.Get())
}

func (h *ThemeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var u domain.ThemeUpdate
	if !decodeAndValidate(w, r, &u) {
		return
	}
	writeJSON(w, http.StatusOK, h.repo.Update(u))
}
