package repository

import (
	"sync"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
)

type ThemeRepository struct {
	mu    sync.RWMutex
	theme domain.Theme
}

func NewThemeRepository(initial domain.Theme) *ThemeRepository {
	return &ThemeRepository{theme: initial}
}

func (r *ThemeRepository) Get() domain.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

// Update applies the non-nil fields of u and returns the result.
func (r *ThemeRepository) Update(u domain.ThemeUpdate) domain.Theme {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.Mode != nil {
		r.theme.Mode = *u.Mode
	}
	if u.PrimaryColor != nil {
		r.theme.PrimaryColor = *u.PrimaryColor
	}
	if u.Logo != nil {
		r.theme.Logo = *u.Logo
	}
	return r.theme
}
