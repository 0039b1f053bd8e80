package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
	"github.com/yusufkecer/unshakn-backend/internal/logx"
	"github.com/yusufkecer/unshakn-backend/internal/metrics"
	"github.com/yusufkecer/unshakn-backend/internal/middleware"
	"github.com/yusufkecer/unshakn-backend/internal/service"
)

type AdminHandler struct {
	auth    *service.AuthService
	metrics *metrics.Metrics
}

func NewAdminHandler(auth *service.AuthService, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{auth: auth, metrics: m}
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.auth.Login(req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		h.metrics.AdminLogins.WithLabelValues("rejected").Inc()
		logx.FromContext(r.Context()).Warn("admin login rejected", slog.String(logx.FieldIP, middleware.ClientIP(r)))
		writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}
	if err != nil {
		writeDomainError(w, r, err, "token")
		return
	}

	h.metrics.AdminLogins.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}
