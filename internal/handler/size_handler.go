package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
	"github.com/yusufkecer/unshakn-backend/internal/service"
)

type SizeHandler struct {
	svc *service.SizeService
}

func NewSizeHandler(svc *service.SizeService) *SizeHandler {
	return &SizeHandler{svc: svc}
}

type sizeChartResponse struct {
	Rules   []domain.SizeRule          `json:"rules"`
	FitTips map[domain.BodyType]string `json:"fitTips"`
}

func (h *SizeHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req domain.EstimateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := h.svc.Estimate(r.Context(), req.Height, req.Weight)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusServiceUnavailable, "estimate cancelled")
			return
		}
		writeDomainError(w, r, err, "estimate")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *SizeHandler) Chart(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, sizeChartResponse{
		Rules:   h.svc.Chart(),
		FitTips: h.svc.FitTips(),
	})
}

func (h *SizeHandler) RecentEstimates(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	estimates, err := h.svc.RecentEstimates(r.Context(), limit)
	if err != nil {
		writeDomainError(w, r, err, "estimates")
		return
	}
	if estimates == nil {
		estimates = []domain.SizeEstimate{}
	}

	writeJSON(w, http.StatusOK, estimates)
}
