package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"freight/internal/domain"
	redisstore "freight/internal/redis"
	"freight/internal/service"
)

// RateHandler handles HTTP requests for rates.
type RateHandler struct {
	rateService *service.RateService
	cache       *redisstore.CacheStore // nil when Redis is disabled
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateService *service.RateService, cache *redisstore.CacheStore) *RateHandler {
	return &RateHandler{
		rateService: rateService,
		cache:       cache,
	}
}

// ChargeResponse is the HTTP representation of a charge line.
type ChargeResponse struct {
	Name     string   `json:"name"`
	Included bool     `json:"included"`
	Amount   *float64 `json:"amount,omitempty"`
	Currency string   `json:"currency"`
}

// RateResponse is the HTTP representation of a freight rate.
type RateResponse struct {
	ID            string           `json:"id"`
	Mode          string           `json:"mode"`
	Type          string           `json:"type"`
	Origin        string           `json:"origin"`
	Destination   string           `json:"destination"`
	Carrier       string           `json:"carrier"`
	ValidFrom     string           `json:"valid_from"`
	ValidTo       string           `json:"valid_to"`
	TransitTime   int              `json:"transit_time"`
	BaseRate      float64          `json:"base_rate"`
	Currency      string           `json:"currency"`
	ContainerType string           `json:"container_type,omitempty"`
	Charges       []ChargeResponse `json:"charges"`
	TotalRate     float64          `json:"total_rate"`
}

func toRateResponse(r *domain.FreightRate) RateResponse {
	charges := make([]ChargeResponse, 0, len(r.Charges))
	for _, ch := range r.Charges {
		charges = append(charges, ChargeResponse{
			Name:     string(ch.Name),
			Included: ch.Included,
			Amount:   ch.Amount,
			Currency: ch.Currency,
		})
	}

	return RateResponse{
		ID:            r.ID,
		Mode:          string(r.Mode),
		Type:          string(r.Type),
		Origin:        r.Origin,
		Destination:   r.Destination,
		Carrier:       r.Carrier,
		ValidFrom:     r.ValidFrom,
		ValidTo:       r.ValidTo,
		TransitTime:   r.TransitTime,
		BaseRate:      r.BaseRate,
		Currency:      r.Currency,
		ContainerType: r.ContainerType,
		Charges:       charges,
		TotalRate:     r.TotalRate,
	}
}

// ListRates handles GET /v1/rates
func (h *RateHandler) ListRates(c *gin.Context) {
	req := service.FilterRatesRequest{
		Mode:        c.Query("mode"),
		Type:        c.Query("type"),
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
	}
	ctx := c.Request.Context()

	if h.cache != nil {
		if body, err := h.cache.GetRateList(ctx, filterCacheKey(req)); err == nil && body != nil {
			c.Data(http.StatusOK, "application/json", body)
			return
		}
	}

	rates, err := h.rateService.FilterRates(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RateResponse, 0, len(rates))
	for _, r := range rates {
		response = append(response, toRateResponse(r))
	}

	if h.cache != nil {
		if body, err := json.Marshal(response); err == nil {
			_ = h.cache.SetRateList(ctx, filterCacheKey(req), body)
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetRate handles GET /v1/rates/:id
func (h *RateHandler) GetRate(c *gin.Context) {
	rate, err := h.rateService.GetRate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRateResponse(rate))
}

// filterCacheKey builds a cache key from the filter criteria. Origin and
// destination are lowercased to share entries across case variants.
func filterCacheKey(req service.FilterRatesRequest) string {
	return strings.ToLower(strings.Join([]string{
		req.Mode, req.Type, req.Origin, req.Destination,
	}, "|"))
}
