package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/dogbreeds/internal/domain"
	"github.com/Gunvolt24/dogbreeds/internal/ports"
	"github.com/Gunvolt24/dogbreeds/pkg/httpx"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

type Handler struct {
	lookup    ports.SubBreedLookup
	validator ports.BreedNameValidator
	log       ports.Logger
	timeout   time.Duration
}

// NewHandler — timeout <= 0 означает «без собственного дедлайна» (только контекст запроса).
func NewHandler(
	lookup ports.SubBreedLookup,
	validator ports.BreedNameValidator,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{lookup: lookup, validator: validator, log: log, timeout: timeout}
}

type subBreedsResponse struct {
	Breed     string   `json:"breed"`
	SubBreeds []string `json:"sub_breeds"`
	Total     int      `json:"total"`
}

type statsResponse struct {
	CallsMade int `json:"calls_made"`
}

func (h *Handler) getSubBreeds(c *gin.Context) {
	breed := c.Param("breed")
	if err := h.validator.Validate(c.Request.Context(), breed); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.withTimeout(c.Request.Context())
	defer cancel()

	subBreeds, err := h.lookup.Lookup(ctx, domain.BreedOf(breed))
	switch {
	case errors.Is(err, domain.ErrBreedNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrBreedNotFound.Error()})
		return
	case err != nil:
		h.log.Errorf(ctx, "Lookup failed breed=%q err=%v", breed, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	limit, offset := httpx.ParseLimitOffset(c, defaultLimit, maxLimit)
	c.JSON(http.StatusOK, subBreedsResponse{
		Breed:     breed,
		SubBreeds: httpx.Page(subBreeds, limit, offset),
		Total:     len(subBreeds),
	})
}

func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, statsResponse{CallsMade: h.lookup.CallsMade()})
}

func (h *Handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}
