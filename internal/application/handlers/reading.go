package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
	"github.com/zaibaitech/asrar-core/internal/domain/services"
)

// ReadingHandler handles full reading requests.
type ReadingHandler struct {
	readingService *services.ReadingService
}

// NewReadingHandler creates a new reading handler.
func NewReadingHandler(readingService *services.ReadingService) *ReadingHandler {
	return &ReadingHandler{
		readingService: readingService,
	}
}

// Handle composes a full reading for the moment, location and user element.
func (h *ReadingHandler) Handle(ctx context.Context, now time.Time, latitude, longitude float64, user entities.Element) (*entities.Reading, error) {
	reading, err := h.readingService.Compose(ctx, now, latitude, longitude, user)
	if err != nil {
		return nil, fmt.Errorf("composing reading: %w", err)
	}
	return &reading, nil
}
