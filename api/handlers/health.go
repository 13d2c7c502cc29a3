package handlers

import (
	"context"
	"net/http"

	"guardian-news-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler reports liveness together with the loader state
type HealthHandler struct {
	service NewsService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service NewsService) *HealthHandler {
	return &HealthHandler{service: service}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{
		Status: "ok",
		State:  h.service.Snapshot().State.String(),
	}}, nil
}
