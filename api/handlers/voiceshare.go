// ABOUTME: Voice-of-share handler for the Huma API
// ABOUTME: Rolls up per-article reach figures into a portfolio summary

package handlers

import (
	"context"
	"net/http"

	"reputraq-api/api/dto/mappers"
	"reputraq-api/api/dto/requests"
	"reputraq-api/api/dto/responses"
	"reputraq-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// VoiceShareService interface defines the methods needed from the voice-of-share service
type VoiceShareService interface {
	TotalVoiceOfShare(ctx context.Context, items []domain.ContentItem) domain.VoiceOfShareResult
}

// VoiceShareHandler handles voice-of-share HTTP requests
type VoiceShareHandler struct {
	voiceShare VoiceShareService
}

// NewVoiceShareHandler creates a new voice-of-share handler
func NewVoiceShareHandler(voiceShare VoiceShareService) *VoiceShareHandler {
	return &VoiceShareHandler{
		voiceShare: voiceShare,
	}
}

// RegisterRoutes registers voice-of-share routes
func (h *VoiceShareHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "voiceOfShare",
		Method:      http.MethodPost,
		Path:        "/voice-of-share",
		Summary:     "Aggregate voice of share",
		Description: "Computes the total and average voice-of-share across a content set with a per-tier breakdown",
		Tags:        []string{"Reach"},
	}, h.Aggregate)
}

// VoiceOfShareInput defines the input for the Aggregate operation
type VoiceOfShareInput struct {
	Body requests.VoiceOfShareRequest `json:"body"`
}

// VoiceOfShareOutput defines the output for the Aggregate operation
type VoiceOfShareOutput struct {
	Body responses.VoiceOfShareResponse
}

// Aggregate handles the POST /voice-of-share endpoint
func (h *VoiceShareHandler) Aggregate(ctx context.Context, input *VoiceOfShareInput) (*VoiceOfShareOutput, error) {
	input.Body.ApplyDefaults()

	items := mappers.ToContentItems(input.Body.Items)
	result := h.voiceShare.TotalVoiceOfShare(ctx, items)

	output := &VoiceOfShareOutput{}
	output.Body = mappers.ToVoiceOfShareResponse(&result)
	return output, nil
}
