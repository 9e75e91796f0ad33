package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"pillpopper-skill/internal/domain"
	"pillpopper-skill/internal/usecase"
)

// SkillDispatcher is the core dispatch operation consumed by the handler.
type SkillDispatcher interface {
	Dispatch(ctx context.Context, env domain.RequestEnvelope) (usecase.DispatchOutput, error)
}

// Handler is the Lambda entry point. The voice platform invokes the
// function directly with a request envelope, so the payload arrives as
// raw JSON rather than an API Gateway event.
type Handler struct {
	skill SkillDispatcher
}

func NewHandler(skill SkillDispatcher) (*Handler, error) {
	if skill == nil {
		return nil, errors.New("handler: skill dispatcher must not be nil")
	}
	return &Handler{skill: skill}, nil
}

// Handle decodes the inbound envelope, dispatches it, and marshals the
// outbound payload. Fatal dispatch errors are returned to the Lambda
// runtime; the platform surfaces them as a generic skill failure.
func (h *Handler) Handle(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
	var env domain.RequestEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("handler: decode request envelope: %w", err)
	}

	correlationID := env.Request.RequestID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	slog.Info("skill request received",
		"correlationId", correlationID,
		"requestType", env.Request.Type,
		"sessionId", env.Session.SessionID)

	out, err := h.skill.Dispatch(ctx, env)
	if err != nil {
		slog.Error("dispatch failed", "correlationId", correlationID, "err", err)
		return nil, err
	}

	var payload any
	switch {
	case out.Envelope != nil:
		payload = out.Envelope
	case out.Ack != nil:
		payload = out.Ack
	default:
		return nil, errors.New("handler: dispatch produced no payload")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("handler: encode response: %w", err)
	}
	return body, nil
}
