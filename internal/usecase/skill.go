package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pillpopper-skill/internal/domain"
)

// IngestionStore defines the record-store operations consumed by the skill.
type IngestionStore interface {
	GetLastIngestion(ctx context.Context, userID, pillType string) (time.Time, bool, error)
	RecordIngestion(ctx context.Context, userID, pillType string, takenAt time.Time) error
}

// SkillService routes inbound skill requests and builds responses.
type SkillService struct {
	store   IngestionStore
	skillID string
}

// DispatchOutput carries exactly one of the two outbound payload shapes:
// a full response envelope, or the minimal session-ended acknowledgment.
type DispatchOutput struct {
	Envelope *domain.ResponseEnvelope
	Ack      *domain.SessionEndedAck
}

func NewSkillService(store IngestionStore, skillID string) (*SkillService, error) {
	if store == nil {
		return nil, errors.New("usecase: ingestion store must not be nil")
	}
	if strings.TrimSpace(skillID) == "" {
		return nil, errors.New("usecase: skill id must not be empty")
	}
	return &SkillService{store: store, skillID: skillID}, nil
}

// Dispatch validates the caller, routes by request kind and intent name,
// and produces the outbound payload. Unsupported callers, request kinds,
// and intent names are fatal: no response body is produced.
func (s *SkillService) Dispatch(ctx context.Context, env domain.RequestEnvelope) (DispatchOutput, error) {
	if env.Session.Application.ApplicationID != s.skillID {
		return DispatchOutput{}, newError(ErrorUnauthorizedCaller, "application_id_mismatch", nil)
	}

	switch env.Request.Type {
	case domain.RequestTypeLaunch:
		resp := s.welcomeResponse(nil)
		return DispatchOutput{Envelope: &resp}, nil
	case domain.RequestTypeIntent:
		return s.dispatchIntent(ctx, env)
	case domain.RequestTypeSessionEnded:
		slog.Info("session ended",
			"requestId", env.Request.RequestID,
			"sessionId", env.Session.SessionID)
		return DispatchOutput{Ack: &domain.SessionEndedAck{Message: "Goodbye."}}, nil
	default:
		return DispatchOutput{}, newError(ErrorUnrecognizedRequest,
			fmt.Sprintf("request_type_%q", env.Request.Type), nil)
	}
}

func (s *SkillService) dispatchIntent(ctx context.Context, env domain.RequestEnvelope) (DispatchOutput, error) {
	intent := env.Request.Intent
	if intent == nil {
		return DispatchOutput{}, newError(ErrorUnknownIntent, "missing_intent", nil)
	}

	// Until the platform reports slot filling complete, hand dialog
	// management back to it.
	var directive *domain.Directive
	if env.Request.DialogState != domain.DialogStateCompleted {
		directive = &domain.Directive{Type: domain.DirectiveTypeDelegate}
	}

	kind, ok := domain.ParseIntentKind(intent.Name)
	if !ok {
		return DispatchOutput{}, newError(ErrorUnknownIntent,
			fmt.Sprintf("intent_%q", intent.Name), nil)
	}

	userID := env.Session.User.UserID
	var resp domain.ResponseEnvelope
	switch kind {
	case domain.IntentTookMyPill:
		resp = s.newIngestion(ctx, intent, userID, directive)
	case domain.IntentDidITakePill:
		resp = s.checkLastIngestion(ctx, intent, userID, directive)
	case domain.IntentHelp:
		resp = s.welcomeResponse(directive)
	case domain.IntentCancel, domain.IntentStop:
		resp = s.farewellResponse()
	}
	return DispatchOutput{Envelope: &resp}, nil
}
