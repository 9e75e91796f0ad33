package usecase

import (
	"context"
	"log/slog"
	"time"

	"pillpopper-skill/internal/domain"
)

// timeNow is overridable in tests.
var timeNow = func() time.Time {
	return time.Now().UTC()
}

const (
	welcomeSpeech   = "Welcome to PillPopper. Please tell me the type of pill."
	welcomeReprompt = "Please tell me the pill type by saying something like, " +
		"the pill type is Crestor, or, the cholesterol pill."
	farewellSpeech = "Goodbye!"
	noEntrySpeech  = "There is no entry for that particular medicine type."
)

// newIngestion handles the "TookMyPill" intent. A missing medication slot
// is not an error: the dialog stays open and the directive is echoed so
// the platform can re-elicit the slot. With a value present, the same-day
// guard prevents a duplicate write.
func (s *SkillService) newIngestion(ctx context.Context, intent *domain.Intent, userID string, directive *domain.Directive) domain.ResponseEnvelope {
	pillType, ok := intent.SlotValue(domain.SlotMedicationType)
	if !ok {
		slog.Info("no medication type value provided", "intent", intent.Name)
		return buildEnvelope(nil, intent.Name, nil, nil, false, directive)
	}

	attrs := map[string]string{"pillType": pillType}
	now := timeNow()

	var speech string
	if s.tookPillToday(ctx, userID, pillType, now) {
		speech = "Wait! You've already taken your " + pillType + " medicine today."
	} else if err := s.store.RecordIngestion(ctx, userID, pillType, now); err != nil {
		slog.Error("failed to record ingestion", "pillType", pillType, "err", err)
		speech = "Sorry, I wasn't able to record your " + pillType + " medicine right now. Please try again."
	} else {
		speech = "Ok, I've recorded that you just took your " + pillType + " medicine."
	}

	return buildEnvelope(attrs, intent.Name, &speech, nil, false, nil)
}

// checkLastIngestion handles the "DidITakePill" intent. Read-only.
func (s *SkillService) checkLastIngestion(ctx context.Context, intent *domain.Intent, userID string, directive *domain.Directive) domain.ResponseEnvelope {
	pillType, ok := intent.SlotValue(domain.SlotMedicationType)
	if !ok {
		slog.Info("no medication type value provided", "intent", intent.Name)
		return buildEnvelope(nil, intent.Name, nil, nil, false, directive)
	}

	lastTaken, found := s.lastIngestion(ctx, userID, pillType)
	if !found {
		return buildEnvelope(nil, intent.Name, strPtr(noEntrySpeech), nil, false, nil)
	}

	attrs := map[string]string{"pillType": pillType}
	var speech string
	if domain.SameCalendarDay(lastTaken, timeNow()) {
		speech = "You've already taken your " + pillType + " medicine today."
	} else {
		speech = "You have not yet taken your " + pillType + " medicine today."
	}
	return buildEnvelope(attrs, intent.Name, &speech, nil, false, nil)
}

func (s *SkillService) welcomeResponse(directive *domain.Directive) domain.ResponseEnvelope {
	return buildEnvelope(nil, "Welcome", strPtr(welcomeSpeech), strPtr(welcomeReprompt), false, directive)
}

func (s *SkillService) farewellResponse() domain.ResponseEnvelope {
	return buildEnvelope(nil, "Session Ended", strPtr(farewellSpeech), nil, true, nil)
}

func (s *SkillService) tookPillToday(ctx context.Context, userID, pillType string, now time.Time) bool {
	lastTaken, found := s.lastIngestion(ctx, userID, pillType)
	return found && domain.SameCalendarDay(lastTaken, now)
}

// lastIngestion reads the stored record. A store read failure is logged
// and degraded to "no record found".
func (s *SkillService) lastIngestion(ctx context.Context, userID, pillType string) (time.Time, bool) {
	lastTaken, found, err := s.store.GetLastIngestion(ctx, userID, pillType)
	if err != nil {
		slog.Error("failed to read last ingestion", "pillType", pillType, "err", err)
		return time.Time{}, false
	}
	return lastTaken, found
}
