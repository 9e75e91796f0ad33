package usecase

import (
	"pillpopper-skill/internal/domain"
)

const cardTitlePrefix = "SessionSpeechlet - "

// buildEnvelope assembles the outbound response envelope. speech and
// reprompt are optional; a nil value omits the corresponding field rather
// than emitting an empty string. A non-nil directive suppresses the
// reprompt, delegating slot elicitation to the platform instead. Ending
// the session always drops the directive.
func buildEnvelope(attrs map[string]string, title string, speech, reprompt *string, endSession bool, directive *domain.Directive) domain.ResponseEnvelope {
	if attrs == nil {
		attrs = map[string]string{}
	}

	cardContent := cardTitlePrefix + title
	if speech != nil {
		cardContent = cardTitlePrefix + *speech
	}

	body := domain.ResponseBody{
		Card: &domain.Card{
			Type:    "Simple",
			Title:   cardTitlePrefix + title,
			Content: cardContent,
		},
		ShouldEndSession: endSession,
	}

	if speech != nil {
		body.OutputSpeech = &domain.OutputSpeech{Type: "PlainText", Text: *speech}
	}

	if directive != nil && !endSession {
		body.Directives = []domain.Directive{*directive}
	} else if reprompt != nil {
		body.Reprompt = &domain.Reprompt{
			OutputSpeech: domain.OutputSpeech{Type: "PlainText", Text: *reprompt},
		}
	}

	return domain.ResponseEnvelope{
		Version:           domain.ResponseVersion,
		SessionAttributes: attrs,
		Response:          body,
	}
}

func strPtr(s string) *string { return &s }
