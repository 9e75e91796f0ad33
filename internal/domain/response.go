package domain

// ResponseVersion is the fixed envelope version expected by the platform.
const ResponseVersion = "1.0"

// DirectiveTypeDelegate instructs the platform to keep eliciting slots
// through its own dialog management.
const DirectiveTypeDelegate = "Dialog.Delegate"

// ResponseEnvelope is the outbound skill payload.
type ResponseEnvelope struct {
	Version           string            `json:"version"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	Response          ResponseBody      `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
	Directives       []Directive   `json:"directives,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type Directive struct {
	Type string `json:"type"`
}

// SessionEndedAck is the minimal payload returned when the platform
// notifies the skill that a session ended. It is not a full envelope.
type SessionEndedAck struct {
	Message string `json:"message"`
}
