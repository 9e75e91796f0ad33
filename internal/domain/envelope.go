package domain

// Request kinds delivered by the voice platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Dialog states reported with an intent request.
const (
	DialogStateStarted    = "STARTED"
	DialogStateInProgress = "IN_PROGRESS"
	DialogStateCompleted  = "COMPLETED"
)

// SlotMedicationType is the only slot this skill consumes.
const SlotMedicationType = "medicationType"

// RequestEnvelope is the inbound skill invocation payload.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

type Session struct {
	SessionID   string            `json:"sessionId"`
	Application Application       `json:"application"`
	User        User              `json:"user"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

type Request struct {
	Type        string  `json:"type"`
	RequestID   string  `json:"requestId"`
	Intent      *Intent `json:"intent,omitempty"`
	DialogState string  `json:"dialogState,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots"`
}

type Slot struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// SlotValue returns the value of the named slot. The second return value
// reports whether the slot was filled; a slot present without a value is
// treated the same as an absent slot.
func (i *Intent) SlotValue(name string) (string, bool) {
	if i == nil {
		return "", false
	}
	slot, ok := i.Slots[name]
	if !ok || slot.Value == nil {
		return "", false
	}
	return *slot.Value, true
}

// IntentKind is the closed set of intents the skill dispatches on.
type IntentKind int

const (
	IntentTookMyPill IntentKind = iota
	IntentDidITakePill
	IntentHelp
	IntentCancel
	IntentStop
)

// ParseIntentKind maps a platform intent name to its kind. The second
// return value is false for any name outside the supported set.
func ParseIntentKind(name string) (IntentKind, bool) {
	switch name {
	case "TookMyPill":
		return IntentTookMyPill, true
	case "DidITakePill":
		return IntentDidITakePill, true
	case "AMAZON.HelpIntent":
		return IntentHelp, true
	case "AMAZON.CancelIntent":
		return IntentCancel, true
	case "AMAZON.StopIntent":
		return IntentStop, true
	default:
		return 0, false
	}
}
