package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseIntentKind(t *testing.T) {
	cases := []struct {
		name string
		kind IntentKind
		ok   bool
	}{
		{name: "TookMyPill", kind: IntentTookMyPill, ok: true},
		{name: "DidITakePill", kind: IntentDidITakePill, ok: true},
		{name: "AMAZON.HelpIntent", kind: IntentHelp, ok: true},
		{name: "AMAZON.CancelIntent", kind: IntentCancel, ok: true},
		{name: "AMAZON.StopIntent", kind: IntentStop, ok: true},
		{name: "OrderPizza", ok: false},
		{name: "", ok: false},
		{name: "tookmypill", ok: false},
	}
	for _, tc := range cases {
		kind, ok := ParseIntentKind(tc.name)
		require.Equal(t, tc.ok, ok, tc.name)
		if tc.ok {
			require.Equal(t, tc.kind, kind, tc.name)
		}
	}
}

func TestSlotValue(t *testing.T) {
	val := "Crestor"
	intent := &Intent{
		Name: "TookMyPill",
		Slots: map[string]Slot{
			SlotMedicationType: {Name: SlotMedicationType, Value: &val},
			"empty":            {Name: "empty"},
		},
	}

	got, ok := intent.SlotValue(SlotMedicationType)
	require.True(t, ok)
	require.Equal(t, "Crestor", got)

	// A slot present without a value counts as unfilled.
	_, ok = intent.SlotValue("empty")
	require.False(t, ok)

	_, ok = intent.SlotValue("missing")
	require.False(t, ok)

	var nilIntent *Intent
	_, ok = nilIntent.SlotValue(SlotMedicationType)
	require.False(t, ok)
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2026, 9, 1, 0, 5, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 1, 23, 55, 0, 0, time.UTC)
	require.True(t, SameCalendarDay(morning, evening))

	nextDay := time.Date(2026, 9, 2, 0, 5, 0, 0, time.UTC)
	require.False(t, SameCalendarDay(evening, nextDay))

	// Comparison is over UTC dates regardless of the input zone.
	tz := time.FixedZone("UTC+10", 10*3600)
	localLateNight := time.Date(2026, 9, 2, 8, 0, 0, 0, tz) // 2026-09-01T22:00Z
	require.True(t, SameCalendarDay(evening, localLateNight))
}
