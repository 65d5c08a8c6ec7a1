// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package playback

import (
	"testing"
	"time"
)

func TestTimeValue_UnsetIsNotZero(t *testing.T) {
	t.Parallel()

	var zero TimeValue
	if zero.IsSet() {
		t.Error("zero TimeValue should be unset")
	}
	if zero == Millis(0) {
		t.Error("unset must differ from Millis(0)")
	}
	if got := zero.MillisOr(-1); got != -1 {
		t.Errorf("MillisOr(-1) on unset = %d, want -1", got)
	}
	if _, ok := zero.Duration(); ok {
		t.Error("Duration() on unset should report false")
	}
	if got := Millis(1500).String(); got != "1500ms" {
		t.Errorf("String() = %q, want 1500ms", got)
	}
	if got := Unset().String(); got != "unset" {
		t.Errorf("String() = %q, want unset", got)
	}
	if d, ok := Millis(250).Duration(); !ok || d != 250*time.Millisecond {
		t.Errorf("Duration() = %v, %v; want 250ms, true", d, ok)
	}
}

func TestTimeValue_Combinators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    TimeValue
		wantSum TimeValue
		wantMin TimeValue
		wantMax TimeValue
	}{
		{"both unset", Unset(), Unset(), Unset(), Unset(), Unset()},
		{"left unset", Unset(), Millis(7), Millis(7), Millis(7), Millis(7)},
		{"right unset", Millis(3), Unset(), Millis(3), Millis(3), Millis(3)},
		{"both set", Millis(3), Millis(7), Millis(10), Millis(3), Millis(7)},
		{"zero is a value", Millis(0), Millis(5), Millis(5), Millis(0), Millis(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sumDefined(tt.a, tt.b); got != tt.wantSum {
				t.Errorf("sumDefined = %v, want %v", got, tt.wantSum)
			}
			if got := minDefined(tt.a, tt.b); got != tt.wantMin {
				t.Errorf("minDefined = %v, want %v", got, tt.wantMin)
			}
			if got := maxDefined(tt.a, tt.b); got != tt.wantMax {
				t.Errorf("maxDefined = %v, want %v", got, tt.wantMax)
			}
		})
	}
}

func TestMeanOf(t *testing.T) {
	t.Parallel()

	if got := meanOf(Millis(100), 0); got.IsSet() {
		t.Errorf("meanOf with zero count = %v, want unset", got)
	}
	if got := meanOf(Unset(), 4); got.IsSet() {
		t.Errorf("meanOf of unset total = %v, want unset", got)
	}
	if got := meanOf(Millis(100), 3); got != Millis(33) {
		t.Errorf("meanOf(100, 3) = %v, want 33ms", got)
	}
}

func TestTimeValue_JSON(t *testing.T) {
	t.Parallel()

	data, err := Unset().MarshalJSON()
	if err != nil || string(data) != "null" {
		t.Errorf("MarshalJSON(unset) = %s, %v; want null", data, err)
	}
	data, err = Millis(42).MarshalJSON()
	if err != nil || string(data) != "42" {
		t.Errorf("MarshalJSON(42) = %s, %v; want 42", data, err)
	}

	var v TimeValue
	if err := v.UnmarshalJSON([]byte("1200")); err != nil || v != Millis(1200) {
		t.Errorf("UnmarshalJSON(1200) = %v, %v", v, err)
	}
	if err := v.UnmarshalJSON([]byte("null")); err != nil || v.IsSet() {
		t.Errorf("UnmarshalJSON(null) = %v, %v", v, err)
	}
	if err := v.UnmarshalJSON([]byte(`"abc"`)); err == nil {
		t.Error("UnmarshalJSON of a string should fail")
	}
}
