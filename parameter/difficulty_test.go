package parameter

import "testing"

func TestDifficultyProfiles(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want DifficultyProfile
	}{
		{DifficultyEasy, DifficultyProfile{ImperfectionRange: 40, ReactionThreshold: 20, SpeedFactor: 0.7}},
		{DifficultyMedium, DifficultyProfile{ImperfectionRange: 20, ReactionThreshold: 10, SpeedFactor: 1.0}},
		{DifficultyHard, DifficultyProfile{ImperfectionRange: 5, ReactionThreshold: 5, SpeedFactor: 1.2}},
	}
	for _, tt := range tests {
		if got := tt.d.Profile(); got != tt.want {
			t.Errorf("%s profile = %+v, want %+v", tt.d, got, tt.want)
		}
	}
	if Difficulty(9).Profile() != DifficultyMedium.Profile() {
		t.Error("unknown difficulty should fall back to medium")
	}
}

func TestDifficultyCycle(t *testing.T) {
	d := DifficultyEasy
	want := []Difficulty{DifficultyMedium, DifficultyHard, DifficultyEasy}
	for _, w := range want {
		d = d.Next()
		if d != w {
			t.Fatalf("Next = %s, want %s", d, w)
		}
	}
}

func TestDifficultyText(t *testing.T) {
	for d := Difficulty(0); d < DifficultyCount; d++ {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("marshal %d: %v", d, err)
		}
		var back Difficulty
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if back != d {
			t.Errorf("round trip %s -> %s", d, back)
		}
	}

	var d Difficulty
	if err := d.UnmarshalText([]byte("nightmare")); err == nil {
		t.Error("expected error for unknown name")
	}
	if _, err := DifficultyCount.MarshalText(); err == nil {
		t.Error("expected error marshalling out-of-range difficulty")
	}
}
