package analytics

import (
	"testing"
	"time"
)

func TestBuildRoleDistribution(t *testing.T) {
	base := time.Date(2024, 10, 1, 17, 0, 0, 0, time.UTC)

	matches := []Match{
		testMatch("NA1_1", base, true),
		testMatch("NA1_2", base.Add(time.Hour), false),
		testMatch("NA1_3", base.Add(2*time.Hour), true),
	}
	matches[1].Participant.Role = ""
	matches[2].Participant.Role = "JUNGLE"

	got := buildRoleDistribution(matches)

	want := map[string]int{"MIDDLE": 1, "JUNGLE": 1, UnknownRole: 1}
	if len(got) != len(want) {
		t.Fatalf("got %d roles, want %d: %v", len(got), len(want), got)
	}
	for role, count := range want {
		if got[role] != count {
			t.Errorf("role %q count = %d, want %d", role, got[role], count)
		}
	}
}
