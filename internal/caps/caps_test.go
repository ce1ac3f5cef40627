package caps

import (
	"testing"
)

func TestSessionCap(t *testing.T) {
	tr := NewTracker("2026-08-10")

	for i := 0; i < MaxRewardedSessions; i++ {
		if got := tr.RecordSession(2); got != 2 {
			t.Fatalf("session %d granted %d gems, want 2", i+1, got)
		}
	}
	if got := tr.RecordSession(2); got != 0 {
		t.Errorf("session past the cap granted %d gems, want 0", got)
	}
	if tr.SessionsPlayed != MaxRewardedSessions+1 {
		t.Errorf("SessionsPlayed = %d, want %d", tr.SessionsPlayed, MaxRewardedSessions+1)
	}
	if tr.RewardedSessions != MaxRewardedSessions {
		t.Errorf("RewardedSessions = %d, want %d", tr.RewardedSessions, MaxRewardedSessions)
	}
}

func TestSharedGemBudget(t *testing.T) {
	tr := NewTracker("2026-08-10")

	// Six grants of 3 gems across both channels can pay at most 15.
	total := 0
	for i := 0; i < 3; i++ {
		total += tr.RecordSession(3)
	}
	for i := 0; i < 3; i++ {
		total += tr.RecordBattle(3)
	}
	if total != MaxGemsPerDay {
		t.Errorf("granted %d gems across six plays, want %d", total, MaxGemsPerDay)
	}
	if tr.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", tr.Remaining())
	}

	// Budget spent: further battles still count but pay nothing.
	if got := tr.RecordBattle(3); got != 0 {
		t.Errorf("battle after budget spent granted %d, want 0", got)
	}
}

func TestPartialGrantAtBudgetEdge(t *testing.T) {
	tr := NewTracker("2026-08-10")
	tr.GemsEarned = 13

	if got := tr.RecordSession(5); got != 2 {
		t.Errorf("granted %d gems with 2 left in budget, want 2", got)
	}
	if tr.GemsEarned != MaxGemsPerDay {
		t.Errorf("GemsEarned = %d, want %d", tr.GemsEarned, MaxGemsPerDay)
	}
}

func TestBattleCapIndependentOfSessions(t *testing.T) {
	tr := NewTracker("2026-08-10")

	for i := 0; i < MaxRewardedSessions; i++ {
		tr.RecordSession(1)
	}
	// Session channel exhausted, battles still pay.
	if got := tr.RecordBattle(3); got != 3 {
		t.Errorf("battle after session cap granted %d, want 3", got)
	}
}
