package reward

import (
	"testing"

	"engage/models"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{550, 6},
		{-5, 1},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Fatalf("LevelForXP(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestAwardApprovalXP(t *testing.T) {
	profile := &models.EngagerProfile{XP: 95, Level: 1}
	AwardApprovalXP(profile)
	if profile.XP != 105 {
		t.Fatalf("expected xp 105, got %d", profile.XP)
	}
	if profile.Level != 2 {
		t.Fatalf("expected level 2, got %d", profile.Level)
	}
}

func TestStreakBonus(t *testing.T) {
	profile := &models.EngagerProfile{Level: 1}
	for i := 0; i < StreakGoal-1; i++ {
		if RecordSubmission(profile) {
			t.Fatalf("bonus fired early at submission %d", i+1)
		}
	}
	if profile.TaskStreak != StreakGoal-1 {
		t.Fatalf("expected streak %d, got %d", StreakGoal-1, profile.TaskStreak)
	}
	if !RecordSubmission(profile) {
		t.Fatal("expected bonus on the final streak submission")
	}
	if profile.TaskStreak != 0 {
		t.Fatalf("expected streak reset, got %d", profile.TaskStreak)
	}
	if profile.XP != StreakBonusXP {
		t.Fatalf("expected xp %d, got %d", StreakBonusXP, profile.XP)
	}
}
