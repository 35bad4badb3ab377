// Package reward holds the gamification rules: XP, level, and task streaks.
// Levels are derived from XP and recomputed on every change so stored values
// never drift from the formula.
package reward

import "engage/models"

const (
	XPPerApprovedTask = 10
	XPPerLevel        = 100
	StreakGoal        = 5
	StreakBonusXP     = 50
)

func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// AwardApprovalXP applies the per-task XP grant. It fires when an admin
// approves a submission, not at submission time.
func AwardApprovalXP(profile *models.EngagerProfile) {
	profile.XP += XPPerApprovedTask
	profile.Level = LevelForXP(profile.XP)
}

// RecordSubmission advances the task streak. Streaks count submissions, not
// approvals: the counter moves as soon as proof is turned in. Reaching the
// goal grants the bonus XP and resets the counter. Reports whether the bonus
// fired.
func RecordSubmission(profile *models.EngagerProfile) bool {
	profile.TaskStreak++
	if profile.TaskStreak < StreakGoal {
		return false
	}
	profile.XP += StreakBonusXP
	profile.Level = LevelForXP(profile.XP)
	profile.TaskStreak = 0
	return true
}
