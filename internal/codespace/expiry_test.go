package codespace

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"exactly two days", testNow.Add(48 * time.Hour), 2},
		{"partial day rounds up", testNow.Add(36 * time.Hour), 2},
		{"under a day rounds up", testNow.Add(2 * time.Hour), 1},
		{"now", testNow, 0},
		{"expired partial day", testNow.Add(-36 * time.Hour), -1},
		{"expired exact days", testNow.Add(-48 * time.Hour), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.at, testNow); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExpiryTier(t *testing.T) {
	tests := []struct {
		days int
		want Tier
	}{
		{-3, TierUrgent},
		{0, TierUrgent},
		{6, TierUrgent},
		{7, TierWarning},
		{14, TierWarning},
		{15, TierOK},
		{100, TierOK},
	}
	for _, tt := range tests {
		if got := ExpiryTier(tt.days); got != tt.want {
			t.Errorf("ExpiryTier(%d) = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestStateTier(t *testing.T) {
	tests := []struct {
		state string
		want  Tier
	}{
		{"Available", TierOK},
		{"available", TierOK},
		{"Shutdown", TierWarning},
		{"SHUTDOWN", TierWarning},
		{"Provisioning", TierUrgent},
		{"Unknown", TierUrgent},
	}
	for _, tt := range tests {
		if got := StateTier(tt.state); got != tt.want {
			t.Errorf("StateTier(%q) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestExpiresIn(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"expired", testNow.Add(-time.Hour), "Expired"},
		{"expires now", testNow, "Expired"},
		{"minutes", testNow.Add(45 * time.Minute), "45m"},
		{"hours", testNow.Add(5 * time.Hour), "5h"},
		{"one day", testNow.Add(30 * time.Hour), "1 day"},
		{"days", testNow.Add(10 * 24 * time.Hour), "10 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpiresIn(tt.at, testNow); got != tt.want {
				t.Errorf("ExpiresIn() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatGitStatus(t *testing.T) {
	tests := []struct {
		name string
		gs   *GitStatus
		want string
	}{
		{"nil", nil, "Unknown"},
		{"clean", &GitStatus{}, "clean"},
		{"uncommitted", &GitStatus{HasUncommittedChanges: true}, "uncommitted"},
		{"ahead and behind", &GitStatus{Ahead: 2, Behind: 1}, "↑2, ↓1"},
		{
			"everything",
			&GitStatus{HasUncommittedChanges: true, HasUnpushedChanges: true, Ahead: 3},
			"uncommitted, unpushed, ↑3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatGitStatus(tt.gs); got != tt.want {
				t.Errorf("FormatGitStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
