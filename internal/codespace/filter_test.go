package codespace

import (
	"testing"
	"time"
)

func expiring(id string, days int) Codespace {
	at := testNow.Add(time.Duration(days) * 24 * time.Hour)
	return Codespace{
		ID:          id,
		DisplayName: "cs-" + id,
		Repository:  "octocat/hello-world",
		State:       "Shutdown",
		ExpiresAt:   &at,
	}
}

func active(id string) Codespace {
	return Codespace{
		ID:          id,
		DisplayName: "cs-" + id,
		Repository:  "octocat/hello-world",
		State:       "Available",
	}
}

func ids(records []Codespace) []string {
	out := make([]string, len(records))
	for i, cs := range records {
		out[i] = cs.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter_NoCriteria(t *testing.T) {
	records := []Codespace{expiring("1", 2), active("2"), expiring("3", 20)}
	got := Filter(records, Criteria{}, testNow)
	if !equalIDs(ids(got), "1", "2", "3") {
		t.Errorf("Filter() with no criteria = %v, want all records in order", ids(got))
	}
}

func TestFilter_MaxDays(t *testing.T) {
	// Three expiring records plus one that never expires; only the ones
	// within 14 days should survive, and the non-expiring one never does.
	records := []Codespace{expiring("a", 2), expiring("b", 10), expiring("c", 20), active("d")}
	max := 14
	got := Filter(records, Criteria{MaxDays: &max}, testNow)
	if !equalIDs(ids(got), "a", "b") {
		t.Errorf("Filter(MaxDays=14) = %v, want [a b]", ids(got))
	}
}

func TestFilter_MaxDays_IncludesExpired(t *testing.T) {
	records := []Codespace{expiring("gone", -3), expiring("far", 30)}
	max := 7
	got := Filter(records, Criteria{MaxDays: &max}, testNow)
	if !equalIDs(ids(got), "gone") {
		t.Errorf("Filter(MaxDays=7) = %v, want [gone]", ids(got))
	}
}

func TestFilter_Repository(t *testing.T) {
	records := []Codespace{
		{ID: "1", Repository: "octocat/web-frontend"},
		{ID: "2", Repository: "octocat/backend"},
		{ID: "3", Repository: "acme/WEBSITE"},
	}
	got := Filter(records, Criteria{Repository: "web"}, testNow)
	if !equalIDs(ids(got), "1", "3") {
		t.Errorf("Filter(Repository=web) = %v, want [1 3] (case-insensitive substring)", ids(got))
	}
}

func TestFilter_State(t *testing.T) {
	records := []Codespace{
		{ID: "1", State: "Available"},
		{ID: "2", State: "Shutdown"},
		{ID: "3", State: "available"},
	}
	got := Filter(records, Criteria{State: "AVAILABLE"}, testNow)
	if !equalIDs(ids(got), "1", "3") {
		t.Errorf("Filter(State=AVAILABLE) = %v, want [1 3]", ids(got))
	}
}

func TestFilter_StateMismatchEmpty(t *testing.T) {
	records := []Codespace{{ID: "1", State: "Shutdown"}}
	got := Filter(records, Criteria{State: "Available"}, testNow)
	if len(got) != 0 {
		t.Errorf("Filter() = %v, want empty result", ids(got))
	}
}

func TestFilter_Commutes(t *testing.T) {
	records := []Codespace{
		{ID: "1", Repository: "octocat/web", State: "Available"},
		{ID: "2", Repository: "octocat/web", State: "Shutdown"},
		{ID: "3", Repository: "octocat/api", State: "Available"},
	}

	combined := Filter(records, Criteria{Repository: "web", State: "Available"}, testNow)
	repoThenState := Filter(Filter(records, Criteria{Repository: "web"}, testNow), Criteria{State: "Available"}, testNow)
	stateThenRepo := Filter(Filter(records, Criteria{State: "Available"}, testNow), Criteria{Repository: "web"}, testNow)

	if !equalIDs(ids(combined), "1") {
		t.Fatalf("combined filter = %v, want [1]", ids(combined))
	}
	if !equalIDs(ids(repoThenState), ids(combined)...) || !equalIDs(ids(stateThenRepo), ids(combined)...) {
		t.Errorf("filters do not commute: combined=%v repo-then-state=%v state-then-repo=%v",
			ids(combined), ids(repoThenState), ids(stateThenRepo))
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := []Codespace{expiring("1", 2), expiring("2", 20)}
	max := 7
	_ = Filter(records, Criteria{MaxDays: &max}, testNow)
	if !equalIDs(ids(records), "1", "2") {
		t.Errorf("input mutated: %v", ids(records))
	}
}
