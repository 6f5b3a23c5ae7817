package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/skillquest/internal/storage"
)

type brokenStore struct{ *fakeStore }

func (brokenStore) RecentSessions(int) ([]storage.SessionRecord, error) {
	return nil, errors.New("disk on fire")
}

func TestRecordsViewTabs(t *testing.T) {
	end := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{saved: []storage.SessionRecord{{
		ID:            uuid.New(),
		StartedAt:     end.Add(-5 * time.Minute),
		EndedAt:       end,
		Ticks:         500,
		ItemsObtained: 42,
		LevelUps:      1,
		Skills: []storage.SkillRecord{
			{Skill: "mining", Level: 2, Experience: 90, Gained: 90},
			{Skill: "health", Level: 10, Experience: 1154},
		},
	}}}

	r := newRecordsView(store, 120, 30)
	if len(r.rows) != 1 {
		t.Fatalf("expected 1 recent row, got %d", len(r.rows))
	}
	row := r.rows[0]
	if row[1] != "5m0s" || row[2] != "42" || row[4] != "mining 2 (+90)" {
		t.Errorf("row = %q", row)
	}
	if !strings.Contains(r.view(), "Recent sessions") {
		t.Error("first tab should be the recent sessions")
	}

	r, _, res := r.update(tea.KeyMsg{Type: tea.KeyTab})
	if res != recordsStay || r.tabs[r.tab] != "mining" {
		t.Fatalf("tab should move to mining, got %q", r.tabs[r.tab])
	}
	if !strings.Contains(r.view(), "Best mining") {
		t.Errorf("view should name the skill tab:\n%s", r.view())
	}

	r, _, _ = r.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	r, _, _ = r.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if r.tabs[r.tab] != "health" {
		t.Errorf("shift+tab should wrap to the last tab, got %q", r.tabs[r.tab])
	}

	if _, _, res := r.update(keyEsc); res != recordsBack {
		t.Errorf("esc = %v, expected back", res)
	}
}

func TestRecordsViewLoadError(t *testing.T) {
	r := newRecordsView(brokenStore{&fakeStore{}}, 60, 20)
	if r.loadErr == nil {
		t.Fatal("expected a load error")
	}
	if !strings.Contains(r.view(), "disk on fire") {
		t.Errorf("error should be shown:\n%s", r.view())
	}
}

func TestSkillSummary(t *testing.T) {
	if got := skillSummary(nil); got != "-" {
		t.Errorf("skillSummary(nil) = %q", got)
	}
	got := skillSummary([]storage.SkillRecord{
		{Skill: "mining", Level: 3, Gained: 200},
		{Skill: "health", Level: 10},
	})
	if got != "mining 3 (+200)" {
		t.Errorf("skillSummary() = %q", got)
	}
}
