package tui

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/command"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/extraction"
	"github.com/vovakirdan/skillquest/internal/player"
	"github.com/vovakirdan/skillquest/internal/progression"
	"github.com/vovakirdan/skillquest/internal/storage"
)

// session is one game from New Game until the player leaves it.
type session struct {
	id      uuid.UUID
	seed    int64
	started time.Time
	core    *progression.Core
	clock   *core.FixedStep
	log     *Narration
	panel   progression.Panel
}

func newSession(cat *catalog.Catalog, rt core.RuntimeConfig, opts player.Options, now time.Time) *session {
	seed := rt.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}

	p := player.New(cat, opts)
	s := &session{
		id:      uuid.New(),
		seed:    seed,
		started: now,
		core:    progression.New(cat, p, extraction.NewEngine(extraction.NewSeededSource(seed))),
		clock:   core.NewFixedStep(rt.TickInterval),
		log:     NewNarration(defaultNarrationLimit),
		panel:   progression.PanelInventory,
	}
	s.log.Push(Line{
		{Text: "Welcome to ", Color: textColor},
		{Text: "SkillQuest", Color: core.ColorBrightWhite},
		{Text: "!", Color: textColor},
	})
	s.log.Say("Type help to see what you can do.", detailColor)
	return s
}

// advance runs every tick that is due at now and narrates the results.
func (s *session) advance(now time.Time) []progression.Event {
	var events []progression.Event
	for range s.clock.Advance(now) {
		events = append(events, s.core.Tick()...)
	}
	s.apply(events)
	return events
}

// submit runs one prompt line. It returns the events the command caused
// and the parse error, if any. Both are already narrated.
func (s *session) submit(line string) ([]progression.Event, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	s.log.Say("> "+line, detailColor)

	if isHelp(line) {
		s.narrateHelp()
		return nil, nil
	}

	cmd, err := command.Parse(line)
	if err != nil {
		s.log.Say(capitalize(err.Error())+".", badColor)
		return nil, err
	}
	events := s.core.HandleCommand(cmd)
	s.apply(events)
	return events, nil
}

func (s *session) apply(events []progression.Event) {
	for _, ev := range events {
		if v, ok := ev.(progression.ViewEvent); ok {
			s.panel = v.Panel
			continue
		}
		s.log.Push(describe(ev))
	}
}

func isHelp(line string) bool {
	switch strings.ToLower(line) {
	case "help", "h", "?":
		return true
	}
	return false
}

func (s *session) narrateHelp() {
	for _, v := range command.List() {
		alias := ""
		if len(v.Aliases) > 0 {
			alias = " (" + strings.Join(v.Aliases, ", ") + ")"
		}
		s.log.Push(Line{
			{Text: v.Usage, Color: accentColor},
			{Text: alias, Color: detailColor},
		})
	}
	var names []string
	for _, res := range s.core.Catalog().Resources() {
		names = append(names, res.Name)
	}
	s.log.Say("Resources: "+strings.Join(names, ", "), detailColor)
}

// record summarizes the session for the records table.
func (s *session) record(now time.Time) storage.SessionRecord {
	stats := s.core.Stats()
	set := s.core.Player().Skills()

	rec := storage.SessionRecord{
		ID:            s.id,
		StartedAt:     s.started,
		EndedAt:       now,
		Ticks:         s.core.Ticks(),
		ItemsObtained: stats.ItemsObtained,
		LevelUps:      stats.LevelUps,
	}
	for _, sk := range set.Skills() {
		rec.Skills = append(rec.Skills, storage.SkillRecord{
			Skill:      sk.String(),
			Level:      set.Level(sk),
			Experience: set.Experience(sk),
			Gained:     stats.Experience[sk],
		})
	}
	return rec
}

// status is the one-line summary above the narration log.
func (s *session) status() string {
	st := s.core.Player().State()
	if !st.Active() {
		return "idle"
	}
	return st.Action.String() + " " + st.Target.Name
}
