package gen

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var calendarQueries = []struct {
	msg  string
	args map[string]any
}{
	{"What's on my calendar?", map[string]any{}},
	{"Show my schedule", map[string]any{}},
	{"Any meetings today?", map[string]any{"days_ahead": 1}},
	{"What's coming up this week?", map[string]any{"days_ahead": 7}},
	{"Calendar for tomorrow", map[string]any{"days_ahead": 2}},
	{"do i have appointments", map[string]any{}},
	{"whats my schedule", map[string]any{}},
	{"events this month", map[string]any{"days_ahead": 30}},
	{"upcoming meetings", map[string]any{"days_ahead": 7}},
	{"calendar please", map[string]any{}},
	{"my schedule today", map[string]any{"days_ahead": 1}},
	{"meetings today", map[string]any{"days_ahead": 1}},
	{"schedule this week", map[string]any{"days_ahead": 7}},
	{"any events", map[string]any{}},
	{"check calendar", map[string]any{}},
}

var calendarEvents = []string{
	"meeting with Henke", "dentist appointment", "lunch with Sarah", "team standup",
	"client call", "doctor appointment", "interview", "team lunch", "1:1 with manager",
	"project review", "demo presentation", "training session", "planning meeting",
}

var titleCaser = cases.Title(language.English)

func genCalendar(rng *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "get_calendar_events", "create_calendar_event")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, q := range calendarQueries {
		ex := corpus.New(q.msg, "get_calendar_events", q.args, tools, "User wants calendar.")
		out = withVariants(rng, out, ex, 3)
	}
	for _, event := range calendarEvents {
		phrasings := []string{
			fmt.Sprintf("Schedule %s tomorrow at 2pm", event),
			fmt.Sprintf("Add %s on Friday at 10am", event),
			fmt.Sprintf("Book %s next Monday noon", event),
			fmt.Sprintf("create event %s at 3pm", event),
		}
		// Timestamps are placeholder slots the downstream trainer treats as
		// opaque; routing only needs title plus a valid start/end pair.
		args := map[string]any{
			"title":    titleCaser.String(event),
			"start_at": "2024-01-16T14:00:00",
			"end_at":   "2024-01-16T15:00:00",
		}
		trace := fmt.Sprintf("User wants to create event: %s", event)
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "create_calendar_event", args, tools, trace))
		}
	}
	return out, nil
}
