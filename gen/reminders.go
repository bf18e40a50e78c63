package gen

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var reminderRows = []struct {
	message string
	minutes int
}{
	{"take a break", 30}, {"check the oven", 60}, {"call Henke", 15}, {"Timer", 5},
	{"review PR", 120}, {"team meeting", 45}, {"stretch", 10}, {"pick up laundry", 180},
	{"the call", 20}, {"lunch", 90}, {"drink water", 30}, {"take medicine", 240},
	{"check email", 60}, {"stand up", 25}, {"save work", 30},
}

var reminderPatterns = []string{
	"Remind me to {m} in {t} minutes", "Set reminder {t} min: {m}",
	"reminder in {t} mins {m}", "remind me in {t} minutes to {m}",
}

var reminderListQueries = []string{
	"Show reminders", "My reminders", "list reminders", "pending reminders",
}

func genReminders(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "create_reminder", "list_reminders")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, row := range reminderRows {
		args := map[string]any{"message": row.message, "delay_minutes": row.minutes}
		trace := fmt.Sprintf("Create reminder in %d minutes.", row.minutes)
		for _, pattern := range reminderPatterns {
			msg, err := fill(pattern, "m", row.message)
			if err != nil {
				return nil, err
			}
			msg, err = fill(msg, "t", strconv.Itoa(row.minutes))
			if err != nil {
				return nil, err
			}
			out = append(out, corpus.New(msg, "create_reminder", args, tools, trace))
		}
	}
	for _, msg := range reminderListQueries {
		out = append(out, corpus.New(msg, "list_reminders", map[string]any{}, tools, "List reminders."))
	}
	return out, nil
}
