package gen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var emailInboxQueries = []struct {
	msg  string
	args map[string]any
}{
	{"Check my email", map[string]any{}},
	{"Any new emails?", map[string]any{"unread_only": true}},
	{"Show my inbox", map[string]any{}},
	{"Unread messages?", map[string]any{"unread_only": true}},
	{"show emails", map[string]any{}},
	{"check mail", map[string]any{"unread_only": true}},
	{"any messages?", map[string]any{}},
	{"inbox please", map[string]any{}},
	{"email inbox", map[string]any{}},
	{"new mail?", map[string]any{"unread_only": true}},
}

var emailSearchTerms = []string{
	"Henke", "project", "invoice", "meeting", "contract", "deployment",
	"Amazon", "shipping", "password reset", "order", "receipt", "support",
}

var emailSends = []struct {
	to, subject, body string
}{
	{"henke@example.com", "Report Ready", "The report is ready."},
	{"sarah@company.com", "Meeting", "Reminder about meeting."},
	{"support@vendor.com", "Order", "Order status inquiry."},
	{"team@company.com", "Deadline", "Reminder: deadline Friday."},
}

func genEmail(rng *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "get_emails", "search_emails", "send_email")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, q := range emailInboxQueries {
		ex := corpus.New(q.msg, "get_emails", q.args, tools, "User wants emails.")
		out = withVariants(rng, out, ex, 3)
	}
	for _, term := range emailSearchTerms {
		phrasings := []string{
			fmt.Sprintf("Find emails from %s", term),
			fmt.Sprintf("Search for %s emails", term),
			fmt.Sprintf("emails about %s", term),
			fmt.Sprintf("search email %s", term),
		}
		args := map[string]any{"query": term}
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "search_emails", args, tools, fmt.Sprintf("Search emails: %s", term)))
		}
	}
	for _, s := range emailSends {
		msg := fmt.Sprintf("Send email to %s about %s", s.to, strings.ToLower(s.subject))
		args := map[string]any{"to": s.to, "subject": s.subject, "body": s.body}
		out = append(out, corpus.New(msg, "send_email", args, tools, fmt.Sprintf("Send email to %s", s.to)))
	}
	return out, nil
}
