package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var browserSites = []struct {
	spoken, url string
}{
	{"google.com", "https://google.com"}, {"github.com", "https://github.com"},
	{"reddit", "https://reddit.com"}, {"example.com", "https://example.com"},
	{"anthropic.com", "https://anthropic.com"}, {"stackoverflow", "https://stackoverflow.com"},
	{"twitter", "https://twitter.com"}, {"youtube", "https://youtube.com"},
	{"wikipedia", "https://wikipedia.org"}, {"amazon", "https://amazon.com"},
}

var navigatePatterns = []string{"Go to {s}", "Open {s}", "Navigate to {s}", "browse {s}", "visit {s}"}

var screenshotQueries = []string{"Screenshot", "Capture page", "take screenshot", "grab screenshot"}

var browserClicks = []struct {
	desc, selector string
}{
	{"submit button", "button[type='submit']"},
	{"login link", "a.login"},
	{"Sign In", "button:contains('Sign In')"},
}

var browserFills = []struct {
	desc, selector, text string
}{
	{"search box", "input[type='search']", "hello"},
	{"email field", "input[name='email']", "user@example.com"},
}

func genBrowser(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "navigate", "screenshot", "click", "fill", "get_page_content")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, site := range browserSites {
		args := map[string]any{"url": site.url}
		trace := fmt.Sprintf("Navigate to %s", site.url)
		for _, pattern := range navigatePatterns {
			msg, err := fill(pattern, "s", site.spoken)
			if err != nil {
				return nil, err
			}
			out = append(out, corpus.New(msg, "navigate", args, tools, trace))
		}
	}
	for _, msg := range screenshotQueries {
		out = append(out, corpus.New(msg, "screenshot", map[string]any{}, tools, "Take screenshot."))
		out = append(out, corpus.New(msg+" full page", "screenshot",
			map[string]any{"full_page": true}, tools, "Full page screenshot."))
	}
	for _, c := range browserClicks {
		args := map[string]any{"selector": c.selector}
		out = append(out, corpus.New(fmt.Sprintf("Click %s", c.desc), "click", args, tools, "Click element."))
	}
	for _, f := range browserFills {
		args := map[string]any{"selector": f.selector, "text": f.text}
		msg := fmt.Sprintf("Type %s in %s", f.text, f.desc)
		out = append(out, corpus.New(msg, "fill", args, tools, "Fill form."))
	}
	return out, nil
}
