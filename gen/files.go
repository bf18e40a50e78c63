package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var fileWrites = []struct {
	filename, content string
}{
	{"main.py", "print('hello')"}, {"notes.txt", "Meeting notes"},
	{"config.json", `{"debug": true}`}, {"greeting.txt", "hello world"},
	{"script.py", "import os"}, {"data.csv", "name,age"},
	{"README.md", "# Project"}, {".env", "DEBUG=true"},
}

var fileReads = []string{
	"main.py", "notes.txt", "config.json", "readme.md", "log.txt",
	"data.csv", "script.py", "settings.json", ".env", "package.json",
}

var fileListQueries = []string{
	"Show files", "List files", "my files", "workspace files", "ls",
}

var fileDeletes = []string{"old.txt", "temp.log", "backup.sql"}

func genFiles(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "write_file", "read_file", "list_files", "delete_file")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, w := range fileWrites {
		phrasings := []string{
			fmt.Sprintf("Save to %s: %s", w.filename, w.content),
			fmt.Sprintf("Create %s with %s", w.filename, w.content),
			fmt.Sprintf("write to %s", w.filename),
			fmt.Sprintf("save %s to %s", w.content, w.filename),
		}
		args := map[string]any{"filename": w.filename, "content": w.content}
		trace := fmt.Sprintf("Write file: %s", w.filename)
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "write_file", args, tools, trace))
		}
	}
	for _, f := range fileReads {
		phrasings := []string{
			fmt.Sprintf("Read %s", f), fmt.Sprintf("Show %s", f),
			fmt.Sprintf("What's in %s?", f), fmt.Sprintf("open %s", f), fmt.Sprintf("cat %s", f),
		}
		args := map[string]any{"filename": f}
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "read_file", args, tools, fmt.Sprintf("Read file: %s", f)))
		}
	}
	for _, msg := range fileListQueries {
		out = append(out, corpus.New(msg, "list_files", map[string]any{}, tools, "List files."))
	}
	for _, f := range fileDeletes {
		msg := fmt.Sprintf("Delete %s", f)
		args := map[string]any{"filename": f}
		out = append(out, corpus.New(msg, "delete_file", args, tools, fmt.Sprintf("Delete: %s", f)))
	}
	return out, nil
}
