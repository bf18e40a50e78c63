package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
)

// maxRecordSize bounds a single JSONL line during validation. Records carry
// full tool spec arrays, so lines run long but stay well under this.
const maxRecordSize = 4 << 20

// ValidationError reports the first malformed record with its 1-based line number.
type ValidationError struct {
	Line int
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate re-parses every record in r and aborts on the first failure:
// JSON that does not parse, a record violating the structural invariants
// (Example.Check), or tool call arguments that do not satisfy the
// catalog's compiled parameter schema. On success it returns the corpus
// distribution statistics.
func Validate(r io.Reader, cat *catalog.Catalog) (Stats, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxRecordSize)

	var stats Stats
	line := 0
	for scanner.Scan() {
		line++
		var ex Example
		if err := json.Unmarshal(scanner.Bytes(), &ex); err != nil {
			return Stats{}, &ValidationError{Line: line, Err: err}
		}
		if err := ex.Check(); err != nil {
			return Stats{}, &ValidationError{Line: line, Err: err}
		}
		for _, call := range ex.Assistant().ToolCalls {
			if err := cat.ValidateArgs(call.Name, anyArgs(call.Args)); err != nil {
				return Stats{}, &ValidationError{Line: line, Err: err}
			}
		}
		stats.observe(ex)
	}
	if err := scanner.Err(); err != nil {
		return Stats{}, fmt.Errorf("read corpus: %w", err)
	}
	stats.finalize()
	return stats, nil
}

// anyArgs widens the argument map for the schema validator, which expects
// a plain decoded JSON value.
func anyArgs(args map[string]any) any {
	if args == nil {
		return map[string]any{}
	}
	return map[string]any(args)
}
