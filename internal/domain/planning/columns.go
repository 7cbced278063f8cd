package planning

import (
	"errors"
	"strings"
)

const (
	MinColumns = 2
	MaxColumns = 7
)

var (
	ErrTooFewColumns  = errors.New("at least 2 column names are required")
	ErrTooManyColumns = errors.New("at most 7 column names are allowed")
	ErrEmptyName      = errors.New("column name must not be empty")
	ErrUnknownPreset  = errors.New("unknown workflow preset")
	ErrUnknownColumn  = errors.New("column does not belong to the workflow")
)

// NormalizeColumns trims and drops empty names, then enforces the
// 2..7 bound on what is left. Empty entries are filtered silently;
// ending up below the minimum is a hard validation error.
func NormalizeColumns(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		out = append(out, n)
	}
	if len(out) < MinColumns {
		return nil, ErrTooFewColumns
	}
	if len(out) > MaxColumns {
		return nil, ErrTooManyColumns
	}
	return out, nil
}

// Workflow presets offered during onboarding.
var presets = map[string][]string{
	"classic":          {"Idea", "In Progress", "Done"},
	"content-pipeline": {"Idea", "Scripting", "Filming", "Editing", "Published"},
	"batching":         {"Backlog", "Batch", "Edit", "Schedule", "Posted"},
}

func PresetColumns(key string) ([]string, error) {
	cols, ok := presets[key]
	if !ok {
		return nil, ErrUnknownPreset
	}
	out := make([]string, len(cols))
	copy(out, cols)
	return out, nil
}

func PresetKeys() []string {
	return []string{"classic", "content-pipeline", "batching"}
}
