package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"camelsnake.dev/pkg/camelsnake/internal/adapter"
	cerrors "camelsnake.dev/pkg/camelsnake/internal/errors"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// DefaultMarker is appended (with a counter) to every reviewed name until
// the sweep removes it.
const DefaultMarker = MarkerFence + "CamelSnakeReviewed" + MarkerFence

// MarkerFence opens and closes every review marker.
const MarkerFence = "_XxX_"

// minMarkerLen is a fence on each side plus at least two characters.
const minMarkerLen = 2*len(MarkerFence) + 2

// ValidateMarker rejects markers that could match text the run did not
// write. A marker must be fenced by MarkerFence on both sides, carry at
// least two characters between the fences and fit inside an identifier.
func ValidateMarker(marker string) error {
	switch {
	case len(marker) < minMarkerLen:
		return cerrors.New(cerrors.CodeValidation, fmt.Sprintf("marker %q is too short; use at least %d characters", marker, minMarkerLen))
	case !strings.HasPrefix(marker, MarkerFence) || !strings.HasSuffix(marker, MarkerFence):
		return cerrors.New(cerrors.CodeValidation, fmt.Sprintf("marker %q must start and end with %s", marker, MarkerFence))
	case !m.IsIdentifier("_" + marker):
		return cerrors.New(cerrors.CodeValidation, fmt.Sprintf("marker %q cannot be part of an identifier", marker))
	}

	return nil
}

// Quarantine owns the textual review marker. Mark is the only producer of
// marked spellings and Sweep the only place that removes them.
type Quarantine interface {
	Mark(name string) string
	IsMarked(name string) bool
	Strip(text []byte) []byte
	Count(text []byte) int
	Sweep(ctx context.Context, paths []m.Path) ([]m.Path, error)
}

type quarantine struct {
	adapter.SourceFSAdapter

	marker  string
	pattern *regexp.Regexp
	counter int
}

// NewQuarantine creates a Quarantine using marker, or DefaultMarker when
// marker is empty.
func NewQuarantine(fs adapter.SourceFSAdapter, marker string) Quarantine {
	if marker == "" {
		marker = DefaultMarker
	}

	return &quarantine{
		SourceFSAdapter: fs,
		marker:          marker,
		pattern:         regexp.MustCompile(regexp.QuoteMeta(marker) + `\d+`),
	}
}

// Mark returns name with a fresh, unique marker appended.
func (q *quarantine) Mark(name string) string {
	q.counter++
	return name + q.marker + strconv.Itoa(q.counter)
}

func (q *quarantine) IsMarked(name string) bool {
	return q.pattern.MatchString(name)
}

func (q *quarantine) Strip(text []byte) []byte {
	return q.pattern.ReplaceAll(text, nil)
}

func (q *quarantine) Count(text []byte) int {
	return len(q.pattern.FindAllIndex(text, -1))
}

// Sweep removes every marker from every given file and returns the files it
// rewrote. Files without markers are left untouched, so a second sweep
// changes nothing.
func (q *quarantine) Sweep(ctx context.Context, paths []m.Path) ([]m.Path, error) {
	var changed []m.Path

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return changed, err
		}

		content, err := q.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read file for sweep", "path", path, "error", err)
			return changed, fmt.Errorf("failed to read %s for sweep: %w", path, err)
		}

		stripped := q.Strip(content)
		if bytes.Equal(stripped, content) {
			continue
		}

		perm := os.FileMode(0o644)
		if info, err := q.FileInfo(path); err == nil {
			perm = info.Mode().Perm()
		}

		if err := q.WriteFile(path, stripped, perm); err != nil {
			slog.Error("Failed to write swept file", "path", path, "error", err)
			return changed, fmt.Errorf("failed to write swept %s: %w", path, err)
		}

		slog.Debug("Swept review markers", "path", path)

		changed = append(changed, path)
	}

	return changed, nil
}
