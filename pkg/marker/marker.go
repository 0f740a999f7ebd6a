// Package marker keeps the sentinel files that tell jshintmate a report window
// is open for a file.
//
// Markers live in a directory per day under a shared root. A marker exists
// while the editor shows a report for its target; the report window removes it
// on close. Absence means no open window, not absence of issues.
package marker

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yaklabco/jshintmate/internal/logging"
	"github.com/yaklabco/jshintmate/pkg/fsutil"
)

// Suffix is appended to the hashed target identity to form a marker name.
const Suffix = ".marker"

// partitionLayout names the per-day directories.
const partitionLayout = "2006-01-02"

// Tracker manages marker files under a root directory.
type Tracker struct {
	root string
	now  func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the clock used to pick the day partition.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates a Tracker rooted at root.
func New(root string, opts ...Option) *Tracker {
	tracker := &Tracker{
		root: root,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(tracker)
	}
	return tracker
}

// Dir returns today's partition directory.
func (t *Tracker) Dir() string {
	return filepath.Join(t.root, t.now().Format(partitionLayout))
}

// EnsureDir creates today's partition if needed and returns it. The run that
// creates the partition also removes partitions left from earlier days;
// failures while pruning are logged and ignored.
func (t *Tracker) EnsureDir(ctx context.Context) (string, error) {
	dir := t.Dir()

	created, err := fsutil.EnsureDir(dir)
	if err != nil {
		return "", fmt.Errorf("ensure marker directory: %w", err)
	}

	if created {
		t.pruneStale(ctx, filepath.Base(dir))
	}
	return dir, nil
}

func (t *Tracker) pruneStale(ctx context.Context, keep string) {
	logger := logging.FromContext(ctx)

	entries, err := os.ReadDir(t.root)
	if err != nil {
		logger.Debug("cannot list marker partitions", logging.FieldPath, t.root, logging.FieldError, err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if name == keep || !entry.IsDir() {
			continue
		}
		if _, err := time.Parse(partitionLayout, name); err != nil {
			continue
		}

		stale := filepath.Join(t.root, name)
		if err := os.RemoveAll(stale); err != nil {
			logger.Debug("cannot remove stale marker partition", logging.FieldPath, stale, logging.FieldError, err)
			continue
		}
		logger.Debug("removed stale marker partition", logging.FieldPath, stale)
	}
}

// PathFor returns the marker path for a target identity in today's partition.
func (t *Tracker) PathFor(identity string) string {
	return filepath.Join(t.Dir(), Hash(identity)+Suffix)
}

// Hash returns the hex SHA-256 digest of identity.
func Hash(identity string) string {
	sum := sha256.Sum256([]byte(identity))
	return hex.EncodeToString(sum[:])
}

// Exists reports whether the marker at path exists.
func Exists(path string) bool {
	return fsutil.FileExists(path)
}

// Touch creates or replaces the marker at path with an empty file.
func Touch(ctx context.Context, path string) error {
	if err := fsutil.Touch(ctx, path); err != nil {
		return fmt.Errorf("touch marker: %w", err)
	}
	return nil
}
