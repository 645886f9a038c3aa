package questions

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/wannabet/internal/models"
)

// ErrEmptyPool is returned when no question files yield any question
var ErrEmptyPool = errors.New("question pool is empty")

// Loader reads question files from a directory. Each file holds a list of
// questions in YAML or JSON.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader creates a loader for the given directory
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		dir:    dir,
		logger: logger.With("component", "question_loader", "dir", dir),
	}
}

// Load reads every question file and returns the validated questions in file order
func (l *Loader) Load() ([]*models.Question, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read question dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml", ".json":
			files = append(files, filepath.Join(l.dir, entry.Name()))
		}
	}
	sort.Strings(files)

	seen := make(map[string]string)
	var all []*models.Question
	for _, path := range files {
		qs, err := readQuestionFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		for i, q := range qs {
			if err := Validate(q); err != nil {
				return nil, fmt.Errorf("%s entry %d: %w", filepath.Base(path), i, err)
			}
			if prev, ok := seen[q.Text]; ok {
				return nil, fmt.Errorf("%s entry %d: duplicate question %q (first seen in %s)", filepath.Base(path), i, q.Text, prev)
			}
			seen[q.Text] = filepath.Base(path)
			all = append(all, q)
		}
		l.logger.Debug("loaded question file", "file", filepath.Base(path), "count", len(qs))
	}

	if len(all) == 0 {
		return nil, ErrEmptyPool
	}

	l.logger.Info("loaded question pool", "files", len(files), "questions", len(all))
	return all, nil
}

// LoadPool reads every question file and groups the result by category
func (l *Loader) LoadPool() (*Pool, error) {
	qs, err := l.Load()
	if err != nil {
		return nil, err
	}
	return NewPool(qs), nil
}

// Validate checks a single question record
func Validate(q *models.Question) error {
	if q == nil {
		return errors.New("question cannot be nil")
	}
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("question text cannot be empty")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("question %q: answer cannot be empty", q.Text)
	}
	if !q.Category.IsValid() {
		return fmt.Errorf("question %q: unknown category %q", q.Text, q.Category)
	}
	if !q.Level.IsValid() {
		return fmt.Errorf("question %q: unknown level %q", q.Text, q.Level)
	}
	if q.StartYear != nil && q.EndYear != nil && *q.StartYear > *q.EndYear {
		return fmt.Errorf("question %q: start_year %d is after end_year %d", q.Text, *q.StartYear, *q.EndYear)
	}
	return nil
}

// readQuestionFile decodes a list of questions. JSON files parse as YAML.
func readQuestionFile(path string) ([]*models.Question, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var qs []*models.Question
	if err := yaml.Unmarshal(b, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}
