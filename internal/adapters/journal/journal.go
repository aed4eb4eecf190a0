package journal

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// FileJournal is an append-only log of ingestion events, one line per event
// in the form "<ISO-8601 timestamp>: <message>". Appends are serialized so
// concurrent writers cannot interleave partial lines.
type FileJournal struct {
	mu   sync.Mutex
	path string
}

func (j *FileJournal) Append(msg string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open journal %q: %w", j.path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s: %s\n", time.Now().UTC().Format(time.RFC3339), msg)
	if _, err = f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append to journal %q: %w", j.path, err)
	}
	return nil
}

// Tail returns the last n lines in original order. A missing journal file
// reads as empty: the process may serve status before the first ingestion.
func (j *FileJournal) Tail(n int) ([]string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read journal %q: %w", j.path, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return []string{}, nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

func NewFileJournal(path string) *FileJournal {
	return &FileJournal{path: path}
}
