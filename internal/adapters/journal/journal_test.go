package journal

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *FileJournal {
	t.Helper()
	return NewFileJournal(filepath.Join(t.TempDir(), "cron.log"))
}

func TestFileJournal_Tail_MissingFileReadsEmpty(t *testing.T) {
	j := newTestJournal(t)

	lines, err := j.Tail(10)
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestFileJournal_AppendAndTail(t *testing.T) {
	j := newTestJournal(t)

	require.NoError(t, j.Append("rate fetched successfully"))
	require.NoError(t, j.Append("rate fetch failed"))

	lines, err := j.Tail(10)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], ": rate fetched successfully"))
	require.True(t, strings.HasSuffix(lines[1], ": rate fetch failed"))
}

func TestFileJournal_Tail_ReturnsLastNInOriginalOrder(t *testing.T) {
	j := newTestJournal(t)

	for i := 1; i <= 15; i++ {
		require.NoError(t, j.Append(fmt.Sprintf("event %d", i)))
	}

	lines, err := j.Tail(10)
	require.NoError(t, err)
	require.Len(t, lines, 10)
	require.True(t, strings.HasSuffix(lines[0], ": event 6"))
	require.True(t, strings.HasSuffix(lines[9], ": event 15"))
}

func TestFileJournal_LinesCarryTimestampPrefix(t *testing.T) {
	j := newTestJournal(t)

	require.NoError(t, j.Append("bootstrap insert"))

	lines, err := j.Tail(1)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	ts, msg, found := strings.Cut(lines[0], ": ")
	require.True(t, found)
	require.Equal(t, "bootstrap insert", msg)
	require.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, ts)
}

func TestFileJournal_ConcurrentAppendsDoNotInterleave(t *testing.T) {
	j := newTestJournal(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = j.Append(fmt.Sprintf("event %d", i))
		}(i)
	}
	wg.Wait()

	lines, err := j.Tail(100)
	require.NoError(t, err)
	require.Len(t, lines, 20)
	for _, line := range lines {
		require.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z: event \d+$`, line)
	}
}
