package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	allocPath := filepath.Join(dir, "allocations.csv")

	j, err := NewCSV(tradesPath, allocPath)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	assert.Equal(t, [][]string{tradeHeader}, readCSV(t, tradesPath))
	assert.Equal(t, [][]string{allocationHeader}, readCSV(t, allocPath))
}

func TestCSVJournalRecordTrade(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")

	j, err := NewCSV(tradesPath, filepath.Join(dir, "allocations.csv"))
	require.NoError(t, err)

	rec := sampleTrade("T1", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, j.RecordTrade(rec))
	require.NoError(t, j.Close())

	rows := readCSV(t, tradesPath)
	require.Len(t, rows, 2)
	want := []string{
		"T1", "2024-01-02T03:04:05Z", "long",
		"10000", "2", "100", "95", "110",
		"200", "40", "400", "2", "5", "10",
	}
	assert.Equal(t, want, rows[1])
}

func TestCSVJournalRecordAllocation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	allocPath := filepath.Join(dir, "allocations.csv")

	j, err := NewCSV(filepath.Join(dir, "trades.csv"), allocPath)
	require.NoError(t, err)

	require.NoError(t, j.RecordAllocation(sampleAllocation("A1", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))))
	require.NoError(t, j.Close())

	rows := readCSV(t, allocPath)
	require.Len(t, rows, 2)
	row := rows[1]
	require.Len(t, row, len(allocationHeader))
	assert.Equal(t, "A1", row[0])
	assert.Equal(t, "5000", row[9])
	assert.Equal(t, "2", row[16])
	assert.Equal(t, "5", row[17])
}

func TestCSVJournalFloatsRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")

	j, err := NewCSV(tradesPath, filepath.Join(dir, "allocations.csv"))
	require.NoError(t, err)

	rec := sampleTrade("T1", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	rec.Params.AccountBalance = 2500000
	rec.Result.PositionSize = 1.0 / 3
	rec.Result.RiskRewardRatio = 0.0000004
	require.NoError(t, j.RecordTrade(rec))
	require.NoError(t, j.Close())

	row := readCSV(t, tradesPath)[1]
	assert.Equal(t, "2500000", row[3])
	for col, want := range map[int]float64{9: 1.0 / 3, 11: 0.0000004} {
		got, err := strconv.ParseFloat(row[col], 64)
		require.NoError(t, err)
		assert.Equal(t, want, got, tradeHeader[col])
	}
}

func TestCSVJournalAppends(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	allocPath := filepath.Join(dir, "allocations.csv")

	for _, id := range []string{"T1", "T2"} {
		j, err := NewCSV(tradesPath, allocPath)
		require.NoError(t, err)
		require.NoError(t, j.RecordTrade(sampleTrade(id, time.Now())))
		require.NoError(t, j.Close())
	}

	rows := readCSV(t, tradesPath)
	require.Len(t, rows, 3)
	assert.Equal(t, tradeHeader, rows[0])
	assert.Equal(t, "T1", rows[1][0])
	assert.Equal(t, "T2", rows[2][0])
}

func TestCSVJournalConcurrentWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")

	j, err := NewCSV(tradesPath, filepath.Join(dir, "allocations.csv"))
	require.NoError(t, err)

	sample := sampleTrade("", time.Time{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, j.RecordTrade(NewTradeRecord(sample.Params, sample.Result)))
		}()
	}
	wg.Wait()
	require.NoError(t, j.Close())

	assert.Len(t, readCSV(t, tradesPath), 21)
}

func TestCSVJournalBadPath(t *testing.T) {
	t.Parallel()

	_, err := NewCSV("/nonexistent/dir/trades.csv", "/nonexistent/dir/alloc.csv")
	assert.Error(t, err)
}
