package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/riskcalc/config"
	"github.com/rustyeddy/riskcalc/pkg/id"
	"github.com/rustyeddy/riskcalc/risk"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.JournalConfig
		want    any
		wantErr bool
	}{
		{"none", config.JournalConfig{Type: "none"}, Nop{}, false},
		{"empty", config.JournalConfig{}, Nop{}, false},
		{"csv", config.JournalConfig{Type: "csv", TradesFile: filepath.Join(dir, "t.csv"), AllocationsFile: filepath.Join(dir, "a.csv")}, &CSVJournal{}, false},
		{"sqlite", config.JournalConfig{Type: "sqlite", DBPath: filepath.Join(dir, "j.db")}, &SQLite{}, false},
		{"unknown", config.JournalConfig{Type: "mongo"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, j)
			assert.NoError(t, j.Close())
		})
	}
}

func TestNewTradeRecord(t *testing.T) {
	t.Parallel()

	p := risk.TradeParams{AccountBalance: 1000, RiskPercentage: 1, EntryPrice: 10, StopLoss: 9}
	rec := NewTradeRecord(p, risk.ComputeTradeRisk(p))

	ts, err := id.Time(rec.ID)
	require.NoError(t, err)
	assert.True(t, ts.Equal(rec.CreatedAt.Truncate(time.Millisecond)))
	assert.InDelta(t, 10.0, rec.Result.PositionSize, 1e-9)

	a := NewAllocationRecord(risk.AllocationParams{}, risk.AllocationResult{})
	assert.NotEqual(t, rec.ID, a.ID)
}
