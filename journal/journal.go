// journal/journal.go
package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/riskcalc/config"
	"github.com/rustyeddy/riskcalc/pkg/id"
	"github.com/rustyeddy/riskcalc/risk"
)

var ErrNotFound = errors.New("record not found")

// TradeRecord is one saved position sizing calculation.
type TradeRecord struct {
	ID        string
	CreatedAt time.Time
	Params    risk.TradeParams
	Result    risk.TradeResult
}

// AllocationRecord is one saved capital allocation calculation.
type AllocationRecord struct {
	ID        string
	CreatedAt time.Time
	Params    risk.AllocationParams
	Result    risk.AllocationResult
}

func NewTradeRecord(p risk.TradeParams, r risk.TradeResult) TradeRecord {
	now := time.Now().UTC()
	return TradeRecord{ID: id.At(now), CreatedAt: now, Params: p, Result: r}
}

func NewAllocationRecord(p risk.AllocationParams, r risk.AllocationResult) AllocationRecord {
	now := time.Now().UTC()
	return AllocationRecord{ID: id.At(now), CreatedAt: now, Params: p, Result: r}
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordAllocation(AllocationRecord) error
	Close() error
}

// Open returns the journal described by cfg.
func Open(cfg config.JournalConfig) (Journal, error) {
	switch cfg.Type {
	case "csv":
		return NewCSV(cfg.TradesFile, cfg.AllocationsFile)
	case "sqlite":
		return NewSQLite(cfg.DBPath)
	case "none", "":
		return Nop{}, nil
	}
	return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
}

// Nop discards every record.
type Nop struct{}

func (Nop) RecordTrade(TradeRecord) error           { return nil }
func (Nop) RecordAllocation(AllocationRecord) error { return nil }
func (Nop) Close() error                            { return nil }
