package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

var (
	tradeHeader = []string{
		"id", "created_at", "position", "account_balance", "risk_percentage",
		"entry_price", "stop_loss", "take_profit",
		"risk_amount", "position_size", "potential_profit", "risk_reward_ratio",
		"stop_loss_distance", "take_profit_distance",
	}
	allocationHeader = []string{
		"id", "created_at", "starting_capital", "risk_tolerance", "daily_max_loss", "weekly_max_loss",
		"share_price", "num_shares", "profit_target_per_share",
		"share_size", "risk_per_trade", "daily_max_loss_amount", "weekly_max_loss_amount",
		"total_potential_profit", "total_potential_loss", "risk_reward_ratio",
		"trades_per_day", "trades_per_week", "risk_percent_of_capital",
	}
)

// CSVJournal appends records to two CSV files. Existing files are kept and
// appended to; new files get a header row.
type CSVJournal struct {
	mu          sync.Mutex
	trades      *csv.Writer
	allocations *csv.Writer
	tf, af      *os.File
}

func NewCSV(tradesPath, allocationsPath string) (*CSVJournal, error) {
	tf, tw, err := openCSV(tradesPath, tradeHeader)
	if err != nil {
		return nil, err
	}
	af, aw, err := openCSV(allocationsPath, allocationHeader)
	if err != nil {
		_ = tf.Close()
		return nil, err
	}
	return &CSVJournal{trades: tw, allocations: aw, tf: tf, af: af}, nil
}

func openCSV(path string, header []string) (*os.File, *csv.Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			_ = f.Close()
			return nil, nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, nil, err
		}
	}
	return f, w, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	p, r := t.Params, t.Result
	return j.write(j.trades, []string{
		t.ID,
		t.CreatedAt.UTC().Format(time.RFC3339Nano),
		p.Position.String(),
		f(p.AccountBalance),
		f(p.RiskPercentage),
		f(p.EntryPrice),
		f(p.StopLoss),
		f(p.TakeProfit),
		f(r.RiskAmount),
		f(r.PositionSize),
		f(r.PotentialProfit),
		f(r.RiskRewardRatio),
		f(r.StopLossDistance),
		f(r.TakeProfitDistance),
	})
}

func (j *CSVJournal) RecordAllocation(a AllocationRecord) error {
	p, r := a.Params, a.Result
	return j.write(j.allocations, []string{
		a.ID,
		a.CreatedAt.UTC().Format(time.RFC3339Nano),
		f(p.StartingCapital),
		f(p.RiskTolerance),
		f(p.DailyMaxLoss),
		f(p.WeeklyMaxLoss),
		f(p.SharePrice),
		f(p.NumShares),
		f(p.ProfitTargetPerShare),
		f(r.ShareSize),
		f(r.RiskPerTrade),
		f(r.DailyMaxLossAmount),
		f(r.WeeklyMaxLossAmount),
		f(r.TotalPotentialProfit),
		f(r.TotalPotentialLoss),
		f(r.RiskRewardRatio),
		strconv.Itoa(r.TradesPerDay),
		strconv.Itoa(r.TradesPerWeek),
		f(r.RiskPercentOfCapital),
	})
}

func (j *CSVJournal) write(w *csv.Writer, row []string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (j *CSVJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	j.allocations.Flush()
	if err := j.allocations.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.af.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
