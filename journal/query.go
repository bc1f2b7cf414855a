package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/riskcalc/risk"
)

const tradeColumns = `id, created_at, position, account_balance, risk_percentage, entry_price, stop_loss, take_profit,
	risk_amount, position_size, potential_profit, risk_reward_ratio, stop_loss_distance, take_profit_distance`

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (TradeRecord, error) {
	var (
		rec TradeRecord
		pos string
	)
	p, r := &rec.Params, &rec.Result
	err := s.Scan(
		&rec.ID, &rec.CreatedAt, &pos,
		&p.AccountBalance, &p.RiskPercentage, &p.EntryPrice, &p.StopLoss, &p.TakeProfit,
		&r.RiskAmount, &r.PositionSize, &r.PotentialProfit, &r.RiskRewardRatio,
		&r.StopLossDistance, &r.TakeProfitDistance,
	)
	if err != nil {
		return TradeRecord{}, err
	}
	if p.Position, err = risk.ParsePositionType(pos); err != nil {
		return TradeRecord{}, err
	}
	return rec, nil
}

// GetTrade returns a single trade calculation by ID.
func (j *SQLite) GetTrade(recID string) (TradeRecord, error) {
	row := j.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, recID)
	rec, err := scanTrade(row)
	if errors.Is(err, sql.ErrNoRows) {
		return TradeRecord{}, fmt.Errorf("trade %q: %w", recID, ErrNotFound)
	}
	return rec, err
}

// ListTradesBetween returns trade calculations made within [start, end).
func (j *SQLite) ListTradesBetween(start, end time.Time) ([]TradeRecord, error) {
	return j.queryTrades(`SELECT `+tradeColumns+` FROM trades
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at ASC, id ASC`, start.UTC(), end.UTC())
}

// RecentTrades returns up to limit trade calculations, newest first.
func (j *SQLite) RecentTrades(limit int) ([]TradeRecord, error) {
	return j.queryTrades(`SELECT `+tradeColumns+` FROM trades
		ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}

func (j *SQLite) queryTrades(q string, args ...any) ([]TradeRecord, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllocation returns a single allocation calculation by ID.
func (j *SQLite) GetAllocation(recID string) (AllocationRecord, error) {
	var rec AllocationRecord
	p, r := &rec.Params, &rec.Result

	err := j.db.QueryRow(`
		SELECT id, created_at, starting_capital, risk_tolerance, daily_max_loss, weekly_max_loss,
		       share_price, num_shares, profit_target_per_share,
		       share_size, risk_per_trade, daily_max_loss_amount, weekly_max_loss_amount,
		       total_potential_profit, total_potential_loss, risk_reward_ratio,
		       trades_per_day, trades_per_week, risk_percent_of_capital
		FROM allocations
		WHERE id = ?`, recID).Scan(
		&rec.ID, &rec.CreatedAt,
		&p.StartingCapital, &p.RiskTolerance, &p.DailyMaxLoss, &p.WeeklyMaxLoss,
		&p.SharePrice, &p.NumShares, &p.ProfitTargetPerShare,
		&r.ShareSize, &r.RiskPerTrade, &r.DailyMaxLossAmount, &r.WeeklyMaxLossAmount,
		&r.TotalPotentialProfit, &r.TotalPotentialLoss, &r.RiskRewardRatio,
		&r.TradesPerDay, &r.TradesPerWeek, &r.RiskPercentOfCapital,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return AllocationRecord{}, fmt.Errorf("allocation %q: %w", recID, ErrNotFound)
	}
	if err != nil {
		return AllocationRecord{}, err
	}
	return rec, nil
}
