package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	p, r := t.Params, t.Result
	_, err := j.db.Exec(`
		INSERT INTO trades
		(id, created_at, position, account_balance, risk_percentage, entry_price, stop_loss, take_profit,
		 risk_amount, position_size, potential_profit, risk_reward_ratio, stop_loss_distance, take_profit_distance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.CreatedAt, p.Position.String(), p.AccountBalance, p.RiskPercentage,
		p.EntryPrice, p.StopLoss, p.TakeProfit,
		r.RiskAmount, r.PositionSize, r.PotentialProfit, r.RiskRewardRatio,
		r.StopLossDistance, r.TakeProfitDistance,
	)
	return err
}

func (j *SQLite) RecordAllocation(a AllocationRecord) error {
	p, r := a.Params, a.Result
	_, err := j.db.Exec(`
		INSERT INTO allocations
		(id, created_at, starting_capital, risk_tolerance, daily_max_loss, weekly_max_loss,
		 share_price, num_shares, profit_target_per_share,
		 share_size, risk_per_trade, daily_max_loss_amount, weekly_max_loss_amount,
		 total_potential_profit, total_potential_loss, risk_reward_ratio,
		 trades_per_day, trades_per_week, risk_percent_of_capital)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.CreatedAt, p.StartingCapital, p.RiskTolerance, p.DailyMaxLoss, p.WeeklyMaxLoss,
		p.SharePrice, p.NumShares, p.ProfitTargetPerShare,
		r.ShareSize, r.RiskPerTrade, r.DailyMaxLossAmount, r.WeeklyMaxLossAmount,
		r.TotalPotentialProfit, r.TotalPotentialLoss, r.RiskRewardRatio,
		r.TradesPerDay, r.TradesPerWeek, r.RiskPercentOfCapital,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
