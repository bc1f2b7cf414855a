// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	position TEXT NOT NULL,
	account_balance REAL NOT NULL,
	risk_percentage REAL NOT NULL,
	entry_price REAL NOT NULL,
	stop_loss REAL NOT NULL,
	take_profit REAL NOT NULL,
	risk_amount REAL NOT NULL,
	position_size REAL NOT NULL,
	potential_profit REAL NOT NULL,
	risk_reward_ratio REAL NOT NULL,
	stop_loss_distance REAL NOT NULL,
	take_profit_distance REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_created_at ON trades(created_at);

CREATE TABLE IF NOT EXISTS allocations (
	id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	starting_capital REAL NOT NULL,
	risk_tolerance REAL NOT NULL,
	daily_max_loss REAL NOT NULL,
	weekly_max_loss REAL NOT NULL,
	share_price REAL NOT NULL,
	num_shares REAL NOT NULL,
	profit_target_per_share REAL NOT NULL,
	share_size REAL NOT NULL,
	risk_per_trade REAL NOT NULL,
	daily_max_loss_amount REAL NOT NULL,
	weekly_max_loss_amount REAL NOT NULL,
	total_potential_profit REAL NOT NULL,
	total_potential_loss REAL NOT NULL,
	risk_reward_ratio REAL NOT NULL,
	trades_per_day INTEGER NOT NULL,
	trades_per_week INTEGER NOT NULL,
	risk_percent_of_capital REAL NOT NULL
);
`
