package models

// Record is one row of a manual backtest journal.
type Record struct {
	Date     string `json:"date"`
	Area     string `json:"area"`
	Peak     string `json:"peak"`
	Trend    string `json:"trend"`
	AvgTrend string `json:"avg_trend"`
	Rally    string `json:"rally"`
	Overview string `json:"overview"` // "Long 2", "Long 3", "Short 2", "Short 3" or free text
	Decision string `json:"decision"`
	SL       string `json:"sl"`
	TG       string `json:"tg"`
}

// AutomatedRecord is one row of an automated algo backtest.
type AutomatedRecord struct {
	Date       string `json:"date"`
	EntryTime  string `json:"entry_time"`
	ExitTime   string `json:"exit_time"`
	Direction  string `json:"direction"`
	EntryPrice string `json:"entry_price"`
	SL         string `json:"sl"`
	Target     string `json:"target"`
	RiskReward string `json:"risk_reward"`
	Result     string `json:"result"` // "Win", "Loss" or anything else, any case
}
