package source

import "backtest-pdf-report/internal/table"

// DemoManual returns the sanitized two-row manual journal used by the demo command.
func DemoManual() table.Table {
	return table.FromRows(
		[]string{"Date", "Area", "Peak", "Trend", "AvgTrend", "Rally", "Overview", "Decision"},
		[]string{"2024-XX-01", "SignalA", "SignalA", "SignalB", "SignalC", "SignalD", "Long 2", ""},
		[]string{"2024-XX-02", "SignalB", "SignalA", "SignalB", "SignalC", "SignalD", "Short 2", ""},
	)
}

// DemoAutomated returns the sanitized two-row automated backtest used by the demo command.
// Risk and Reward arrive as separate columns and are carried through untouched.
func DemoAutomated() table.Table {
	return table.FromRows(
		[]string{"Date", "Entry Time", "Exit Time", "Direction", "Entry Price", "SL", "Target", "Risk", "Reward", "Result"},
		[]string{"2024-XX-01", "09:35", "09:58", "Short", "--", "--", "--", "10", "20", "Win"},
		[]string{"2024-XX-02", "10:10", "10:42", "Short", "--", "--", "--", "15", "30", "Win"},
	)
}
