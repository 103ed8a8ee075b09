package table

import "backtest-pdf-report/internal/models"

// ManualRecords normalizes t against ManualSchema and returns one Record per row.
func ManualRecords(t Table) []models.Record {
	n := Normalize(t, ManualSchema)
	records := make([]models.Record, n.Len())
	for i, row := range n.Rows {
		records[i] = models.Record{
			Date:     row["Date"],
			Area:     row["Area"],
			Peak:     row["Peak"],
			Trend:    row["Trend"],
			AvgTrend: row["AvgTrend"],
			Rally:    row["Rally"],
			Overview: row["Overview"],
			Decision: row["Decision"],
			SL:       row["SL"],
			TG:       row["TG"],
		}
	}
	return records
}

// AutomatedRecords normalizes t against AutomatedSchema and returns one AutomatedRecord per row.
func AutomatedRecords(t Table) []models.AutomatedRecord {
	n := Normalize(t, AutomatedSchema)
	records := make([]models.AutomatedRecord, n.Len())
	for i, row := range n.Rows {
		records[i] = models.AutomatedRecord{
			Date:       row["Date"],
			EntryTime:  row["EntryTime"],
			ExitTime:   row["ExitTime"],
			Direction:  row["Direction"],
			EntryPrice: row["EntryPrice"],
			SL:         row["SL"],
			Target:     row["Target"],
			RiskReward: row["RiskReward"],
			Result:     row["Result"],
		}
	}
	return records
}
