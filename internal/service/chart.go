package service

import (
	"github.com/chucky-1/budgetbook/internal/model"
)

// Chart splits entries into the income series and the expense series.
// Everything that is not income is an expense. The stored order is kept
// and nothing is summed, two entries on the same date give two points.
func Chart(entries []model.Entry) model.ChartData {
	chart := model.ChartData{
		Income:  []model.ChartPoint{},
		Expense: []model.ChartPoint{},
	}
	for _, entry := range entries {
		point := model.ChartPoint{
			Date:   entry.Date,
			Amount: entry.Amount.InexactFloat64(),
		}
		if entry.IsIncome() {
			chart.Income = append(chart.Income, point)
			continue
		}
		chart.Expense = append(chart.Expense, point)
	}
	return chart
}
