package model

import (
	"encoding/json"
	"fmt"
)

// ChartPoint is a (date, amount) pair. It is encoded as a two element JSON array.
type ChartPoint struct {
	Date   string
	Amount float64
}

type ChartData struct {
	Income  []ChartPoint `json:"income"`
	Expense []ChartPoint `json:"expense"`
}

func (p ChartPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Date, p.Amount})
}

func (p *ChartPoint) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("chart point: expected 2 elements, got %d", len(pair))
	}
	if err := json.Unmarshal(pair[0], &p.Date); err != nil {
		return fmt.Errorf("chart point date: %w", err)
	}
	if err := json.Unmarshal(pair[1], &p.Amount); err != nil {
		return fmt.Errorf("chart point amount: %w", err)
	}
	return nil
}
