package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestEntry_IsIncome(t *testing.T) {
	testTable := []struct {
		name   string
		kind   string
		result bool
	}{
		{name: "Lower case", kind: "income", result: true},
		{name: "Title case", kind: "Income", result: true},
		{name: "Upper case", kind: "INCOME", result: true},
		{name: "Expense", kind: "expense", result: false},
		{name: "Other label", kind: "Rent", result: false},
		{name: "Empty", kind: "", result: false},
		{name: "Padded", kind: " income", result: false},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			entry := NewEntry("2024-01-01", testCase.kind, decimal.NewFromInt(1))
			require.Equal(t, testCase.result, entry.IsIncome())
		})
	}
}

func TestEntry_Validate(t *testing.T) {
	require.NoError(t, NewEntry("2024-01-01", "Income", decimal.Zero).Validate())
	require.NoError(t, NewEntry("2024-01-01", "Income", decimal.RequireFromString("12.5")).Validate())

	err := NewEntry("2024-01-01", "Rent", decimal.NewFromInt(-1)).Validate()
	require.ErrorIs(t, err, ErrNegativeAmount)
}

func TestEntry_MarshalJSON(t *testing.T) {
	entry := NewEntry("2024-01-01", "Income", decimal.NewFromInt(1000))

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, `{"date":"2024-01-01","type":"Income","amount":1000}`, string(data))
}

func TestEntry_UnmarshalJSONAcceptsFractions(t *testing.T) {
	var entry Entry
	err := json.Unmarshal([]byte(`{"date":"2024-01-02","type":"Rent","amount":500.25}`), &entry)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, "2024-01-02", entry.Date)
	require.Equal(t, "Rent", entry.Kind)
	require.True(t, decimal.RequireFromString("500.25").Equal(entry.Amount))
}

func TestEntry_UnmarshalJSONRejectsMalformed(t *testing.T) {
	testTable := []struct {
		name string
		data string
	}{
		{name: "Empty object", data: `{}`},
		{name: "Null", data: `null`},
		{name: "Missing date", data: `{"type":"Rent","amount":1}`},
		{name: "Null type", data: `{"date":"2024-01-01","type":null,"amount":1}`},
		{name: "Quoted amount", data: `{"date":"2024-01-01","type":"Rent","amount":"7"}`},
		{name: "Boolean amount", data: `{"date":"2024-01-01","type":"Rent","amount":false}`},
		{name: "Numeric type", data: `{"date":"2024-01-01","type":1,"amount":1}`},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			var entry Entry
			err := json.Unmarshal([]byte(testCase.data), &entry)
			require.ErrorIs(t, err, ErrMalformedEntry)
		})
	}
}

func TestEntry_UnmarshalJSONExponent(t *testing.T) {
	var entry Entry
	err := json.Unmarshal([]byte(`{"date":"2024-01-02","type":"Rent","amount":1e3}`), &entry)
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, decimal.NewFromInt(1000).Equal(entry.Amount))
}

func TestChartPoint_JSON(t *testing.T) {
	data, err := json.Marshal(ChartData{
		Income:  []ChartPoint{{Date: "2024-01-01", Amount: 1000}},
		Expense: []ChartPoint{},
	})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, `{"income":[["2024-01-01",1000]],"expense":[]}`, string(data))

	var chart ChartData
	if err = json.Unmarshal(data, &chart); err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []ChartPoint{{Date: "2024-01-01", Amount: 1000}}, chart.Income)
	require.Empty(t, chart.Expense)
}

func TestChartPoint_UnmarshalJSONWrongLength(t *testing.T) {
	var point ChartPoint
	err := json.Unmarshal([]byte(`["2024-01-01"]`), &point)
	require.Error(t, err)
}
