package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestToCSV(t *testing.T) {
	table := Table{
		Headers: []string{"Email", "Active"},
		Rows: [][]string{
			{"a@example.com", "true"},
			{"b@example.com", "false"},
		},
	}

	data, err := ToCSV(table)
	require.NoError(t, err)

	expected := "Email,Active\na@example.com,true\nb@example.com,false\n"
	assert.Equal(t, expected, string(data))
}

func TestToCSV_QuotesSpecialCharacters(t *testing.T) {
	table := Table{
		Headers: []string{"Name", "Message"},
		Rows: [][]string{
			{"Doe, Jane", "said \"hello\""},
		},
	}

	data, err := ToCSV(table)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"Doe, Jane"`)
	assert.Contains(t, string(data), `"said ""hello"""`)
}

func TestToCSV_EmptyRowsReturnsErrNoData(t *testing.T) {
	table := Table{Headers: []string{"Email"}}

	_, err := ToCSV(table)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestToCSV_MismatchedRowWidth(t *testing.T) {
	table := Table{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"only-one"}},
	}

	_, err := ToCSV(table)
	assert.Error(t, err)
}

func TestToCSV_Deterministic(t *testing.T) {
	table := Table{
		Headers: []string{"Email"},
		Rows:    [][]string{{"a@example.com"}, {"b@example.com"}},
	}

	first, err := ToCSV(table)
	require.NoError(t, err)
	second, err := ToCSV(table)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestToXLSX(t *testing.T) {
	table := Table{
		Headers: []string{"Email", "Active"},
		Rows: [][]string{
			{"a@example.com", "true"},
		},
	}

	data, err := ToXLSX(table, "Subscribers")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Subscribers", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Email", header)

	cell, err := f.GetCellValue("Subscribers", "A2")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", cell)
}

func TestToXLSX_EmptyRowsReturnsErrNoData(t *testing.T) {
	table := Table{Headers: []string{"Email"}}

	_, err := ToXLSX(table, "Subscribers")
	assert.ErrorIs(t, err, ErrNoData)
}
