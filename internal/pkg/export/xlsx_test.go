package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX_RoundTrip(t *testing.T) {
	data, err := XLSX(Table{
		Sheet:   "Sales",
		Title:   "Sales 2024-01-09 to 2024-01-15",
		Headers: []string{"Page", "Total"},
		Rows: [][]interface{}{
			{"page-a", 120.5},
			{"page-b", 80.0},
		},
		Footer: []interface{}{"Total", 200.5},
	}, Table{
		Sheet:   "Teams",
		Headers: []string{"Team", "Total"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Sales", "Teams"}, f.GetSheetList())

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Sales 2024-01-09 to 2024-01-15", rows[0][0])
	assert.Equal(t, []string{"Page", "Total"}, rows[2])
	assert.Equal(t, []string{"page-a", "120.5"}, rows[3])
	assert.Equal(t, []string{"Total", "200.5"}, rows[5])

	teamRows, err := f.GetRows("Teams")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Team", "Total"}}, teamRows)
}

func TestXLSX_NoTables(t *testing.T) {
	_, err := XLSX()
	assert.Error(t, err)
}
