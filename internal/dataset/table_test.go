package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		wantErr bool
	}{
		{
			name:    "unique columns",
			columns: []string{"Reporting_Year", "Province", "Total_Release"},
		},
		{
			name:    "no columns",
			columns: nil,
		},
		{
			name:    "duplicate column",
			columns: []string{"Province", "Province"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := New(tt.columns)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.columns), table.NumColumns())
			assert.Equal(t, 0, table.NumRows())
		})
	}
}

func TestTable_AppendRowPadsAndTruncates(t *testing.T) {
	table, err := New([]string{"a", "b", "c"})
	require.NoError(t, err)

	table.AppendRow([]Value{Number(1)})
	table.AppendRow([]Value{Number(1), Number(2), Number(3), Number(4)})

	assert.Equal(t, 2, table.NumRows())
	assert.True(t, table.Value(0, "b").IsMissing())
	assert.True(t, table.Value(0, "c").IsMissing())
	assert.Equal(t, Number(3), table.Value(1, "c"))
}

func TestTable_NumericColumn(t *testing.T) {
	table, err := New([]string{"v"})
	require.NoError(t, err)
	table.AppendRow([]Value{Number(10)})
	table.AppendRow([]Value{Missing()})
	table.AppendRow([]Value{Text("n/a")})
	table.AppendRow([]Value{Number(20)})

	values, rows := table.NumericColumn("v")
	assert.Equal(t, []float64{10, 20}, values)
	assert.Equal(t, []int{0, 3}, rows)

	values, rows = table.NumericColumn("absent")
	assert.Nil(t, values)
	assert.Nil(t, rows)
}

func TestTable_Select(t *testing.T) {
	table, err := New([]string{"v"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		table.AppendRow([]Value{Number(float64(i))})
	}

	subset := table.Select([]int{4, 1, 99})
	assert.Equal(t, 2, subset.NumRows())
	assert.Equal(t, Number(4), subset.Value(0, "v"))
	assert.Equal(t, Number(1), subset.Value(1, "v"))

	// The source table is untouched.
	assert.Equal(t, 5, table.NumRows())
}

func TestTable_Equal(t *testing.T) {
	a, _ := New([]string{"x"})
	a.AppendRow([]Value{Text("hello")})

	b, _ := New([]string{"x"})
	b.AppendRow([]Value{Text("hello")})

	c, _ := New([]string{"x"})
	c.AppendRow([]Value{Text("other")})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
