package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Value
	}{
		{name: "empty is missing", raw: "", want: Missing()},
		{name: "whitespace is missing", raw: "   ", want: Missing()},
		{name: "integer", raw: "2020", want: Number(2020)},
		{name: "float", raw: "12.5", want: Number(12.5)},
		{name: "thousands separator", raw: "1,234.5", want: Number(1234.5)},
		{name: "padded number", raw: " 42 ", want: Number(42)},
		{name: "text", raw: "ON", want: Text("ON")},
		{name: "padded text trims", raw: " Alberta ", want: Text("Alberta")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, ParseValue(tt.raw).Equal(tt.want))
		})
	}
}

func TestValue_Coerce(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want Value
	}{
		{name: "number passes through", in: Number(7), want: Number(7)},
		{name: "numeric text becomes number", in: Text("1998"), want: Number(1998)},
		{name: "unparsable text degrades to missing", in: Text("unknown"), want: Missing()},
		{name: "missing stays missing", in: Missing(), want: Missing()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.in.Coerce().Equal(tt.want))
		})
	}
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "", Missing().String())
	assert.Equal(t, "12.5", Number(12.5).String())
	assert.Equal(t, "2020", Number(2020).String())
	assert.Equal(t, "QC", Text("QC").String())
}

func TestValue_Float(t *testing.T) {
	f, ok := Number(3.5).Float()
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)

	_, ok = Text("3.5").Float()
	assert.False(t, ok)

	_, ok = Missing().Float()
	assert.False(t, ok)
}
