package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dr. X", "dr-x"},
		{"Əli Həsənov", "eli-hesenov"},
		{"Gülşən Məmmədova", "gulsen-memmedova"},
		{"Доктор Иванов", "doktor-ivanov"},
		{"  --Cardiology & Surgery--  ", "cardiology-surgery"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeTruncates(t *testing.T) {
	got := Make(strings.Repeat("ab ", 100))

	assert.LessOrEqual(t, len(got), MaxLen)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("dr-x"))
	assert.True(t, Valid("clinic-2024"))
	assert.False(t, Valid("2024"))
	assert.False(t, Valid("Dr-X"))
	assert.False(t, Valid("-x"))
	assert.False(t, Valid("a--b"))
	assert.False(t, Valid(""))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("42"))
	assert.False(t, IsNumeric("dr-42"))
	assert.False(t, IsNumeric(""))
}
