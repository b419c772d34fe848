package selection

import (
	"testing"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_ToggleAndSelected(t *testing.T) {
	s := New([]string{"CiscoA", "CiscoB", "webex"})
	assert.Empty(t, s.Selected())

	invalid := s.ToggleNumbers([]int{1, 3, 7, 0})
	assert.Equal(t, []int{7, 0}, invalid)
	assert.Equal(t, []string{"CiscoA", "webex"}, s.Selected())

	s.ToggleNumbers([]int{1})
	assert.Equal(t, []string{"webex"}, s.Selected())
	assert.True(t, s.IsSelected(2))
	assert.False(t, s.IsSelected(0))
	assert.False(t, s.IsSelected(99))
}

func TestSet_AllNone(t *testing.T) {
	s := NewAllSelected([]string{"a", "b"})
	assert.Equal(t, 2, s.Count())

	s.SelectNone()
	assert.Equal(t, 0, s.Count())

	s.SelectAll()
	assert.Equal(t, []string{"a", "b"}, s.Selected())
}

func TestSet_AddIsAdditive(t *testing.T) {
	s := New([]string{"Cisco", "common", "m365", "webex"})
	s.ToggleNumbers([]int{4})

	matched := s.Add("Cisco", "common", "licensing")
	assert.Equal(t, 2, matched)
	assert.Equal(t, []string{"Cisco", "common", "webex"}, s.Selected())

	// Adding an already-selected name never deselects it.
	s.Add("webex")
	assert.True(t, s.Contains("webex"))
}

func TestSet_ItemsAreCopied(t *testing.T) {
	items := []string{"a", "b"}
	s := New(items)
	items[0] = "z"

	assert.Equal(t, []string{"a", "b"}, s.Items())
	assert.Equal(t, 2, s.Len())
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{input: "1", want: []int{1}},
		{input: "1,3,5", want: []int{1, 3, 5}},
		{input: " 2 , 4 ", want: []int{2, 4}},
		{input: "1-3", want: []int{1, 2, 3}},
		{input: "1-3,7", want: []int{1, 2, 3, 7}},
		{input: "3-1", want: nil},
		{input: "1-9999999999", want: []int{1, 2, 3, 4, 5}},
		{input: "4-9223372036854775807", want: []int{4, 5}},
		{input: "0-2", want: []int{1, 2}},
		{input: "7-9", want: []int{7}},
		{input: "9", want: []int{9}},
		{input: "a", wantErr: true},
		{input: "1,,2", wantErr: true},
		{input: "1-x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNumbers(tt.input, 5)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
