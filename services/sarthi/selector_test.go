package sarthi

import (
	"strings"
	"testing"

	"astromarket/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "only whitespace", text: "  \t\n ", want: 0},
		{name: "single", text: "hello", want: 1},
		{name: "collapses runs of whitespace", text: "  my   career \n is\tstuck  ", want: 4},
		{name: "fifty", text: words(50), want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.text))
		})
	}
}

func TestCanSubmitBoundaries(t *testing.T) {
	for n := 0; n <= 52; n++ {
		sel := NewSelector()
		sel.ToggleCustom()
		require.NoError(t, sel.SetText(words(n)))
		want := n > 0 && n <= MaxCustomWords
		assert.Equal(t, want, sel.CanSubmit(), "words=%d", n)
	}
}

func TestSelectorStartsPredefined(t *testing.T) {
	sel := NewSelector()
	assert.Equal(t, ModePredefined, sel.Mode())
	assert.ErrorIs(t, sel.SetText("x"), ErrNotCustomMode)
	_, err := sel.Submit()
	assert.ErrorIs(t, err, ErrNotCustomMode)
	assert.False(t, sel.CanSubmit())
}

func TestSubmitTrimsDescription(t *testing.T) {
	sel := NewSelector()
	sel.ToggleCustom()
	require.NoError(t, sel.SetText("   Worried about my  job   "))

	got, err := sel.Submit()
	require.NoError(t, err)
	assert.Equal(t, CustomProblemTitle, got.Title)
	assert.Equal(t, "Worried about my  job", got.Description)
	assert.True(t, got.Custom)
}

func TestSubmitRejectsOverflow(t *testing.T) {
	sel := NewSelector()
	sel.ToggleCustom()
	require.NoError(t, sel.SetText(words(51)))
	_, err := sel.Submit()
	assert.ErrorIs(t, err, ErrCannotSubmit)
}

func TestBackReturnsToPredefinedAndDropsText(t *testing.T) {
	sel := NewSelector()
	sel.ToggleCustom()
	require.NoError(t, sel.SetText("some text"))

	sel.Back()
	assert.Equal(t, ModePredefined, sel.Mode())
	assert.Empty(t, sel.Text())

	sel.ToggleCustom()
	assert.Equal(t, 0, sel.WordCount())
}

func TestSelectPredefinedHasNoDescription(t *testing.T) {
	sel := NewSelector()
	got, err := sel.Select(models.Problem{ID: "debt", Title: "Unable to clear debts", Category: "Finance"})
	require.NoError(t, err)
	assert.Equal(t, "Unable to clear debts", got.Title)
	assert.Empty(t, got.Description)
	assert.False(t, got.Custom)

	sel.ToggleCustom()
	_, err = sel.Select(models.Problem{ID: "debt"})
	assert.ErrorIs(t, err, ErrNotPredefinedMode)
}
