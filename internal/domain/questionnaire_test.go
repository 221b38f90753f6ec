package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestionnaireInitialState(t *testing.T) {
	q := NewQuestionnaire(7)

	assert.Equal(t, 0, q.Index)
	assert.Equal(t, CategoryMusic, q.CurrentCategory())
	assert.False(t, q.CanAdvance())
	assert.False(t, q.IsComplete())
}

func TestToggleOption(t *testing.T) {
	t.Run("toggle on then off", func(t *testing.T) {
		q := NewQuestionnaire(1)

		require.NoError(t, q.ToggleOption(CategoryMusic, "Conciertos"))
		assert.Equal(t, []string{"Conciertos"}, q.Selected(CategoryMusic))

		require.NoError(t, q.ToggleOption(CategoryMusic, "Conciertos"))
		assert.Empty(t, q.Selected(CategoryMusic))
	})

	t.Run("unknown option is rejected", func(t *testing.T) {
		q := NewQuestionnaire(1)

		err := q.ToggleOption(CategoryMusic, "Tapas")
		assert.ErrorIs(t, err, ErrUnknownOption)
		assert.Empty(t, q.Selected(CategoryMusic))
	})

	t.Run("no-preference clears other options", func(t *testing.T) {
		q := NewQuestionnaire(1)
		require.NoError(t, q.ToggleOption(CategoryMusic, "Conciertos"))
		require.NoError(t, q.ToggleOption(CategoryMusic, "Festivales"))

		require.NoError(t, q.ToggleOption(CategoryMusic, OptionNoPreference))
		assert.Equal(t, []string{OptionNoPreference}, q.Selected(CategoryMusic))
	})

	t.Run("regular option clears no-preference", func(t *testing.T) {
		q := NewQuestionnaire(1)
		require.NoError(t, q.ToggleOption(CategoryMusic, OptionNoPreference))

		require.NoError(t, q.ToggleOption(CategoryMusic, "Festivales"))
		assert.Equal(t, []string{"Festivales"}, q.Selected(CategoryMusic))
	})

	t.Run("no-preference toggles off like any option", func(t *testing.T) {
		q := NewQuestionnaire(1)
		require.NoError(t, q.ToggleOption(CategoryMusic, OptionNoPreference))

		require.NoError(t, q.ToggleOption(CategoryMusic, OptionNoPreference))
		assert.Empty(t, q.Selected(CategoryMusic))
	})
}

func TestAdvance(t *testing.T) {
	t.Run("blocked without a selection", func(t *testing.T) {
		q := NewQuestionnaire(1)

		err := q.Advance()
		assert.ErrorIs(t, err, ErrEmptySelection)
		assert.Equal(t, 0, q.Index)
	})

	t.Run("moves to the next question", func(t *testing.T) {
		q := NewQuestionnaire(1)
		require.NoError(t, q.ToggleOption(CategoryMusic, "Conciertos"))

		require.NoError(t, q.Advance())
		assert.Equal(t, 1, q.Index)
		assert.Equal(t, CategoryCulture, q.CurrentCategory())
	})

	t.Run("keeps index on the last question", func(t *testing.T) {
		q := NewQuestionnaire(1)
		q.Index = QuestionCount - 1
		require.NoError(t, q.ToggleOption(CategoryAdventure, "Escape rooms"))

		require.NoError(t, q.Advance())
		assert.Equal(t, QuestionCount-1, q.Index)
		assert.True(t, q.IsLast())
	})
}

func TestBack(t *testing.T) {
	q := NewQuestionnaire(1)
	require.NoError(t, q.ToggleOption(CategoryMusic, "Conciertos"))
	require.NoError(t, q.Advance())
	require.Equal(t, 1, q.Index)

	q.Back()
	assert.Equal(t, 0, q.Index)
	// Ответы сохраняются при возврате
	assert.Equal(t, []string{"Conciertos"}, q.Selected(CategoryMusic))

	// На первом вопросе возврат ничего не меняет
	q.Back()
	assert.Equal(t, 0, q.Index)
}

func TestIsComplete(t *testing.T) {
	q := NewQuestionnaire(1)

	for _, c := range AllCategories[:len(AllCategories)-1] {
		require.NoError(t, q.ToggleOption(c, OptionNoPreference))
	}
	assert.False(t, q.IsComplete())

	require.NoError(t, q.ToggleOption(CategoryAdventure, "Parques temáticos"))
	assert.True(t, q.IsComplete())
}

func TestOptionsFor(t *testing.T) {
	for _, c := range AllCategories {
		options := OptionsFor(c)
		require.NotEmpty(t, options)
		// OptionNoPreference всегда последний
		assert.Equal(t, OptionNoPreference, options[len(options)-1])

		for _, o := range options {
			assert.True(t, IsValidOption(c, o), "option %q in category %s", o, c)
		}
	}
}
