package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectionDefaults(t *testing.T) {
	sel := NewSelection(42)

	assert.Equal(t, int64(42), sel.UserID)
	assert.Equal(t, DefaultBasePrice, sel.BasePrice)
	assert.Equal(t, DefaultParticipantCount, sel.ParticipantCount)
	assert.Empty(t, sel.DiscardedCategories)
	assert.Nil(t, sel.ExperienceDate)
}

func TestToggleDiscard(t *testing.T) {
	t.Run("toggle on then off", func(t *testing.T) {
		sel := NewSelection(1)

		assert.True(t, sel.ToggleDiscard(CategorySports))
		assert.True(t, sel.HasDiscarded(CategorySports))

		assert.True(t, sel.ToggleDiscard(CategorySports))
		assert.False(t, sel.HasDiscarded(CategorySports))
		assert.Empty(t, sel.DiscardedCategories)
	})

	t.Run("fourth discard is silently ignored", func(t *testing.T) {
		sel := NewSelection(1)
		sel.ToggleDiscard(CategoryMusic)
		sel.ToggleDiscard(CategoryCulture)
		sel.ToggleDiscard(CategorySports)

		assert.False(t, sel.ToggleDiscard(CategoryNightlife))
		assert.Len(t, sel.DiscardedCategories, MaxDiscardedCategories)
		assert.False(t, sel.HasDiscarded(CategoryNightlife))
	})

	t.Run("removal works at the cap", func(t *testing.T) {
		sel := NewSelection(1)
		sel.ToggleDiscard(CategoryMusic)
		sel.ToggleDiscard(CategoryCulture)
		sel.ToggleDiscard(CategorySports)

		assert.True(t, sel.ToggleDiscard(CategoryCulture))
		assert.Len(t, sel.DiscardedCategories, 2)
		assert.True(t, sel.ToggleDiscard(CategoryNightlife))
	})
}

func TestSelectionValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	submittable := func() *Selection {
		date := now.AddDate(0, 0, MinAdvanceDays)
		sel := NewSelection(1)
		sel.City = "Madrid"
		sel.TimePreference = TimePreferenceNight
		sel.BasePrice = 40
		sel.ParticipantCount = 2
		sel.ExperienceDate = &date
		return sel
	}

	t.Run("complete selection is submittable", func(t *testing.T) {
		sel := submittable()
		require.Empty(t, sel.Validate(now))
		assert.True(t, sel.IsSubmittable(now))
	})

	t.Run("fresh selection collects missing fields", func(t *testing.T) {
		sel := NewSelection(1)
		errs := sel.Validate(now)

		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.Field)
		}
		assert.Contains(t, fields, "city")
		assert.Contains(t, fields, "timePreference")
		assert.Contains(t, fields, "experienceDate")
		assert.False(t, sel.IsSubmittable(now))
	})

	t.Run("date less than seven days ahead", func(t *testing.T) {
		sel := submittable()
		date := now.AddDate(0, 0, MinAdvanceDays-1)
		sel.ExperienceDate = &date

		errs := sel.Validate(now)
		require.Len(t, errs, 1)
		assert.Equal(t, "experienceDate", errs[0].Field)
	})

	t.Run("date exactly seven days ahead passes", func(t *testing.T) {
		sel := submittable()
		date := now.AddDate(0, 0, MinAdvanceDays)
		sel.ExperienceDate = &date

		assert.Empty(t, sel.Validate(now))
	})

	t.Run("zero participants block submission", func(t *testing.T) {
		sel := submittable()
		sel.ParticipantCount = 0

		errs := sel.Validate(now)
		require.Len(t, errs, 1)
		assert.Equal(t, "participantCount", errs[0].Field)
	})

	t.Run("notes over the limit", func(t *testing.T) {
		sel := submittable()
		notes := strings.Repeat("a", MaxNotesLength+1)
		sel.Notes = &notes

		errs := sel.Validate(now)
		require.Len(t, errs, 1)
		assert.Equal(t, "notes", errs[0].Field)
	})
}

func TestIsDateFarEnough(t *testing.T) {
	now := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)

	// Сравниваются только даты: время суток не влияет
	assert.True(t, IsDateFarEnough(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateFarEnough(time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC), now))
}
