package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/complaint-service/internal/domain"
)

func TestSLADeadline(t *testing.T) {
	submittedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		slaHours int
		want     time.Time
	}{
		{"24 hour window", 24, submittedAt.Add(24 * time.Hour)},
		{"12 hour window", 12, submittedAt.Add(12 * time.Hour)},
		{"72 hour window", 72, submittedAt.Add(72 * time.Hour)},
		{"zero falls back to default", 0, submittedAt.Add(48 * time.Hour)},
		{"negative falls back to default", -5, submittedAt.Add(48 * time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			category := &domain.Category{ID: 1, Name: "Test", SLAHours: tc.slaHours}
			got := SLADeadline(category, submittedAt)
			assert.True(t, got.Equal(tc.want), "got %v want %v", got, tc.want)
		})
	}
}

func TestSLADeadlineFixedAtSubmission(t *testing.T) {
	category := &domain.Category{ID: 1, Name: "Test", SLAHours: 24}
	submittedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	first := SLADeadline(category, submittedAt)
	second := SLADeadline(category, submittedAt)
	assert.True(t, first.Equal(second))
}
