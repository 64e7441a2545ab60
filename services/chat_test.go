package services

import (
	"FeedbackGo/models"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReviewContext(t *testing.T) {
	records := []models.Review{
		{Rating: 5, Content: "Absolutely streamlined experience.", Summary: "Positive Experience"},
		{Rating: 2, Content: "Navigation is confusing.", Summary: "User Dissatisfaction"},
	}

	got := FormatReviewContext(records)
	want := `[5/5 stars]: "Absolutely streamlined experience." (Summary: Positive Experience)
[2/5 stars]: "Navigation is confusing." (Summary: User Dissatisfaction)`
	assert.Equal(t, want, got)
}

func TestFormatReviewContextEmpty(t *testing.T) {
	assert.Equal(t, "", FormatReviewContext(nil))
}

func TestFormatReviewContextCapsAtFifty(t *testing.T) {
	var records []models.Review
	for i := 0; i < 80; i++ {
		records = append(records, models.Review{
			Rating:  3,
			Content: fmt.Sprintf("review %d", i),
			Summary: "Mixed Feedback",
		})
	}

	got := FormatReviewContext(records)
	assert.Equal(t, 50, strings.Count(got, "[3/5 stars]"))
	assert.Contains(t, got, "review 49")
	assert.NotContains(t, got, "review 50")
}

func TestAnswerWithoutBackendUsesCannedParagraph(t *testing.T) {
	svc := NewInsightService(newOfflineGeneration())
	records := []models.Review{
		{Rating: 1, Content: "Crash on startup.", Summary: "User Dissatisfaction"},
	}

	got := svc.Answer(context.Background(), "What are the negative issues?", records)
	assert.Equal(t, QuestionFallback("What are the negative issues?"), got)
}

func TestAnswerDelegatesToBackend(t *testing.T) {
	svc := NewInsightService(newStubGeneration("Users mostly complain about navigation.", nil))

	got := svc.Answer(context.Background(), "What are the issues?", nil)
	assert.Equal(t, "Users mostly complain about navigation.", got)
}
