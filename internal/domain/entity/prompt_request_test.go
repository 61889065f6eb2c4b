package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordLimitRangeClamp(t *testing.T) {
	r := DefaultWordLimitRange
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"absent uses default", 0, 300},
		{"below min", 10, 50},
		{"negative", -5, 50},
		{"above max", 5000, 2000},
		{"lower bound", 50, 50},
		{"upper bound", 2000, 2000},
		{"in range", 750, 750},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Clamp(tt.in))
		})
	}
}

func TestPromptRequestNormalize(t *testing.T) {
	req := &PromptRequest{
		Context:   "   ",
		Task:      "  Write a cover letter \n",
		Format:    "",
		Tone:      "friendly",
		Example:   "\t",
		WordLimit: 9999,
	}

	got := req.Normalize(DefaultWordLimitRange)

	assert.Equal(t, PromptRequest{
		Context:   PlaceholderNotSpecified,
		Task:      "Write a cover letter",
		Format:    PlaceholderNotSpecified,
		Tone:      "friendly",
		Example:   PlaceholderNotProvided,
		WordLimit: 2000,
	}, got)
	// 原值不变
	assert.Equal(t, "   ", req.Context)
	assert.Equal(t, 9999, req.WordLimit)
}

func TestPromptRequestHasTask(t *testing.T) {
	assert.False(t, (*PromptRequest)(nil).HasTask())
	assert.False(t, (&PromptRequest{Task: " \n\t "}).HasTask())
	assert.True(t, (&PromptRequest{Task: "summarize"}).HasTask())
}

func TestNormalizeNil(t *testing.T) {
	got := (*PromptRequest)(nil).Normalize(DefaultWordLimitRange)
	assert.Equal(t, 300, got.WordLimit)
	assert.Equal(t, PlaceholderNotProvided, got.Example)
	assert.Empty(t, got.Task)
}
