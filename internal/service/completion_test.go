package service

import (
	"context"
	"fmt"
	"testing"

	"smartedybot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCompletionService_Reply(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		mockAnswer string
		mockError  error
		expected   string
	}{
		{
			name:       "answer is trimmed",
			input:      "Привет",
			mockAnswer: "  Здравствуйте! Чем помочь?\n",
			expected:   "Здравствуйте! Чем помочь?",
		},
		{
			name:       "empty input passed through",
			input:      "",
			mockAnswer: "ok",
			expected:   "ok",
		},
		{
			name:      "provider failure is interpolated",
			input:     "hi",
			mockError: fmt.Errorf("429 rate limit exceeded"),
			expected:  "Произошла ошибка: 429 rate limit exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := new(testutil.MockCompleter)
			completer.On("Complete", mock.Anything, tt.input).Return(tt.mockAnswer, tt.mockError)

			service := NewCompletionService(completer, testutil.NewTestLogger())

			assert.Equal(t, tt.expected, service.Reply(context.Background(), tt.input))
			completer.AssertExpectations(t)
		})
	}
}

func TestCompletionService_ReplyAfterFailure(t *testing.T) {
	completer := new(testutil.MockCompleter)
	completer.On("Complete", mock.Anything, "first").Return("", fmt.Errorf("timeout")).Once()
	completer.On("Complete", mock.Anything, "second").Return("fine", nil).Once()

	service := NewCompletionService(completer, testutil.NewTestLogger())

	assert.Contains(t, service.Reply(context.Background(), "first"), "timeout")
	assert.Equal(t, "fine", service.Reply(context.Background(), "second"))
	completer.AssertExpectations(t)
}
