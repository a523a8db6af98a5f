package chat

import (
	"context"
	"strings"
	"testing"
)

func TestNewTutorDefaults(t *testing.T) {
	tu := NewTutor("key", "")
	if tu.model == "" {
		t.Error("model should default to something")
	}
	if len(tu.History()) != 0 {
		t.Error("fresh session should have no history")
	}
}

func TestSendWithoutKey(t *testing.T) {
	tu := NewTutor("", "")
	if _, err := tu.Send(context.Background(), "What is a heap?", nil); err == nil {
		t.Error("expected error without API key")
	}
}

func TestSendRejectsEmptyQuery(t *testing.T) {
	tu := NewTutor("key", "")
	if _, err := tu.Send(context.Background(), "", nil); err == nil {
		t.Error("expected error for empty question")
	}
}

func TestTutorPromptRules(t *testing.T) {
	// The formatting contract the frontend renderer depends on.
	for _, want := range []string{"O(N)", "code blocks", "LaTeX"} {
		if !strings.Contains(tutorSystemPrompt, want) {
			t.Errorf("tutor prompt lost the %q rule", want)
		}
	}
}
