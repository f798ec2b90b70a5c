package validation

import (
	"strings"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"trims whitespace", "  hello world  ", "hello world"},
		{"escapes angle brackets", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"escapes ampersand", "fish & chips", "fish &amp; chips"},
		{"escapes quotes", `say "hi" to 'them'`, "say &#34;hi&#34; to &#39;them&#39;"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeText(tc.input); got != tc.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"", "user@example.com", "first.last@sub.domain.org"}
	for _, e := range valid {
		if !ValidEmail(e) {
			t.Errorf("Expected %q to be valid", e)
		}
	}

	invalid := []string{"not-an-email", "missing@tld", "@example.com", "user @example.com"}
	for _, e := range invalid {
		if ValidEmail(e) {
			t.Errorf("Expected %q to be invalid", e)
		}
	}
}

func TestValidateSubmission_TextBounds(t *testing.T) {
	// Trimmed length under 10 is rejected even when raw length is not
	errs := ValidateSubmission(SubmissionInput{Type: "feedback", Text: "   short    "})
	if len(errs) != 1 || errs[0] != "Text must be at least 10 characters" {
		t.Errorf("Expected short-text error, got %v", errs)
	}

	errs = ValidateSubmission(SubmissionInput{Type: "idea", Text: strings.Repeat("a", 501)})
	if len(errs) != 1 || errs[0] != "Text must not exceed 500 characters" {
		t.Errorf("Expected long-text error, got %v", errs)
	}

	errs = ValidateSubmission(SubmissionInput{Type: "idea", Text: "this text is long enough"})
	if len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
}

func TestValidateSubmission_TextBoundsAreCharacters(t *testing.T) {
	// 6 characters, 24 bytes: still under the 10-character minimum
	errs := ValidateSubmission(SubmissionInput{Type: "idea", Text: "👍👍👍👍👍👍"})
	if len(errs) != 1 || errs[0] != "Text must be at least 10 characters" {
		t.Errorf("Expected short-text error for multibyte input, got %v", errs)
	}

	// 500 characters, 1500 bytes: exactly at the maximum
	errs = ValidateSubmission(SubmissionInput{Type: "idea", Text: strings.Repeat("ไ", 500)})
	if len(errs) != 0 {
		t.Errorf("Expected 500 multibyte characters to be accepted, got %v", errs)
	}

	errs = ValidateSubmission(SubmissionInput{Type: "idea", Text: strings.Repeat("ไ", 501)})
	if len(errs) != 1 || errs[0] != "Text must not exceed 500 characters" {
		t.Errorf("Expected long-text error at 501 characters, got %v", errs)
	}
}

func TestValidateSubmission_RelatedEventID(t *testing.T) {
	base := SubmissionInput{Type: "idea", Text: "plenty of characters here"}

	in := base
	in.RelatedEventID = "not-a-uuid"
	errs := ValidateSubmission(in)
	if len(errs) != 1 || errs[0] != "Invalid related event ID" {
		t.Errorf("Expected related event ID error, got %v", errs)
	}

	in.RelatedEventID = "0f6a1c9e-4a7b-4f7e-9b1a-2c3d4e5f6a7b"
	if errs := ValidateSubmission(in); len(errs) != 0 {
		t.Errorf("Expected well-formed uuid to be accepted, got %v", errs)
	}
}

func TestValidateSubmission_AccumulatesAllErrors(t *testing.T) {
	errs := ValidateSubmission(SubmissionInput{
		Type:           "rant",
		Text:           "short",
		SubmitterEmail: "bad-email",
	})

	if len(errs) != 3 {
		t.Fatalf("Expected 3 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateSubmission_OptionalEmail(t *testing.T) {
	errs := ValidateSubmission(SubmissionInput{Type: "feedback", Text: "plenty of characters here"})
	if len(errs) != 0 {
		t.Errorf("Expected empty email to be accepted, got %v", errs)
	}
}

func TestValidateCollaboration(t *testing.T) {
	errs := ValidateCollaboration(CollaborationInput{})
	if len(errs) != 3 {
		t.Fatalf("Expected 3 errors for empty payload, got %d: %v", len(errs), errs)
	}

	errs = ValidateCollaboration(CollaborationInput{
		ContactName: "Ada",
		Email:       "ada@example.com",
		Offerings:   []string{"venue"},
	})
	if len(errs) != 0 {
		t.Errorf("Expected valid payload, got %v", errs)
	}

	errs = ValidateCollaboration(CollaborationInput{
		ContactName:       "Ada",
		Email:             "ada@example.com",
		Offerings:         []string{"venue"},
		CollaborationType: "forever",
	})
	if len(errs) != 1 || errs[0] != "Invalid collaboration type" {
		t.Errorf("Expected collaboration type error, got %v", errs)
	}
}

func TestValidateEvent(t *testing.T) {
	errs := ValidateEvent(EventInput{})
	if len(errs) != 3 {
		t.Fatalf("Expected 3 errors for empty payload, got %d: %v", len(errs), errs)
	}

	errs = ValidateEvent(EventInput{Title: "Meetup", Date: "2026-03-14", EventType: "talk"})
	if len(errs) != 0 {
		t.Errorf("Expected valid payload, got %v", errs)
	}

	errs = ValidateEvent(EventInput{Title: "Meetup", Date: "14/03/2026", EventType: "talk"})
	if len(errs) != 1 || errs[0] != "Valid date is required" {
		t.Errorf("Expected date error, got %v", errs)
	}

	errs = ValidateEvent(EventInput{
		Title:       "Meetup",
		Date:        "2026-03-14",
		EventType:   "talk",
		Description: strings.Repeat("d", 501),
	})
	if len(errs) != 1 {
		t.Errorf("Expected description length error, got %v", errs)
	}
}

func TestValidVoteType(t *testing.T) {
	if !ValidVoteType("upvote") || !ValidVoteType("downvote") {
		t.Error("Expected upvote/downvote to be valid")
	}
	if ValidVoteType("sideways") || ValidVoteType("") {
		t.Error("Expected unknown vote types to be invalid")
	}
}
