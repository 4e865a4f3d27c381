package triage

import "testing"

func TestClassifyBookingBeatsSymptom(t *testing.T) {
	// Overlapping vocabularies: a booking request that mentions chest
	// pain must still reach the appointment flow.
	got := Classify("I have chest pain, can I book an appointment?")
	if got != IntentBooking {
		t.Fatalf("Classify = %q, want %q", got, IntentBooking)
	}
}

func TestClassifySlotSelectionNeedsDigit(t *testing.T) {
	if got := Classify("I'll take slot 3"); got != IntentSlotSelection {
		t.Fatalf("Classify = %q, want %q", got, IntentSlotSelection)
	}
	// "choose" without any digit is not a selection.
	if got := Classify("hard to choose"); got == IntentSlotSelection {
		t.Fatalf("Classify = %q, want not slot selection", got)
	}
}

func TestClassifySymptom(t *testing.T) {
	if got := Classify("I've been feeling dizzy since this morning"); got != IntentSymptom {
		t.Fatalf("Classify = %q, want %q", got, IntentSymptom)
	}
}

func TestClassifyNone(t *testing.T) {
	if got := Classify("what a lovely day"); got != IntentNone {
		t.Fatalf("Classify = %q, want %q", got, IntentNone)
	}
}

func TestConfirmationExactMatchOnly(t *testing.T) {
	cases := []struct {
		in   string
		want Answer
	}{
		{"yes", AnswerYes},
		{"Yes!", AnswerYes},
		{" okay. ", AnswerYes},
		{"no", AnswerNo},
		{"Nope", AnswerNo},
		{"not okay", AnswerNo},
		{"yesterday I felt fine", AnswerNone},
		{"noway", AnswerNone},
		{"yes please book slot 2", AnswerNone},
	}
	for _, c := range cases {
		if got := Confirmation(c.in); got != c.want {
			t.Fatalf("Confirmation(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestContainsAffirmativeWordBoundary(t *testing.T) {
	if !ContainsAffirmative("sure, book it") {
		t.Fatalf("expected %q to contain an affirmative", "sure, book it")
	}
	if !ContainsAffirmative("yes please book it") {
		t.Fatalf("expected %q to contain an affirmative", "yes please book it")
	}
	// "yes" inside "yesterday" must not count.
	if ContainsAffirmative("yesterday was rough") {
		t.Fatalf("did not expect %q to contain an affirmative", "yesterday was rough")
	}
}

func TestContainsNegative(t *testing.T) {
	if !ContainsNegative("no, cancel that") {
		t.Fatalf("expected a negative match")
	}
	if ContainsNegative("nothing hurts") {
		t.Fatalf("did not expect %q to contain a negative", "nothing hurts")
	}
}

func TestExtractSlotNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"slot 3", 3, true},
		{"SLOT #12", 12, true},
		{"I'll take number 5 please", 5, true},
		{"book the 2nd one at 10", 2, true},
		{"no numbers here", 0, false},
	}
	for _, c := range cases {
		got, ok := ExtractSlotNumber(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ExtractSlotNumber(%q) = %d,%v want %d,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestClassifyReplySeriousWinsTies(t *testing.T) {
	reply := "Your vitals look stable, but chest pain means you should go to the emergency room."
	if got := ClassifyReply(reply); got != SeveritySerious {
		t.Fatalf("ClassifyReply = %q, want %q", got, SeveritySerious)
	}
}

func TestClassifyReplyMild(t *testing.T) {
	reply := "That sounds mild. Rest, drink water, and monitor how you feel."
	if got := ClassifyReply(reply); got != SeverityMild {
		t.Fatalf("ClassifyReply = %q, want %q", got, SeverityMild)
	}
}

func TestClassifyReplyNone(t *testing.T) {
	if got := ClassifyReply("You had oatmeal for breakfast."); got != SeverityNone {
		t.Fatalf("ClassifyReply = %q, want %q", got, SeverityNone)
	}
}
