package quiz

import (
	"math"
	"testing"
)

func TestDefaultBankShape(t *testing.T) {
	bank := DefaultBank()
	if len(bank) != 40 {
		t.Fatalf("expected 40 questions, got %d", len(bank))
	}
	for i, q := range bank {
		if len(q.Scores) != 6 {
			t.Fatalf("question %d: expected 6 options, got %d", i, len(q.Scores))
		}
		for j, score := range q.Scores {
			if score < 1 || score > 5 {
				t.Fatalf("question %d option %d: score %d out of range", i, j, score)
			}
		}
	}
}

// answerAll answers every question with the given option index.
func answerAll(t *testing.T, s Session, option int) Session {
	t.Helper()
	for i := 0; i < len(s.Bank); i++ {
		var errAnswer error
		s, errAnswer = s.Answer(option)
		if errAnswer != nil {
			t.Fatalf("answer question %d: %v", i, errAnswer)
		}
		s = s.Next()
	}
	return s
}

func TestSessionNavigationAndRevision(t *testing.T) {
	s := NewSession(DefaultBank())
	if s.Complete() {
		t.Fatal("fresh session must be incomplete")
	}
	if _, errScore := s.Score(); errScore != ErrIncomplete {
		t.Fatalf("expected ErrIncomplete, got %v", errScore)
	}

	// Prev at the start and Next at the end clamp.
	if s.Prev().Index != 0 {
		t.Fatal("expected Prev to clamp at the first question")
	}

	s, errAnswer := s.Answer(4)
	if errAnswer != nil {
		t.Fatalf("answer: %v", errAnswer)
	}
	// Going back and re-answering replaces the previous choice.
	s, errAnswer = s.Answer(0)
	if errAnswer != nil {
		t.Fatalf("re-answer: %v", errAnswer)
	}
	if s.Answers[0] != 0 {
		t.Fatalf("expected revised answer 0, got %d", s.Answers[0])
	}

	if _, errAnswer = s.Answer(6); errAnswer != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange for option 6, got %v", errAnswer)
	}
	if _, errAnswer = s.Answer(-1); errAnswer != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange for option -1, got %v", errAnswer)
	}

	last := answerAll(t, NewSession(DefaultBank()), 0)
	if last.Index != len(last.Bank)-1 {
		t.Fatalf("expected Next to clamp at the last question, got index %d", last.Index)
	}
	if !last.Complete() {
		t.Fatal("expected complete session")
	}
}

func TestScoreBoundsAndFootprint(t *testing.T) {
	best := answerAll(t, NewSession(DefaultBank()), 0)
	score, errScore := best.Score()
	if errScore != nil {
		t.Fatalf("score: %v", errScore)
	}
	if score != MinScore {
		t.Fatalf("expected best score %d, got %d", MinScore, score)
	}
	if fp := Footprint(score); math.Abs(fp-MinFootprint) > 1e-9 {
		t.Fatalf("expected footprint %.1f, got %f", MinFootprint, fp)
	}

	worst := answerAll(t, NewSession(DefaultBank()), 4)
	score, errScore = worst.Score()
	if errScore != nil {
		t.Fatalf("score: %v", errScore)
	}
	if score != MaxScore {
		t.Fatalf("expected worst score %d, got %d", MaxScore, score)
	}
	if fp := Footprint(score); math.Abs(fp-MaxFootprint) > 1e-9 {
		t.Fatalf("expected footprint %.1f, got %f", MaxFootprint, fp)
	}

	// Midpoint of the score range lands on the midpoint of the footprint range.
	if fp := Footprint((MinScore + MaxScore) / 2); math.Abs(fp-(MinFootprint+MaxFootprint)/2) > 1e-9 {
		t.Fatalf("expected midpoint footprint, got %f", fp)
	}
}

func TestImpactBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{MinScore, ImpactLow},
		{80, ImpactLow},
		{81, ImpactMedium},
		{140, ImpactMedium},
		{141, ImpactHigh},
		{MaxScore, ImpactHigh},
	}
	for _, tc := range cases {
		if got := Impact(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %q, got %q", tc.score, tc.want, got)
		}
	}
}

func TestRecommendationsPerLevel(t *testing.T) {
	low := Recommendations(60)
	medium := Recommendations(100)
	high := Recommendations(180)
	for name, list := range map[string][]string{"low": low, "medium": medium, "high": high} {
		if len(list) != 5 {
			t.Fatalf("%s: expected 5 recommendations, got %d", name, len(list))
		}
	}
	if low[0] == medium[0] || medium[0] == high[0] {
		t.Fatal("expected distinct advice per impact level")
	}
}
