// Package quiz models the carbon-footprint quiz as a value object. The
// original client kept the question index, answers and running score in
// globals; here a Session is owned by its caller and every operation is a
// pure function of the session value, which is what makes the scoring
// testable server-side. Question and option wording is presentation and
// stays in the client; the bank here carries the scores that drive the
// footprint estimate.
package quiz

import (
	"errors"
	"fmt"
)

// Score-to-footprint calibration. A best-case sheet (all 1s) maps to 4 tons
// CO2/year, a worst-case sheet (all 5s) to 16 tons.
const (
	// MinScore is the best possible total score.
	MinScore = 40
	// MaxScore is the worst possible total score.
	MaxScore = 200
	// MinFootprint is the footprint mapped to MinScore, in tons CO2/year.
	MinFootprint = 4.0
	// MaxFootprint is the footprint mapped to MaxScore, in tons CO2/year.
	MaxFootprint = 16.0
	// CompletionPoints is the credit for finishing the quiz.
	CompletionPoints = 10
)

// Impact levels.
const (
	// ImpactLow covers scores up to 80 (roughly 4-7 tons/year).
	ImpactLow = "low"
	// ImpactMedium covers scores up to 140 (roughly 7-12 tons/year).
	ImpactMedium = "medium"
	// ImpactHigh covers everything above (12-16+ tons/year).
	ImpactHigh = "high"
)

// Session errors.
var (
	// ErrOutOfRange indicates a question or option index outside the bank.
	ErrOutOfRange = errors.New("index out of range")
	// ErrIncomplete indicates unanswered questions at scoring time.
	ErrIncomplete = errors.New("quiz incomplete")
)

// Question holds the per-option scores for one question. Scores run 1
// (lowest impact) to 5 (highest impact).
type Question struct {
	Section string
	Scores  []int
}

// DefaultBank returns the standard 40-question bank: six sections, six
// options per question, scored 1-5 with an alternate low-impact option.
func DefaultBank() []Question {
	sections := []struct {
		name  string
		count int
	}{
		{"energy", 6},
		{"waste", 6},
		{"water", 6},
		{"food", 6},
		{"travel", 6},
		{"lifestyle", 10},
	}
	var bank []Question
	for _, s := range sections {
		for i := 0; i < s.count; i++ {
			bank = append(bank, Question{
				Section: s.name,
				Scores:  []int{1, 2, 3, 4, 5, 2},
			})
		}
	}
	return bank
}

// Session is an in-progress quiz. The zero index is the first question;
// Answers holds the selected option index per question, -1 when unanswered.
type Session struct {
	Bank    []Question
	Index   int
	Answers []int
}

// NewSession starts a session over the given bank.
func NewSession(bank []Question) Session {
	answers := make([]int, len(bank))
	for i := range answers {
		answers[i] = -1
	}
	return Session{Bank: bank, Answers: answers}
}

// Answer records an option choice for the current question and returns the
// updated session.
func (s Session) Answer(option int) (Session, error) {
	if s.Index < 0 || s.Index >= len(s.Bank) {
		return s, ErrOutOfRange
	}
	if option < 0 || option >= len(s.Bank[s.Index].Scores) {
		return s, ErrOutOfRange
	}
	answers := append([]int(nil), s.Answers...)
	answers[s.Index] = option
	s.Answers = answers
	return s, nil
}

// Next advances to the following question when one exists.
func (s Session) Next() Session {
	if s.Index < len(s.Bank)-1 {
		s.Index++
	}
	return s
}

// Prev returns to the previous question when one exists.
func (s Session) Prev() Session {
	if s.Index > 0 {
		s.Index--
	}
	return s
}

// Complete reports whether every question has an answer.
func (s Session) Complete() bool {
	for _, a := range s.Answers {
		if a < 0 {
			return false
		}
	}
	return len(s.Answers) == len(s.Bank)
}

// Score sums the option scores for the recorded answers.
func (s Session) Score() (int, error) {
	if !s.Complete() {
		return 0, ErrIncomplete
	}
	total := 0
	for i, a := range s.Answers {
		if a >= len(s.Bank[i].Scores) {
			return 0, fmt.Errorf("quiz: answer %d: %w", i, ErrOutOfRange)
		}
		total += s.Bank[i].Scores[a]
	}
	return total, nil
}

// Footprint maps a total score onto the calibrated footprint range, in tons
// CO2 per year.
func Footprint(score int) float64 {
	return MinFootprint + float64(score-MinScore)/float64(MaxScore-MinScore)*(MaxFootprint-MinFootprint)
}

// Impact classifies a total score.
func Impact(score int) string {
	switch {
	case score <= 80:
		return ImpactLow
	case score <= 140:
		return ImpactMedium
	default:
		return ImpactHigh
	}
}

// Recommendations returns the advice list for a total score.
func Recommendations(score int) []string {
	switch Impact(score) {
	case ImpactLow:
		return []string{
			"Keep up your excellent eco-friendly habits!",
			"Share your knowledge with friends and family",
			"Consider carbon offsetting for remaining emissions",
			"Explore cutting-edge green technologies",
			"Become a sustainability advocate in your community",
		}
	case ImpactMedium:
		return []string{
			"Use public transport or bike more often",
			"Reduce meat consumption to 2-3 times per week",
			"Improve home insulation and use smart thermostats",
			"Eliminate single-use plastics completely",
			"Switch to LED bulbs and energy-efficient appliances",
		}
	default:
		return []string{
			"Switch to 100% renewable energy sources",
			"Reduce or eliminate air travel, choose local vacations",
			"Consider electric/hybrid vehicle or car-sharing",
			"Adopt plant-based diet or significantly reduce meat",
			"Major home efficiency upgrades (insulation, windows, HVAC)",
		}
	}
}
