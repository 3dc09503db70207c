// Package quiz holds the question bank shown in the overlay panel.
package quiz

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed questions.json
var bank []byte

var ErrEmpty = errors.New("quiz: no questions")

type Question struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Answer  int      `json:"answer"`
}

// Quiz cycles through questions one at a time. The panel starts hidden on
// question 1.
type Quiz struct {
	questions []Question
	current   int
	visible   bool
	revealed  bool
}

// Default returns a quiz over the embedded question bank.
func Default() (*Quiz, error) {
	return Parse(bank)
}

// Parse decodes a JSON array of questions.
func Parse(data []byte) (*Quiz, error) {
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("quiz: parse: %w", err)
	}
	return New(qs)
}

func New(qs []Question) (*Quiz, error) {
	if len(qs) == 0 {
		return nil, ErrEmpty
	}
	for i, q := range qs {
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			return nil, fmt.Errorf("quiz: question %d: answer %d out of range", i+1, q.Answer)
		}
	}
	return &Quiz{questions: qs, current: 1}, nil
}

func (q *Quiz) Len() int { return len(q.questions) }

// Index is the 1-based number of the current question.
func (q *Quiz) Index() int { return q.current }

func (q *Quiz) Current() Question { return q.questions[q.current-1] }

func (q *Quiz) Visible() bool { return q.visible }

func (q *Quiz) Toggle() { q.visible = !q.visible }

// Revealed reports whether the current answer is shown.
func (q *Quiz) Revealed() bool { return q.revealed }

func (q *Quiz) Reveal() { q.revealed = true }

// Next advances to the following question, wrapping from the last to the
// first, and hides the answer again.
func (q *Quiz) Next() {
	if q.current == len(q.questions) {
		q.current = 0
	}
	q.current++
	q.revealed = false
}

func (q *Quiz) Header() string {
	return fmt.Sprintf("Question %d of %d", q.current, len(q.questions))
}
