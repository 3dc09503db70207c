package quiz

import (
	"errors"
	"testing"
)

func TestDefaultBank(t *testing.T) {
	q, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if q.Len() != 20 {
		t.Fatalf("len=%d", q.Len())
	}
	if q.Header() != "Question 1 of 20" {
		t.Fatalf("header=%q", q.Header())
	}
	if q.Visible() {
		t.Fatal("panel should start hidden")
	}
	if q.Current().Prompt == "" {
		t.Fatal("empty prompt")
	}
}

func TestNextWraps(t *testing.T) {
	q, err := New([]Question{
		{Prompt: "a", Choices: []string{"x"}},
		{Prompt: "b", Choices: []string{"x"}},
		{Prompt: "c", Choices: []string{"x"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{2, 3, 1, 2}
	for _, w := range want {
		q.Next()
		if q.Index() != w {
			t.Fatalf("index=%d want %d", q.Index(), w)
		}
	}
	if q.Current().Prompt != "b" {
		t.Fatalf("prompt=%q", q.Current().Prompt)
	}
}

func TestRevealResetsOnNext(t *testing.T) {
	q, _ := New([]Question{{Prompt: "a", Choices: []string{"x"}}})
	q.Reveal()
	if !q.Revealed() {
		t.Fatal("expected revealed")
	}
	q.Next()
	if q.Revealed() || q.Index() != 1 {
		t.Fatalf("revealed=%v index=%d", q.Revealed(), q.Index())
	}
}

func TestToggle(t *testing.T) {
	q, _ := Default()
	q.Toggle()
	if !q.Visible() {
		t.Fatal("expected visible")
	}
	q.Toggle()
	if q.Visible() {
		t.Fatal("expected hidden")
	}
}

func TestValidation(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err=%v", err)
	}
	if _, err := New([]Question{{Prompt: "a", Choices: []string{"x"}, Answer: 1}}); err == nil {
		t.Fatal("expected answer range error")
	}
	if _, err := Parse([]byte("{")); err == nil {
		t.Fatal("expected parse error")
	}
}
