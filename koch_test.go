package main

import (
	"errors"
	"strings"
	"testing"
)

func TestKochAlphabet(t *testing.T) {
	tests := []struct {
		n       int
		want    string
		wantErr bool
	}{
		{n: 0, wantErr: true},
		{n: -1, wantErr: true},
		{n: 41, wantErr: true},
		{n: 1, want: "K"},
		{n: 2, want: "KM"},
		{n: 40, want: kochOrder},
	}

	for _, tc := range tests {
		got, err := KochAlphabet(tc.n)
		if tc.wantErr {
			if !errors.Is(err, ErrAlphabetSize) {
				t.Fatalf("n=%d: want ErrAlphabetSize, got %v", tc.n, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("n=%d: %v", tc.n, err)
		}
		if string(got) != tc.want {
			t.Fatalf("n=%d: got %q, want %q", tc.n, string(got), tc.want)
		}
	}
}

func TestNewSessionValidation(t *testing.T) {
	if _, err := NewSession(nil, 10); !errors.Is(err, ErrAlphabetSize) {
		t.Errorf("empty alphabet: got %v", err)
	}
	if _, err := NewSession([]rune("KM"), 0); err == nil {
		t.Error("zero count accepted")
	}
	if _, err := NewSession([]rune("K#"), 10); !errors.Is(err, ErrUnknownCharacter) {
		t.Errorf("unencodable alphabet: got %v", err)
	}
}

func TestSessionSingleCharacter(t *testing.T) {
	for run := 0; run < 50; run++ {
		s, err := NewSession([]rune{'K'}, 10)
		if err != nil {
			t.Fatal(err)
		}

		text, err := s.Generate()
		if err != nil {
			t.Fatal(err)
		}

		for _, c := range text {
			if c != 'K' && c != ' ' {
				t.Fatalf("run %d: unexpected character %q in %q", run, c, text)
			}
		}
	}
}

func TestSessionFairness(t *testing.T) {
	counts := map[rune]int{}

	for run := 0; run < 1000; run++ {
		s, err := NewSession([]rune("KM"), 10)
		if err != nil {
			t.Fatal(err)
		}

		text, err := s.Generate()
		if err != nil {
			t.Fatal(err)
		}

		for _, c := range text {
			if c == ' ' {
				continue
			}
			if c != 'K' && c != 'M' {
				t.Fatalf("run %d: character %q outside alphabet in %q", run, c, text)
			}
			counts[c]++
		}
	}

	if counts['K'] == 0 || counts['M'] == 0 {
		t.Fatalf("draws not covering the alphabet: %v", counts)
	}
}

func TestSessionWordLengths(t *testing.T) {
	s, err := NewSession([]rune("KM"), 40)
	if err != nil {
		t.Fatal(err)
	}

	text, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	words := strings.Fields(text)

	total := 0
	for i, w := range words {
		total += len(w)

		if len(w) > maxWordLen {
			t.Errorf("word %d %q longer than %d", i, w, maxWordLen)
		}
		if len(w) < minWordLen && i != len(words)-1 {
			t.Errorf("word %d %q shorter than %d", i, w, minWordLen)
		}
	}

	if total != 40 {
		t.Fatalf("drew %d characters, want 40", total)
	}
}

func TestSessionStateMachine(t *testing.T) {
	s, err := NewSession([]rune("KM"), 10)
	if err != nil {
		t.Fatal(err)
	}

	// Revealing or marking played before generating is illegal.
	if _, err := s.Reveal(); !errors.Is(err, ErrSessionState) {
		t.Fatalf("reveal before generate: got %v", err)
	}
	if err := s.MarkPlayed(); !errors.Is(err, ErrSessionState) {
		t.Fatalf("played before generate: got %v", err)
	}

	text, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	// A session never regenerates its text mid-run.
	if _, err := s.Generate(); !errors.Is(err, ErrSessionState) {
		t.Fatalf("second generate: got %v", err)
	}

	if _, err := s.Reveal(); !errors.Is(err, ErrSessionState) {
		t.Fatalf("reveal before playback: got %v", err)
	}

	if err := s.MarkPlayed(); err != nil {
		t.Fatal(err)
	}

	revealed, err := s.Reveal()
	if err != nil {
		t.Fatal(err)
	}
	if revealed != text {
		t.Fatalf("revealed %q, played %q", revealed, text)
	}

	if _, err := s.Reveal(); !errors.Is(err, ErrSessionState) {
		t.Fatalf("second reveal: got %v", err)
	}
}
