package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

// Practice words are between 3 and 6 characters, the last word of a run
// may be shorter to exhaust the character count exactly.
const (
	minWordLen = 3
	maxWordLen = 6
)

var ErrSessionState = errors.New("invalid session state")

type sessionState int

const (
	sessionConfigured sessionState = iota
	sessionGenerated
	sessionAwaitingRecall
	sessionRevealed
)

// Session is one practice run: generate a random text over the
// unlocked alphabet, play it while withholding the plaintext, then
// reveal it on request so the user can check their copy. The revealed
// text is the stored text, never re-derived, so it is always exactly
// what was played.
type Session struct {
	alphabet []rune
	count    int

	state sessionState
	text  string
	rng   *rand.Rand
}

// NewSession configures a run drawing count characters from the given
// alphabet. Each session owns its randomness source, concurrent
// sessions never bias each other.
func NewSession(alphabet []rune, count int) (*Session, error) {
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrAlphabetSize)
	}

	if count < 1 {
		return nil, fmt.Errorf("invalid character count: %d", count)
	}

	if err := Encodable(string(alphabet)); err != nil {
		return nil, err
	}

	return &Session{
		alphabet: alphabet,
		count:    count,
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}, nil
}

// Generate draws the practice text: count characters independently and
// uniformly from the alphabet, grouped into words.
func (s *Session) Generate() (string, error) {
	if s.state != sessionConfigured {
		return "", fmt.Errorf("%w: already generated", ErrSessionState)
	}

	var words []string

	for remaining := s.count; remaining > 0; {
		n := minWordLen + s.rng.Intn(maxWordLen-minWordLen+1)
		if n > remaining {
			n = remaining
		}

		var word strings.Builder
		for i := 0; i < n; i++ {
			word.WriteRune(s.alphabet[s.rng.Intn(len(s.alphabet))])
		}

		words = append(words, word.String())
		remaining -= n
	}

	s.text = strings.Join(words, " ")
	s.state = sessionGenerated

	return s.text, nil
}

// MarkPlayed records that the generated text has been synthesized and
// delivered; the session now waits for the user's recall.
func (s *Session) MarkPlayed() error {
	if s.state != sessionGenerated {
		return fmt.Errorf("%w: nothing played yet", ErrSessionState)
	}

	s.state = sessionAwaitingRecall
	return nil
}

// Reveal discloses the text that was played. Only valid once the
// session is awaiting recall; revealing before playback is an error.
func (s *Session) Reveal() (string, error) {
	if s.state != sessionAwaitingRecall {
		return "", fmt.Errorf("%w: nothing to reveal", ErrSessionState)
	}

	s.state = sessionRevealed
	return s.text, nil
}
