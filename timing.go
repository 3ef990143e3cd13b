package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// Below this speed, inter-character and inter-word spacing slows
	// down while characters keep a 20 WPM shape (Farnsworth timing).
	farnsworthCutoff = 20.0
)

var (
	ErrInvalidSpeed     = errors.New("invalid speed")
	ErrUnknownCharacter = errors.New("character not in morse alphabet")
)

// Speed holds the two rates of Farnsworth timing: WPM governs the
// inter-character and inter-word spacing, CWPM governs the dit and dah
// durations inside a character. CWPM is never below WPM.
type Speed struct {
	WPM  float64
	CWPM float64
}

// NewSpeed validates a speed configuration. A zero cwpm picks the
// default character speed, max(wpm, 20), per the ARRL Farnsworth
// convention of keeping characters crisp while spacing slows.
func NewSpeed(wpm, cwpm float64) (Speed, error) {
	if wpm <= 0 {
		return Speed{}, fmt.Errorf("%w: wpm %v must be positive", ErrInvalidSpeed, wpm)
	}

	if cwpm == 0 {
		cwpm = wpm
		if cwpm < farnsworthCutoff {
			cwpm = farnsworthCutoff
		}
	}

	if cwpm <= 0 {
		return Speed{}, fmt.Errorf("%w: cwpm %v must be positive", ErrInvalidSpeed, cwpm)
	}

	if cwpm < wpm {
		return Speed{}, fmt.Errorf("%w: cwpm %v slower than wpm %v", ErrInvalidSpeed, cwpm, wpm)
	}

	return Speed{WPM: wpm, CWPM: cwpm}, nil
}

// DitTime returns the dit duration in seconds at the character speed.
// WPM is determined by P-A-R-I-S, or 50 dit lengths: s/DIT = 1.2 / WPM.
func (s Speed) DitTime() float64 {
	return 1.2 / s.CWPM
}

// spaceUnit returns the Farnsworth spacing unit in seconds: the letter
// gap is 3 units and the word gap 7 units. Computed per the ARRL timing
// standard, https://www.arrl.org/files/file/Technology/x9004008.pdf.
// When CWPM == WPM this reduces to the plain dit time.
func (s Speed) spaceUnit() float64 {
	ta := (60.0*s.CWPM - 37.2*s.WPM) / (s.CWPM * s.WPM)
	return ta / 19.0
}

// LetterTime and WordTime return the inter-letter and inter-word gap
// durations in seconds.
func (s Speed) LetterTime() float64 { return 3 * s.spaceUnit() }
func (s Speed) WordTime() float64   { return 7 * s.spaceUnit() }

type ElementKind int

const (
	ToneElement ElementKind = iota
	SymbolGap
	LetterGap
	WordGap
)

// Element is a typed duration: an audible tone or one of the three
// silence gaps. Durations are in seconds.
type Element struct {
	Kind     ElementKind
	Duration float64
}

// ElementsFor converts text into the timed element sequence of its
// Morse code. Letter case is ignored. Runs of whitespace collapse into
// a single word gap; leading and trailing whitespace produce none.
// A character absent from the Morse table fails the whole conversion,
// a silently dropped character would corrupt training feedback.
func ElementsFor(text string, speed Speed) ([]Element, error) {
	dit := speed.DitTime()

	var elements []Element

	for wi, word := range strings.Fields(strings.ToUpper(text)) {
		if wi > 0 {
			elements = append(elements, Element{WordGap, speed.WordTime()})
		}

		for li, c := range word {
			if li > 0 {
				elements = append(elements, Element{LetterGap, speed.LetterTime()})
			}

			pattern, ok := morseCode[c]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, c)
			}

			for si, sym := range pattern {
				if si > 0 {
					elements = append(elements, Element{SymbolGap, dit})
				}

				switch sym {
				case '.':
					elements = append(elements, Element{ToneElement, dit})
				case '-':
					elements = append(elements, Element{ToneElement, 3 * dit})
				}
			}
		}
	}

	return elements, nil
}

// Encodable checks that every character of text is either whitespace
// (a word separator) or present in the Morse table.
func Encodable(text string) error {
	for _, c := range strings.ToUpper(text) {
		if unicode.IsSpace(c) {
			continue
		}
		if _, ok := morseCode[c]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCharacter, c)
		}
	}
	return nil
}
