package main

import (
	"errors"
	"fmt"
)

// Morse code mapping, character to dit/dah pattern
var morseCode = map[rune]string{
	// letters
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..",
	'E': ".", 'F': "..-.", 'G': "--.", 'H': "....",
	'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.",
	'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",

	// digits
	'1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..",
	'9': "----.", '0': "-----",

	// punctuations
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '/': "-..-.",
}

// Koch method character ordering: new characters are introduced in this
// order, easiest to distinguish first.
// http://www.codepractice.com/learning.html
const kochOrder = "KMRSUAPTLOWI.NJEF0Y,VG5/Q9ZH38B?427C1D6X"

var ErrAlphabetSize = errors.New("alphabet size out of range")

// KochAlphabet returns the first n characters of the Koch ordering.
func KochAlphabet(n int) ([]rune, error) {
	full := []rune(kochOrder)

	if n < 1 || n > len(full) {
		return nil, fmt.Errorf("%w: %d (valid range 1-%d)", ErrAlphabetSize, n, len(full))
	}

	return full[:n], nil
}
