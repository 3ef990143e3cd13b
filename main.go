package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/gordonklaus/portaudio"
)

func main() {
	wpm := flag.Float64("wpm", 20, "overall words per minute")
	cwpm := flag.Float64("cwpm", 0, "character words per minute (0 = max(wpm, 20), Farnsworth)")
	freq := flag.Float64("freq", DefaultFrequency, "tone frequency (in Hz)")
	bandwidth := flag.Float64("bandwidth", 200, "audio bandwidth centered on the tone (in Hz)")
	amplitude := flag.Float64("amplitude", DefaultAmplitude, "tone amplitude (0.0-1.0)")
	rate := flag.Int("rate", DefaultSampleRate, "sample rate (in Hz)")
	file := flag.String("file", "", "save audio to a WAV file instead of playing")
	dev := flag.String("device", "", "output audio device (name prefix or index)")
	list := flag.Bool("list", false, "list audio devices")
	chars := flag.Int("chars", 1, "number of distinct characters to practise")
	length := flag.Int("length", 10, "length of practice message in characters")
	alphabet := flag.String("alphabet", "", "custom alphabet in place of the Koch ordering")
	intro := flag.Bool("intro", false, "play just the newest character to introduce it")
	forever := flag.Bool("forever", false, "loop the message forever (cannot be combined with -file)")

	flag.Parse()

	if *forever && *file != "" {
		log.Fatal("cannot write an infinitely looping audio stream to a file")
	}

	if *list {
		if err := portaudio.Initialize(); err != nil {
			log.Fatalf("initialize portaudio: %v", err)
		}
		defer portaudio.Terminate()

		l, err := ListAudioDevices()
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("Available output devices")
		for i, d := range l {
			fmt.Println("", i+1, d)
		}

		return
	}

	speed, err := NewSpeed(*wpm, *cwpm)
	if err != nil {
		log.Fatalf("speed: %v", err)
	}

	training, err := trainingAlphabet(*alphabet, *chars)
	if err != nil {
		log.Fatalf("alphabet: %v", err)
	}

	// Pick the message: explicit text, the newest character on its own
	// for an introduction, or a freshly drawn practice run.
	var session *Session
	var message string

	switch {
	case flag.NArg() > 0:
		message = strings.ToUpper(strings.Join(flag.Args(), " "))
		fmt.Println(message)

	case *intro:
		message = strings.Repeat(string(training[len(training)-1]), *length)
		fmt.Println(message)

	default:
		session, err = NewSession(training, *length)
		if err != nil {
			log.Fatalf("session: %v", err)
		}

		message, err = session.Generate()
		if err != nil {
			log.Fatalf("session: %v", err)
		}

		fmt.Printf("Testing characters (%v WPM/%v CWPM):\n%s\n",
			speed.WPM, speed.CWPM, string(training))
	}

	player, err := NewPlayer(speed, Tone{
		Frequency:  *freq,
		Amplitude:  *amplitude,
		SampleRate: *rate,
	}, *bandwidth)
	if err != nil {
		log.Fatalf("player: %v", err)
	}

	var sink Sink

	if *file != "" {
		f, err := os.Create(*file)
		if err != nil {
			log.Fatalf("output file: %v", err)
		}
		defer f.Close()

		sink = NewWavWriter(f, *rate)
	} else {
		if err := portaudio.Initialize(); err != nil {
			log.Fatalf("initialize portaudio: %v", err)
		}
		defer portaudio.Terminate()

		sink, err = NewAudioWriter(*dev, *rate)
		if err != nil {
			log.Fatalf("audio device: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *forever {
		fmt.Println("Hit ctrl-c to exit")
	}

	for {
		if err := player.Play(ctx, message, sink); err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Println()
				break
			}
			log.Fatalf("playback: %v", err)
		}

		if !*forever || ctx.Err() != nil {
			break
		}
	}

	if err := sink.Close(); err != nil {
		log.Fatalf("close output: %v", err)
	}

	// Reveal what was played, once the user confirms they are done
	// copying. Only meaningful for live practice runs.
	if session != nil && *file == "" {
		if err := session.MarkPlayed(); err != nil {
			log.Fatalf("session: %v", err)
		}

		fmt.Print("\nHit <enter> to see correct transcription...")
		bufio.NewReader(os.Stdin).ReadString('\n')

		text, err := session.Reveal()
		if err != nil {
			log.Fatalf("session: %v", err)
		}

		fmt.Println(strings.ToLower(text))
	}
}

// trainingAlphabet returns the first chars characters of either the
// custom alphabet or the Koch ordering.
func trainingAlphabet(custom string, chars int) ([]rune, error) {
	if custom == "" {
		return KochAlphabet(chars)
	}

	runes := []rune(strings.ToUpper(custom))
	if chars < 1 || chars > len(runes) {
		return nil, fmt.Errorf("%w: %d (custom alphabet has %d characters)",
			ErrAlphabetSize, chars, len(runes))
	}

	return runes[:chars], nil
}
