// Command synthplay renders a short demo patch to a WAV file and
// optionally plays it on the default audio device.
//
// Usage:
//
//	synthplay [flags]
//
// The patch is an additive sawtooth playing through a resonant-free
// lowpass sweep, shaped by an ADSR envelope and split to stereo.
//
// Examples:
//
//	synthplay -freq 110 -seconds 3 -out bass.wav
//	synthplay -play
//	synthplay -oversample 4 -rate 44100
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/synth"
)

func main() {
	rate := flag.Int("rate", 48000, "output sample rate in Hz")
	freq := flag.Float64("freq", 220, "fundamental frequency in Hz")
	seconds := flag.Float64("seconds", 2, "length of the rendered clip")
	oversample := flag.Int("oversample", 2, "graph oversampling factor")
	outPath := flag.String("out", "synth.wav", "output WAV path (empty to skip)")
	play := flag.Bool("play", false, "play the clip on the default audio device")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: synthplay [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a demo synth patch to WAV and optionally plays it.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *seconds <= 0 || *rate <= 0 || *freq <= 0 {
		fmt.Fprintln(os.Stderr, "synthplay: rate, freq and seconds must be > 0")
		os.Exit(2)
	}

	buf := render(*rate, *freq, *seconds, *oversample)

	if *outPath != "" {
		if err := writeWAV(*outPath, buf); err != nil {
			fmt.Fprintf(os.Stderr, "synthplay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%.2fs at %d Hz)\n", *outPath, *seconds, *rate)
	}

	if *play {
		if err := playBuffer(buf); err != nil {
			fmt.Fprintf(os.Stderr, "synthplay: %v\n", err)
			os.Exit(1)
		}
	}
}

// render builds the patch and pulls seconds worth of interleaved stereo.
func render(rate int, freq, seconds float64, oversample int) *audio.FloatBuffer {
	osc := synth.NewAdditiveSynth()
	osc.Fundamental.SetValue(freq)
	osc.SetStandardHarmonicSeries(24)
	osc.SetAmplitudes(synth.PresetSaw)
	osc.PruneLowAmplitudeHarmonics(0.005)

	lp := synth.NewFilter(synth.LowPass)
	lp.Cutoff.SetValue(6 * freq)

	amp := synth.NewMultiplier()
	env := synth.NewEnvelope()
	env.A.SetValue(0.02)
	env.D.SetValue(0.3)
	env.S.SetValue(0.6)
	env.R.SetValue(0.4)
	synth.ConnectParam(env, &amp.Amount)

	split := synth.NewSplitter()
	synth.Chain(osc, lp, amp, split)

	out := synth.NewStereoBufferOutput(float64(rate), core.WithOversampling(oversample))
	synth.Connect(split, out.Left)
	synth.Connect(split, out.Right)

	// Hold the gate for the body of the clip, then release for the tail.
	release := math.Min(0.4, seconds/2)
	env.Attack()
	body := out.RenderSeconds(seconds - release)
	env.Release()
	tail := out.RenderSeconds(release)

	body.Data = append(body.Data, tail.Data...)
	return body
}

// writeWAV encodes an interleaved stereo float buffer as 16-bit PCM.
func writeWAV(path string, buf *audio.FloatBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, buf.Format.SampleRate, 16, buf.Format.NumChannels, 1)

	ints := &audio.IntBuffer{
		Format:         buf.Format,
		SourceBitDepth: 16,
		Data:           make([]int, len(buf.Data)),
	}
	for i, v := range buf.Data {
		ints.Data[i] = int(math.Round(math.Max(-1, math.Min(1, v)) * 32767))
	}

	if err := enc.Write(ints); err != nil {
		return err
	}
	return enc.Close()
}

// playBuffer streams the clip to the default device as float32 LE.
func playBuffer(buf *audio.FloatBuffer) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   buf.Format.SampleRate,
		ChannelCount: buf.Format.NumChannels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready

	pcm := new(bytes.Buffer)
	for _, v := range buf.Data {
		if err := binary.Write(pcm, binary.LittleEndian, float32(v)); err != nil {
			return err
		}
	}

	player := ctx.NewPlayer(pcm)
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}
