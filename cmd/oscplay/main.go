// Command oscplay plays the multi-shape oscillator through the default
// audio output, or prints a trace analysis of one shape.
//
// Usage:
//
//	oscplay [flags]
//
// Examples:
//
//	oscplay -bank mesh -index 2 -pitch 1800
//	oscplay -bank wt -morph 3000 -seconds 5
//	oscplay -bank func -info
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-osc/measure/trace"
	"github.com/cwbudde/algo-osc/osc/engine"
	"github.com/cwbudde/algo-osc/osc/shape"
)

const sampleRate = 48000

func main() {
	var (
		bankName = flag.String("bank", "func", "bank: func, mesh or wt")
		index    = flag.Int("index", 0, "shape index within the bank")
		pitch    = flag.Int("pitch", 1600, "pitch control (0-4095)")
		grow     = flag.Int("grow", 4095, "grow control (0-4096)")
		morph    = flag.Int("morph", 2048, "rotation/morph control (2048 = static)")
		seconds  = flag.Int("seconds", 2, "playback duration")
		info     = flag.Bool("info", false, "print a trace analysis instead of playing")
	)
	flag.Parse()

	bank, err := parseBank(*bankName)
	if err != nil {
		fatal(err)
	}

	if *info {
		if err := printInfo(bank, *index, int32(*grow), int32(*morph)); err != nil {
			fatal(err)
		}
		return
	}

	eng, err := engine.New()
	if err != nil {
		fatal(err)
	}
	if err := eng.Select(bank, *index); err != nil {
		fatal(err)
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		fatal(err)
	}
	<-ready

	s := &streamer{
		eng: eng,
		in: engine.Inputs{
			Pitch: int32(*pitch),
			Mod1:  int32(*grow), Alt1: 2048,
			Mod2: int32(*morph), Alt2: 2048,
		},
	}
	player := ctx.NewPlayer(s)
	player.Play()
	time.Sleep(time.Duration(*seconds) * time.Second)
	if err := player.Close(); err != nil {
		fatal(err)
	}
}

// streamer feeds engine ticks to oto as interleaved stereo float32.
type streamer struct {
	eng *engine.Engine
	in  engine.Inputs
}

func (s *streamer) Read(p []byte) (int, error) {
	n := len(p) / 8 * 8
	for i := 0; i+8 <= n; i += 8 {
		out := s.eng.Tick(s.in)
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(float32(out.Left)/2048))
		binary.LittleEndian.PutUint32(p[i+4:], math.Float32bits(float32(out.Right)/2048))
	}
	return n, nil
}

func parseBank(name string) (engine.Bank, error) {
	switch name {
	case "func":
		return engine.BankFunc, nil
	case "mesh":
		return engine.BankMesh, nil
	case "wt":
		return engine.BankWT, nil
	}
	return 0, fmt.Errorf("unknown bank %q (want func, mesh or wt)", name)
}

func shapeFor(bank engine.Bank, index int) (shape.Oscillator, error) {
	banks := map[engine.Bank][]func() shape.Oscillator{
		engine.BankFunc: {func() shape.Oscillator { return shape.NewYinYang() }},
		engine.BankMesh: {
			func() shape.Oscillator { return shape.NewCube() },
			func() shape.Oscillator { return shape.NewCone() },
			func() shape.Oscillator { return shape.NewIcosphere() },
		},
		engine.BankWT: {
			func() shape.Oscillator { return shape.NewCalligraphy() },
			func() shape.Oscillator { return shape.NewRibbon() },
			func() shape.Oscillator { return shape.NewOutline() },
		},
	}
	ctors := banks[bank]
	if index < 0 || index >= len(ctors) {
		return nil, fmt.Errorf("index %d out of range for bank %v", index, bank)
	}
	return ctors[index](), nil
}

func printInfo(bank engine.Bank, index int, grow, morph int32) error {
	o, err := shapeFor(bank, index)
	if err != nil {
		return err
	}

	left, right, err := trace.Render(o, 4096, grow, morph)
	if err != nil {
		return err
	}

	channels := []struct {
		name string
		data []float64
	}{{"left", left}, {"right", right}}
	for _, ch := range channels {
		res, err := trace.Analyze(ch.data)
		if err != nil {
			return err
		}
		fmt.Printf("%s/%d %s: peak %.3f dc %+.4f fundamental bin %d\n",
			bank, index, ch.name, res.Peak, res.DCOffset, res.FundamentalBin)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "oscplay:", err)
	os.Exit(1)
}
