package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kzre/lincrack/crack"
)

const (
	colReset = "\033[0m"
	colBold  = "\033[1m"
	colRed   = "\033[31m"
	colGreen = "\033[32m"
	colBlue  = "\033[34m"
	colCyan  = "\033[36m"
)

var useColor = true

func main() {
	l := log.New(os.Stderr, "", 0)

	samplesArg := flag.String("samples", "", "three truncated outputs, comma or space separated")
	count := flag.Int("count", 10, "number of future outputs to predict (0 to skip prediction)")
	jsonOut := flag.Bool("json", false, "emit results as json")
	profileFile := flag.String("profile", "", "yaml file overriding modulus candidates and offset cap")
	demo := flag.String("demo", "", "generate samples from a known family (ansic, borland) instead of -samples")
	seed := flag.Uint("seed", 20250101, "seed for -demo")
	digits := flag.Int("digits", 6, "sample digit width for -demo")
	noColor := flag.Bool("no-color", false, "disable ansi colors")
	flag.Parse()

	useColor = !*noColor
	if *count < 0 {
		l.Fatal("-count must not be negative")
	}

	var samples crack.Samples
	var err error
	switch {
	case *demo != "":
		samples, err = crack.DemoSamples(*demo, uint32(*seed), *digits)
		if err != nil {
			l.Fatal(err)
		}
		fmt.Printf("Demo samples (%s): %d %d %d\n", *demo, samples[0], samples[1], samples[2])
	case *samplesArg != "":
		samples, err = parseSamples(*samplesArg)
		if err != nil {
			l.Fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}

	profile := crack.DefaultProfile()
	if *profileFile != "" {
		if profile, err = crack.LoadProfile(*profileFile); err != nil {
			l.Fatal(err)
		}
	}

	if !*jsonOut {
		banner()
		section("MODEL ANALYSIS", []string{"Evaluating linear generator hypotheses..."}, colBlue)
	}

	var models []crack.Model
	if m := crack.DetectLCGProfile(samples, profile); m != nil {
		models = append(models, m)
	}
	if m := crack.DetectAffine(samples); m != nil {
		models = append(models, m)
	}

	if len(models) == 0 {
		if *jsonOut {
			fmt.Println("[]")
		} else {
			section("ANALYSIS RESULT", []string{"No reversible linear model identified."}, colRed)
		}
		return
	}

	var results []crack.Result
	for _, m := range models {
		r := crack.Result{Model: m}
		if *count > 0 {
			if r.Future, err = m.Future(*count); err != nil {
				l.Fatal(err)
			}
		}
		results = append(results, r)
	}

	if *jsonOut {
		b, err := crack.ToJSON(results)
		if err != nil {
			l.Fatal(err)
		}
		os.Stdout.Write(b)
		return
	}

	for _, r := range results {
		section("REVERSIBLE MODEL IDENTIFIED", describe(r.Model), colGreen)
		if r.Future != nil {
			fmt.Println(paint("Future outputs:", colCyan))
			for i, v := range r.Future {
				fmt.Printf("+%d: %d\n", i+1, v)
			}
		}
	}
}

func parseSamples(raw string) (crack.Samples, error) {
	fields := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	values := make([]uint64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return crack.Samples{}, fmt.Errorf("sample %q: %v", f, err)
		}
		values = append(values, v)
	}
	return crack.NewSamples(values)
}

func describe(m crack.Model) []string {
	switch m := m.(type) {
	case *crack.LCGModel:
		return []string{
			"Model type       : LCG",
			fmt.Sprintf("Parameters       : a=%d c=%d m=%d", m.A, m.C, m.M),
			fmt.Sprintf("Truncation base  : %d", m.TruncMod),
			fmt.Sprintf("Recovered state  : %d", m.LastState),
		}
	case *crack.AffineModel:
		return []string{
			"Model type       : Affine counter",
			fmt.Sprintf("Parameters       : a=%d b=%d d=%d", m.A, m.B, m.D),
			fmt.Sprintf("Last output      : %d", m.LastOutput),
		}
	}
	return nil
}

func paint(s, col string) string {
	if !useColor {
		return s
	}
	return col + s + colReset
}

func banner() {
	fmt.Println(paint(`============================================================
                        lincrack
------------------------------------------------------------
        analysis of reversible linear generators
============================================================`, colBold))
}

func section(title string, lines []string, col string) {
	bar := "+" + strings.Repeat("-", 58)
	var b strings.Builder
	b.WriteString(bar + "\n")
	b.WriteString("| " + title + "\n")
	b.WriteString(bar + "\n")
	for _, line := range lines {
		b.WriteString("| " + line + "\n")
	}
	b.WriteString(bar)
	fmt.Println(paint(b.String(), col))
}
