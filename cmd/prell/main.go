package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/gramkit/prell/gdef"
	"github.com/gramkit/prell/ll1"
	"github.com/gramkit/prell/report"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() computes FIRST, FOLLOW and PREDICT sets for a context-free
// grammar. With a file argument the grammar definition is read from that
// file, analysed and pretty-printed; without one, an interactive CLI is
// started where users enter productions line by line and a blank line (or
// ":compute") runs the analysis. Results can additionally be persisted as
// a JSON document.
//
// Please refer to packages "ll1" and "gdef" for the grammar format and the
// analysis itself.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	jsonPath := flag.String("json", "", "Persist results as a JSON document at this path")
	start := flag.String("start", "", "Start symbol (default: head of the first production)")
	flag.Parse()
	level := tracing.TraceLevelFromString(*tlevel)
	for _, key := range []string{"prell.ll1", "prell.gdef", "prell.report"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	var opts []gdef.Option
	if *start != "" {
		opts = append(opts, gdef.Start(*start))
	}
	if flag.NArg() > 0 {
		runFile(flag.Arg(0), *jsonPath, opts)
		return
	}
	repl(*jsonPath, opts)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// runFile analyses a grammar definition file.
func runFile(path string, jsonPath string, opts []gdef.Option) {
	f, err := os.Open(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	g, err := gdef.Parse(name, f, opts...)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	analyse(g, jsonPath)
}

// analyse runs the fixed-point engines and hands the finished bundle to
// the output collaborators.
func analyse(g *ll1.Grammar, jsonPath string) {
	ga := ll1.Analysis(g)
	bundle := report.Build(ga)
	report.Print(bundle)
	if jsonPath != "" {
		if err := bundle.Save(jsonPath); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		pterm.Info.Println("Results written to " + jsonPath)
	}
}

// repl starts interactive mode: productions are collected line by line and
// analysed on a blank line or ":compute". ":reset" discards the collected
// productions, ctrl-D exits.
func repl(jsonPath string, opts []gdef.Option) {
	pterm.Info.Println("Welcome to prell")
	pterm.Info.Println("Enter productions like 'S -> A uno | ε'; a blank line computes")
	rl, err := readline.New("prell> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	var lines []string
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == ":reset":
			lines = nil
			pterm.Info.Println("Productions discarded")
		case line == ":quit":
			println("Good bye!")
			return
		case line == "" || line == ":compute":
			if len(lines) == 0 {
				continue
			}
			g, err := gdef.ParseString("REPL", strings.Join(lines, "\n"), opts...)
			if err != nil {
				pterm.Error.Println(err.Error())
				continue // keep the collected productions for fixing
			}
			analyse(g, jsonPath)
			lines = nil
		default:
			lines = append(lines, line)
		}
	}
	println("Good bye!")
}
