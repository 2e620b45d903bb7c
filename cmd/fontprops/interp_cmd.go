package main

import (
	"strings"

	"github.com/npillmayer/fontprops/core/resolve"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/text/unicode/runenames"
)

func runInterpCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceLevel(flags)
	family := strings.TrimSpace(flagString(flags, "family"))
	if family == "" {
		fatalf("--family is required")
	}
	cp, err := resolve.ParseCodePoint(flagString(flags, "cp"))
	if err != nil {
		fatalf("%v", err)
	}
	model := loadModel(args, flags)
	explain := flagBool(flags, "explain")
	decision, trace := resolve.Resolve(model, family, cp, explain)
	if explain {
		pterm.Printfln("# Trace for %s cp=%#x", family, cp)
		for _, t := range trace {
			pterm.Println("- " + t)
		}
		pterm.Println()
	}
	printDecision(decision)
}

func printDecision(d resolve.Decision) {
	pterm.Printfln("decision: %s", d.Status)
	pterm.Printfln(" family: %s", d.Family)
	pterm.Printfln(" codepoint: %#x '%s'", d.CodePoint, runenames.Name(d.CodePoint))
	switch d.Status {
	case resolve.Matched:
		pterm.Printfln(" font: %s", d.FontName)
		pterm.Printfln(" charset: %s", d.Charset)
		if d.NeedConverted {
			pterm.Printfln(" needsConverted: yes")
			pterm.Printfln(" converterClass: %s", d.ConverterClass)
		} else {
			pterm.Printfln(" needsConverted: no")
		}
	case resolve.Excluded, resolve.Fallback:
		pterm.Printfln(" reason: %s", d.Reason)
		pterm.Printfln(" fallback.defaultChar: %d", d.DefaultChar)
	}
}
