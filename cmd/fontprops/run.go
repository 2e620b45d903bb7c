package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fontprops/core"
	"github.com/npillmayer/fontprops/core/props"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// Exit codes: 0 no errors, 1 validation errors, 2 I/O or usage error.

// loadStatements reads and classifies the configuration file named by the
// command's file argument. An unreadable file terminates immediately.
func loadStatements(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) []props.Statement {
	path := strings.TrimSpace(args["file"].Value)
	if path == "" {
		fatalf("file path is required")
	}
	var opts []props.ScannerOption
	if flagBool(flags, "arith") {
		opts = append(opts, props.WithArithExpansion())
	}
	stmts, err := props.LoadFile(path, opts...)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	return stmts
}

// loadModel runs the full pipeline up to normalization. Any validation
// error refuses normalization and exits with status 1.
func loadModel(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) *props.Model {
	stmts := loadStatements(args, flags)
	report := props.Validate(stmts)
	if report.Fatal() {
		printDiagnostics(report, flagBool(flags, "no-warn"))
		os.Exit(1)
	}
	if !flagBool(flags, "no-warn") {
		printWarnings(report.Warnings)
	}
	model, err := props.Normalize(report)
	if err != nil {
		core.UserError(err)
		os.Exit(1)
	}
	return model
}

func printDiagnostics(report *props.Report, noWarn bool) {
	if len(report.Errors) > 0 {
		pterm.Error.Println("Errors:")
		for _, e := range report.Errors {
			fmt.Fprintf(os.Stderr, "- %s\n", e)
		}
	}
	if !noWarn {
		printWarnings(report.Warnings)
	}
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	pterm.Warning.Println("Warnings:")
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "- %s\n", w)
	}
}

func runCheckCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceLevel(flags)
	stmts := loadStatements(args, flags)
	report := props.Validate(stmts)
	printDiagnostics(report, flagBool(flags, "no-warn"))
	if report.Fatal() {
		os.Exit(1)
	}
	pterm.Success.Printfln("no errors, %d warning(s)", len(report.Warnings))
}

func runNormalizeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceLevel(flags)
	model := loadModel(args, flags)
	printModel(model)
}

// printModel renders the canonical model in a YAML-like layout, families
// and exclusion keys sorted by name.
func printModel(m *props.Model) {
	fmt.Println("families:")
	for _, family := range m.FamilyNames() {
		fmt.Printf("  %s:\n", family)
		for _, e := range m.Families[family] {
			fmt.Printf("    - index: %d\n", e.Index)
			fmt.Printf("      font: %q\n", e.FontName)
			fmt.Printf("      charset: %s\n", e.Charset)
			fmt.Printf("      needsConverted: %t\n", e.NeedConverted)
			if e.Charset == props.SymbolCharset {
				if e.ConverterClass == "" {
					fmt.Println("      converterClass: null")
				} else {
					fmt.Printf("      converterClass: %q\n", e.ConverterClass)
				}
			}
		}
	}
	fmt.Println()
	fmt.Println("exclusions:")
	for _, family := range m.ExclusionFamilies() {
		parts := make([]string, 0, len(m.Exclusions[family]))
		for _, r := range m.Exclusions[family] {
			parts = append(parts, fmt.Sprintf("{ start: 0x%04X, end: 0x%04X }", r.Start, r.End))
		}
		fmt.Printf("  %s: [%s]\n", family, strings.Join(parts, ", "))
	}
	fmt.Println()
	fmt.Println("globals:")
	fmt.Printf("  defaultChar: %d\n", m.Globals.DefaultChar)
	fmt.Printf("  inputTextCharset: %s\n", m.Globals.InputTextCharset)
}
