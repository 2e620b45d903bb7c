package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'fontprops.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontprops.cli")
}

func main() {
	initDisplay()
	initTracing()

	commando.
		SetExecutableName("fontprops").
		SetVersion("v0.1.0").
		SetDescription("Validate and interpret font.properties configurations, mapping font families and code points onto concrete fonts.")

	commando.
		Register("check").
		SetDescription("Parse and validate a font.properties file. Every malformed line and semantic violation is reported in one pass.").
		SetShortDescription("validate a configuration").
		AddArgument("file", "path to font.properties", "").
		AddFlag("arith,a", "expand arithmetic expressions before parsing", commando.Bool, nil).
		AddFlag("no-warn,W", "suppress warnings", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runCheckCommand)

	commando.
		Register("normalize").
		SetDescription("Validate a font.properties file and pretty-print the normalized model.").
		SetShortDescription("print the normalized model").
		AddArgument("file", "path to font.properties", "").
		AddFlag("arith,a", "expand arithmetic expressions before parsing", commando.Bool, nil).
		AddFlag("no-warn,W", "suppress warnings", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runNormalizeCommand)

	commando.
		Register("interp").
		SetDescription("Decide which font of a family renders a code point.").
		SetShortDescription("resolve one code point").
		AddArgument("file", "path to font.properties", "").
		AddFlag("family,f", "family name (e.g. dialog, serif)", commando.String, "").
		AddFlag("cp,c", "code point (e.g. 0x41, 65, 03A9, U+03A9)", commando.String, "").
		AddFlag("explain,x", "show decision trace", commando.Bool, nil).
		AddFlag("arith,a", "expand arithmetic expressions before parsing", commando.Bool, nil).
		AddFlag("no-warn,W", "suppress warnings", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runInterpCommand)

	commando.
		Register("repl").
		SetDescription("Interactively resolve code points against a configuration.").
		SetShortDescription("interactive resolver").
		AddArgument("file", "path to font.properties", "").
		AddFlag("arith,a", "expand arithmetic expressions before parsing", commando.Bool, nil).
		AddFlag("no-warn,W", "suppress warnings", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runReplCommand)

	commando.
		Register("doctor").
		SetDescription("Check declared font names against installed system fonts. Advisory only, never part of validation.").
		SetShortDescription("probe system fonts").
		AddArgument("file", "path to font.properties", "").
		AddFlag("arith,a", "expand arithmetic expressions before parsing", commando.Bool, nil).
		AddFlag("no-warn,W", "suppress warnings", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runDoctorCommand)

	commando.Parse(nil)
}

// set up logging
func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.fontprops.cli":      "Error",
		"trace.fontprops.props":    "Error",
		"trace.fontprops.resolve":  "Error",
		"trace.fontprops.registry": "Error",
		"trace.fontprops.locate":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func applyTraceLevel(flags map[string]commando.FlagValue) {
	level := tracing.LevelError
	switch flagString(flags, "trace") {
	case "Debug", "debug":
		level = tracing.LevelDebug
	case "Info", "info":
		level = tracing.LevelInfo
	}
	for _, key := range []string{
		"fontprops.cli", "fontprops.props", "fontprops.resolve",
		"fontprops.registry", "fontprops.locate",
	} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func flagString(flags map[string]commando.FlagValue, name string) string {
	s, err := flags[name].GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func flagBool(flags map[string]commando.FlagValue, name string) bool {
	b, err := flags[name].GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, v ...interface{}) {
	pterm.Error.Printfln(format, v...)
	os.Exit(2)
}
