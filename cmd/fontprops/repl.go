package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontprops/core/props"
	"github.com/npillmayer/fontprops/core/props/propsregistry"
	"github.com/npillmayer/fontprops/core/resolve"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// Intp is our interactive resolver session.
type Intp struct {
	repl    *readline.Instance
	name    string // registry key of the model, i.e. the file path
	model   *props.Model
	explain bool
}

func runReplCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceLevel(flags)
	model := loadModel(args, flags)
	name := strings.TrimSpace(args["file"].Value)
	propsregistry.GlobalRegistry().StoreModel(name, model)
	//
	repl, err := readline.New("fontprops > ")
	if err != nil {
		tracer().Errorf(err.Error())
		fatalf("cannot set up REPL: %v", err)
	}
	intp := &Intp{repl: repl, name: name, model: model}
	pterm.Info.Printfln("Loaded %s with %d families", name, len(model.Families))
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if intp.execute(strings.Fields(line)) {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(words []string) (quit bool) {
	switch words[0] {
	case "quit", "exit":
		return true
	case "families":
		for _, family := range intp.model.FamilyNames() {
			pterm.Printfln("%s (%d entries)", family, len(intp.model.Families[family]))
		}
	case "exclusions":
		if len(intp.model.Exclusions) == 0 {
			pterm.Println("no exclusion ranges")
			break
		}
		for _, family := range intp.model.ExclusionFamilies() {
			for _, r := range intp.model.Exclusions[family] {
				pterm.Printfln("%s: %04X-%04X", family, r.Start, r.End)
			}
		}
	case "trace":
		if len(words) != 2 || (words[1] != "on" && words[1] != "off") {
			pterm.Error.Println("usage: trace on|off")
			break
		}
		intp.explain = words[1] == "on"
	case "resolve":
		if len(words) != 3 {
			pterm.Error.Println("usage: resolve <family> <codepoint>")
			break
		}
		intp.resolve(words[1], words[2])
	case "help":
		help()
	default:
		pterm.Error.Printfln("unknown command: %s", words[0])
		help()
	}
	return false
}

func (intp *Intp) resolve(family string, cparg string) {
	cp, err := resolve.ParseCodePoint(cparg)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if _, ok := intp.model.Families[family]; !ok {
		suggestions := propsregistry.GlobalRegistry().SuggestFamilies(intp.name, family)
		if len(suggestions) > 0 {
			pterm.Warning.Printfln("unknown family '%s', did you mean %s?",
				family, strings.Join(suggestions, ", "))
		}
	}
	decision, trace := resolve.Resolve(intp.model, family, cp, intp.explain)
	for _, t := range trace {
		pterm.Println("- " + t)
	}
	printDecision(decision)
}

func help() {
	pterm.Println("commands:")
	pterm.Println("  families                     list font families")
	pterm.Println("  exclusions                   list exclusion ranges")
	pterm.Println("  resolve <family> <cp>        resolve a code point (0x41, 65, 03A9, U+03A9)")
	pterm.Println("  trace on|off                 toggle decision traces")
	pterm.Println("  quit")
}
