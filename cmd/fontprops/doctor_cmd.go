package main

import (
	"github.com/npillmayer/fontprops/core/locate/fontfiles"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runDoctorCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	applyTraceLevel(flags)
	model := loadModel(args, flags)
	missing := 0
	for _, probe := range fontfiles.ProbeModel(model) {
		if probe.Err != nil {
			missing++
			pterm.Warning.Printfln("%s.%d: font '%s' not found among system fonts",
				probe.Family, probe.Index, probe.FontName)
			continue
		}
		pterm.Success.Printfln("%s.%d: %s -> %s (style %d, weight %d)",
			probe.Family, probe.Index, probe.FontName, probe.Path, probe.Style, probe.Weight)
	}
	if missing == 0 {
		pterm.Info.Println("all declared fonts found")
	} else {
		pterm.Info.Printfln("%d declared font(s) not found; this is advisory only", missing)
	}
}
