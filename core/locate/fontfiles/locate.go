package fontfiles

import (
	"context"
	"path"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontprops/core"
	"github.com/npillmayer/fontprops/core/props"
	xfont "golang.org/x/image/font"
)

// FindFontFile searches the system font directories for a font with the
// given name and returns its file path.
func FindFontFile(name string) (string, error) {
	fpath, err := findfont.Find(name)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "font not found: %s", name)
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	return fpath, nil
}

type pathPlusErr struct {
	path string
	err  error
}

// PathPromise is returned by ResolveFontPath; the call to Path blocks
// until the lookup has completed.
type PathPromise interface {
	Path() (string, error)
}

type pathLoader struct {
	await func(ctx context.Context) (string, error)
}

func (loader pathLoader) Path() (string, error) {
	return loader.await(context.Background())
}

// ResolveFontPath resolves a font name to a system font file path.
func ResolveFontPath(name string) PathPromise {
	ch := make(chan pathPlusErr)
	go func(ch chan<- pathPlusErr) {
		result := pathPlusErr{}
		result.path, result.err = FindFontFile(name)
		ch <- result
		close(ch)
	}(ch)
	return pathLoader{
		await: func(ctx context.Context) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case r := <-ch:
				return r.path, r.err
			}
		},
	}
}

// Probe is the result of checking one declared font entry against the
// installed system fonts.
type Probe struct {
	Family   string
	Index    int
	FontName string
	Path     string
	Style    xfont.Style
	Weight   xfont.Weight
	Err      error
}

// ProbeModel checks every font entry of a model against the system fonts,
// family by family in sorted name order.
func ProbeModel(m *props.Model) []Probe {
	var probes []Probe
	for _, family := range m.FamilyNames() {
		for _, entry := range m.Families[family] {
			probe := Probe{
				Family:   family,
				Index:    entry.Index,
				FontName: entry.FontName,
			}
			probe.Path, probe.Err = FindFontFile(entry.FontName)
			if probe.Err == nil {
				probe.Style, probe.Weight = GuessStyleAndWeight(probe.Path)
			}
			probes = append(probes, probe)
		}
	}
	return probes
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}
