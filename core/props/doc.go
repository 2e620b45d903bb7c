/*
Package props implements the font.properties configuration language:
a line classifier and statement extractor, a semantic validator, and a
normalizer producing the canonical font-mapping model.

A configuration maps font families and Unicode code points onto concrete
font resources, charsets and converter classes:

   default.char=65
   inputtextcharset=ANSI_CHARSET
   dialog.0=Arial,ANSI_CHARSET
   dialog.1=Wingdings,SYMBOL_CHARSET,NEED_CONVERTED
   fontcharset.dialog.1=sun.awt.motif.X11Dingbats
   exclusion.dialog.0=0500-06FF

Parsing never stops at the first problem: every malformed line and every
semantic violation in a file is reported in one pass. Any error prevents
normalization; warnings never do.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package props

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontprops.props'
func tracer() tracing.Trace {
	return tracing.Select("fontprops.props")
}
