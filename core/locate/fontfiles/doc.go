/*
Package fontfiles locates declared font resources among installed system
fonts.

Locating a font file may be slow on large font directories, so the single
lookup works in an async/await fashion: ResolveFontPath returns a promise
which the client calls later to receive the result, blocking until the
lookup has completed.

The probe is purely advisory: it checks that a font resource of the
declared name exists as a file and guesses its style and weight from the
file name. It never inspects glyph data and plays no part in validating a
configuration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontfiles

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontprops.locate'
func tracer() tracing.Trace {
	return tracing.Select("fontprops.locate")
}
