/*
Package resolve decides which concrete font renders a code point.

Given a normalized font-mapping model, a family name and a code point,
Resolve returns a single deterministic decision: the matching font entry,
an exclusion verdict, or a fallback onto the configured default character.
An optional trace records every entry examined, in order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resolve

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontprops.resolve'
func tracer() tracing.Trace {
	return tracing.Select("fontprops.resolve")
}
