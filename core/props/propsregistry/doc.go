/*
Package propsregistry manages a registry for normalized font-mapping models.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package propsregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontprops.registry'
func tracer() tracing.Trace {
	return tracing.Select("fontprops.registry")
}
