package eval

import (
	"letcalc/internal/diag"
	"letcalc/internal/trace"
)

// DefaultMaxDepth is the parenthesis nesting limit used by the driver and the CLI.
const DefaultMaxDepth = 1000

// HardMaxDepth caps nesting when MaxDepth is 0 or larger than it.
const HardMaxDepth = 10_000

type Options struct {
	Reporter diag.Reporter // может быть nil
	Tracer   trace.Tracer  // nil → trace.Nop
	Parent   uint64        // span id that eval events hang under
	MaxDepth int           // 0 — только HardMaxDepth
}

func (o *Options) maxDepth() int {
	if o.MaxDepth <= 0 || o.MaxDepth > HardMaxDepth {
		return HardMaxDepth
	}
	return o.MaxDepth
}

func (o *Options) tracer() trace.Tracer {
	if o.Tracer == nil {
		return trace.Nop
	}
	return o.Tracer
}
