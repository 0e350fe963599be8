// Package tri implements an ordered list over exactly three distinct element
// types. All elements share one insertion-order sequence, while each type
// carries its own chain of pure modifiers that is applied lazily whenever an
// element is read, never to the stored payloads. Per-type operations go
// through statically typed rails, so using a type the list was not declared
// with fails to compile.
//
// Highlights:
// - New/Of: construct an empty or pre-populated list
// - First/Second/Third: wrap a raw value as a tagged Value
// - List.First/Second/Third: obtain the rail bound to one element type
// - Rail.Push: append raw values of the rail's type
// - Rail.Modify/Reset: grow or discard the rail's modifier chain
// - Rail.View/Collect: lazy or materialized per-type projection
// - List.Values/All/Backward: full traversal with live modifiers
// - Match/Value.Visit: three-way dispatch on a tagged value
package tri
