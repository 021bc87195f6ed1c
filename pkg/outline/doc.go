// Package outline parses indentation-based Mikado outlines into node and
// edge sets.
//
// # Outline Format
//
// An outline is plain text. Every non-empty line is a task; four leading
// spaces make one level of depth, and the first space-delimited word is the
// status marker. A marker of "x" means done, anything else means not done:
//
//	o Extract billing service
//	    x Move invoice model
//	    o Split payment gateway
//	        x Add gateway interface
//
// Depth-0 tasks are goals. Every other task is a prerequisite of the nearest
// preceding task one level shallower.
//
// # Parsing
//
// [Parse] runs the full transformation:
//
//  1. [Tokenize] turns text into depth-tagged [Task] values in source order.
//  2. [Pairs] rebuilds parent/child relations with an explicit ancestor chain.
//  3. [Extract] derives each task's name and done flag.
//  4. Nodes and edges are collected into [NodeSet] and [EdgeSet].
//
// Parse is pure: it does no I/O, keeps no state between calls, and returns
// equal sets for equal input.
//
// # Identity
//
// Two lines with the same name collapse to one [Node], so a task can be the
// prerequisite of several parents. A [Node] is identified by its full
// (Name, Done, Goal) value and an [Edge] by (Src, Dst, Done); both are
// comparable structs used directly as set keys.
//
// # Errors
//
// A line indented more than one level below the current ancestor chain fails
// with MALFORMED_INDENTATION. Two lines sharing a name but disagreeing on done
// fail with CONFLICTING_DUPLICATE. Empty input is not an error.
//
// The first word of every line is consumed as its marker, even when it is an
// ordinary word. Lines whose marker is longer than one character are reported
// in [Result.Warnings] so callers can surface the likely mistake.
package outline
