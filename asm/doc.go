// Package asm assembles ls assembly source into 32-bit machine
// words for the LS gate computer.
//
// Assembly is a two-pass process. The first pass strips comments,
// collects label addresses, and records #ALIAS register aliases.
// The second pass encodes every instruction line against the
// catalogue in package isa. A line that fails to encode is reported
// and skipped; assembly never aborts on bad input.
package asm
