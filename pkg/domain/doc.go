/*
Package domain contains the core models of the Pillars dice widget.

It defines the fixed set of categories (the strategic pillars), the die face and its pip
layout, the mutable roll session state, and the lifecycle events emitted while a roll is
animated. This package is kept pure and free of I/O, timers, and rendering concerns.

# Key Entities

  - Category: one of the four fixed pillars (name, accent color, glyph).
  - Face: a die value from 1 to 6 with its pip arrangement.
  - RollState: the snapshot of a session (current index, animation flag, history).
  - LifecycleHooks: callbacks fired on roll start, tick, completion, reset and teardown.
*/
package domain
