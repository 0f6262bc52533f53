// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package inspection implements the live inspection record lifecycle.

A record is created fresh (New), mutated in place as the inspector checks
items (Toggle), gated before saving (Saveable, MissingRequirement), and
frozen into an immutable persisted entry on save (Snapshot). Saving never
mutates the live record; the session layer resets it afterwards.

# Save Requirements

A record is saveable only when all of these hold:

  - inspector name non-blank after trimming
  - unit number non-blank after trimming
  - a signature is present
  - at least one item is completed

MissingRequirement reports the first unmet requirement in that order, which
is the tooltip the form shows on the disabled save button.
*/
package inspection
