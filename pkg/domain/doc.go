// Package domain contains the core entities shared by the scoring pipeline:
// joined per-domain scan records, the ordinal scores derived from them, and the
// row types handed to output writers. These types are intentionally free of
// IO concerns so they can be shared across packages.
package domain
