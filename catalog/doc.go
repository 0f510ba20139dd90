// Package catalog is the static module catalog of the emulated platform:
// module identifiers, their display names, the firmware files implementing
// each module, and the fixed automatic-LLE selection set.
//
// All lookups are pure reads over tables baked in at compile time. Unknown
// identifiers degrade to zero values; nothing here panics or errors.
package catalog
