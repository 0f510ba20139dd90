package catalog

// autoLLE is the fixed set of modules eligible for automatic LLE
// selection. These are the modules whose original binaries are known to
// load and run correctly. Not user editable.
var autoLLE = map[ModuleID]struct{}{
	SAS:           {},
	PGF:           {},
	SystemGesture: {},
	XML:           {},
	MP4:           {},
	Atrac:         {},
	AvPlayer:      {},
	JSON:          {},
	HTTP:          {},
	SSL:           {},
	HTTPS:         {},
}

// AutoLLE reports whether id is in the automatic LLE selection set.
func AutoLLE(id ModuleID) bool {
	_, ok := autoLLE[id]
	return ok
}

// AutoLLEModules returns the automatic selection set in ascending ID order.
func AutoLLEModules() []ModuleID {
	ids := make([]ModuleID, 0, len(autoLLE))
	for _, id := range All() {
		if AutoLLE(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
