package catalog

// FirmwareDir is where the firmware keeps loadable system modules,
// relative to the emulated device root.
const FirmwareDir = "vs0/sys/external"

// modulePaths maps each module to the firmware files needed to run it in
// LLE mode, dependencies included. Modules absent from this table have no
// known loadable binary and always fall back to HLE.
var modulePaths = map[ModuleID][]string{
	HTTP:          {FirmwareDir + "/libhttp.suprx", FirmwareDir + "/libssl.suprx"},
	SSL:           {FirmwareDir + "/libssl.suprx"},
	HTTPS:         {FirmwareDir + "/libhttp.suprx", FirmwareDir + "/libssl.suprx"},
	Fiber:         {FirmwareDir + "/libfiber.suprx"},
	Ult:           {FirmwareDir + "/libult.suprx"},
	SAS:           {FirmwareDir + "/libsas.suprx"},
	PGF:           {FirmwareDir + "/libpgf.suprx", FirmwareDir + "/libpvf.suprx"},
	Fios2:         {FirmwareDir + "/libfios2.suprx"},
	SystemGesture: {FirmwareDir + "/libsystemgesture.suprx"},
	Voice:         {FirmwareDir + "/libvoice.suprx"},
	XML:           {FirmwareDir + "/libxml.suprx"},
	SQLite:        {FirmwareDir + "/libsqlite.suprx"},
	MP4:           {FirmwareDir + "/libscemp4.suprx"},
	Handwriting:   {FirmwareDir + "/libhandwriting.suprx"},
	Atrac:         {FirmwareDir + "/libatrac.suprx"},
	Face:          {FirmwareDir + "/libface.suprx"},
	Smart:         {FirmwareDir + "/libsmart.suprx"},
	AvPlayer:      {FirmwareDir + "/libsceavplayer.suprx", FirmwareDir + "/libscemp4.suprx", FirmwareDir + "/libatrac.suprx"},
	JSON:          {FirmwareDir + "/libscejson.suprx"},
}

// Paths returns the firmware files for id. The slice is a copy; callers
// may keep or modify it. Unknown modules yield nil.
func Paths(id ModuleID) []string {
	paths, ok := modulePaths[id]
	if !ok {
		return nil
	}
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

// Registry exposes the built-in path table through the PathRegistry
// interface shape expected by the policy resolver.
type Registry struct{}

// Paths implements the lookup against the built-in table.
func (Registry) Paths(id ModuleID) []string {
	return Paths(id)
}

// Default is the firmware path registry shipped with the catalog.
var Default Registry
