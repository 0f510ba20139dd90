package catalog

import "sort"

// ModuleID identifies one system module in the firmware catalog.
// Values match the SceSysmoduleModuleId enumeration.
type ModuleID uint32

const (
	Net              ModuleID = 0x0001
	HTTP             ModuleID = 0x0002
	SSL              ModuleID = 0x0003
	HTTPS            ModuleID = 0x0004
	Perf             ModuleID = 0x0005
	Fiber            ModuleID = 0x0006
	Ult              ModuleID = 0x0007
	Dbg              ModuleID = 0x0008
	RazorCapture     ModuleID = 0x0009
	RazorHUD         ModuleID = 0x000A
	NGS              ModuleID = 0x000B
	Sulpha           ModuleID = 0x000C
	SAS              ModuleID = 0x000D
	PGF              ModuleID = 0x000E
	AppUtil          ModuleID = 0x000F
	Fios2            ModuleID = 0x0010
	IME              ModuleID = 0x0011
	NpBasic          ModuleID = 0x0012
	SystemGesture    ModuleID = 0x0013
	Location         ModuleID = 0x0014
	Np               ModuleID = 0x0015
	PhotoExport      ModuleID = 0x0016
	XML              ModuleID = 0x0017
	NpCommerce2      ModuleID = 0x0018
	NpUtility        ModuleID = 0x0019
	Voice            ModuleID = 0x001A
	VoiceQoS         ModuleID = 0x001B
	NpMatching2      ModuleID = 0x001C
	ScreenShot       ModuleID = 0x001E
	NpScoreRanking   ModuleID = 0x001F
	SQLite           ModuleID = 0x0021
	TriggerUtil      ModuleID = 0x0022
	RUDP             ModuleID = 0x0023
	CodecEnginePerf  ModuleID = 0x0024
	LiveArea         ModuleID = 0x0025
	NpActivity       ModuleID = 0x0026
	NpTrophy         ModuleID = 0x0027
	NpMessage        ModuleID = 0x0028
	ShutterSound     ModuleID = 0x0029
	Clipboard        ModuleID = 0x002A
	NpParty          ModuleID = 0x002B
	NetAdhocMatching ModuleID = 0x002C
	NearUtil         ModuleID = 0x002D
	NpTUS            ModuleID = 0x002E
	MP4              ModuleID = 0x002F
	AACEnc           ModuleID = 0x0030
	Handwriting      ModuleID = 0x0031
	Atrac            ModuleID = 0x0032
	NpSnsFacebook    ModuleID = 0x0033
	VideoExport      ModuleID = 0x0034
	NotificationUtil ModuleID = 0x0035
	BgAppUtil        ModuleID = 0x0036
	IncomingDialog   ModuleID = 0x0037
	IPMI             ModuleID = 0x0038
	AudioCodec       ModuleID = 0x0039
	Face             ModuleID = 0x003A
	Smart            ModuleID = 0x003B
	Marlin           ModuleID = 0x003C
	MarlinDownloader ModuleID = 0x003D
	MarlinAppLib     ModuleID = 0x003E
	TelephonyUtil    ModuleID = 0x003F
	PSPNetAdhoc      ModuleID = 0x0043
	DTCPIP           ModuleID = 0x0044
	VideoSearchEmpr  ModuleID = 0x0045
	SystemChat       ModuleID = 0x0046
	AvPlayer         ModuleID = 0x0047
	JSON             ModuleID = 0x0049
	MusicExport      ModuleID = 0x004A
)

var names = map[ModuleID]string{
	Net:              "net",
	HTTP:             "http",
	SSL:              "ssl",
	HTTPS:            "https",
	Perf:             "perf",
	Fiber:            "fiber",
	Ult:              "ult",
	Dbg:              "dbg",
	RazorCapture:     "razor_capture",
	RazorHUD:         "razor_hud",
	NGS:              "ngs",
	Sulpha:           "sulpha",
	SAS:              "sas",
	PGF:              "pgf",
	AppUtil:          "apputil",
	Fios2:            "fios2",
	IME:              "ime",
	NpBasic:          "np_basic",
	SystemGesture:    "system_gesture",
	Location:         "location",
	Np:               "np",
	PhotoExport:      "photo_export",
	XML:              "xml",
	NpCommerce2:      "np_commerce2",
	NpUtility:        "np_utility",
	Voice:            "voice",
	VoiceQoS:         "voiceqos",
	NpMatching2:      "np_matching2",
	ScreenShot:       "screen_shot",
	NpScoreRanking:   "np_score_ranking",
	SQLite:           "sqlite",
	TriggerUtil:      "trigger_util",
	RUDP:             "rudp",
	CodecEnginePerf:  "codecengine_perf",
	LiveArea:         "livearea",
	NpActivity:       "np_activity",
	NpTrophy:         "np_trophy",
	NpMessage:        "np_message",
	ShutterSound:     "shutter_sound",
	Clipboard:        "clipboard",
	NpParty:          "np_party",
	NetAdhocMatching: "net_adhoc_matching",
	NearUtil:         "near_util",
	NpTUS:            "np_tus",
	MP4:              "mp4",
	AACEnc:           "aacenc",
	Handwriting:      "handwriting",
	Atrac:            "atrac",
	NpSnsFacebook:    "np_sns_facebook",
	VideoExport:      "video_export",
	NotificationUtil: "notification_util",
	BgAppUtil:        "bg_app_util",
	IncomingDialog:   "incoming_dialog",
	IPMI:             "ipmi",
	AudioCodec:       "audiocodec",
	Face:             "face",
	Smart:            "smart",
	Marlin:           "marlin",
	MarlinDownloader: "marlin_downloader",
	MarlinAppLib:     "marlin_app_lib",
	TelephonyUtil:    "telephony_util",
	PSPNetAdhoc:      "pspnet_adhoc",
	DTCPIP:           "dtcp_ip",
	VideoSearchEmpr:  "video_search_empr",
	SystemChat:       "system_chat",
	AvPlayer:         "avplayer",
	JSON:             "json",
	MusicExport:      "music_export",
}

var byName = func() map[string]ModuleID {
	m := make(map[string]ModuleID, len(names))
	for id, name := range names {
		m[name] = id
	}
	return m
}()

// Known reports whether id belongs to the module catalog.
func Known(id ModuleID) bool {
	_, ok := names[id]
	return ok
}

// Name returns the catalog name for id, or "" for an unknown module.
func Name(id ModuleID) string {
	return names[id]
}

func (id ModuleID) String() string {
	if name, ok := names[id]; ok {
		return name
	}
	return "unknown"
}

// ByName resolves a catalog name back to its ModuleID.
func ByName(name string) (ModuleID, bool) {
	id, ok := byName[name]
	return id, ok
}

// All returns every cataloged module in ascending ID order.
func All() []ModuleID {
	ids := make([]ModuleID, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
