package models

// Supported game titles. Match creation rejects anything outside this set.
var GameTitles = []string{
	"Modern Warfare 2",
	"Black Ops",
	"Modern Warfare 3",
	"Black Ops 2",
}

// Supported game modes, shared across all titles.
var GameModes = []string{
	"Search and Destroy",
	"Capture the Flag",
	"Domination",
	"Team Deathmatch",
}

// MapPools lists the playable maps per title.
var MapPools = map[string][]string{
	"Modern Warfare 2": {
		"Afghan", "Derail", "Estate", "Favela", "Highrise", "Invasion",
		"Karachi", "Quarry", "Rundown", "Rust", "Scrapyard", "Skidrow",
		"Sub Base", "Terminal", "Underpass", "Wasteland",
	},
	"Black Ops": {
		"Array", "Cracked", "Crisis", "Firing Range", "Grid", "Hanoi",
		"Havana", "Jungle", "Launch", "Nuketown", "Radiation", "Summit",
		"Villa", "WMD",
	},
	"Modern Warfare 3": {
		"Arkaden", "Bakaara", "Bootleg", "Carbon", "Dome", "Downturn",
		"Fallen", "Hardhat", "Interchange", "Lockdown", "Mission",
		"Outpost", "Resistance", "Seatown", "Underground", "Village",
	},
	"Black Ops 2": {
		"Aftermath", "Cargo", "Carrier", "Drone", "Express", "Hijacked",
		"Meltdown", "Overflow", "Plaza", "Raid", "Slums", "Standoff",
		"Turbine", "Yemen",
	},
}

// ValidGameTitle reports whether the title is one of the supported games.
func ValidGameTitle(title string) bool {
	for _, t := range GameTitles {
		if t == title {
			return true
		}
	}
	return false
}

// ValidGameMode reports whether the mode is supported.
func ValidGameMode(mode string) bool {
	for _, m := range GameModes {
		if m == mode {
			return true
		}
	}
	return false
}
