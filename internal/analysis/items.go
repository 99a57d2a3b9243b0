package analysis

// CounterItems is the fixed catalog of item names checked against counter-tip
// text. Order matters: suggestions are reported in catalog order.
var CounterItems = []string{
	// Core defensive & dispel
	"Black King Bar",   // magic immunity
	"Linken's Sphere",  // blocks single-target spells
	"Lotus Orb",        // reflects single-target spells
	"Manta Style",      // dispels debuffs, dodges projectiles
	"Aeon Disk",        // survives burst damage
	"Guardian Greaves", // AoE dispel and heal/mana restore
	"Satanic",          // strong dispel and lifesteal

	// Evasion & disarm
	"Heaven's Halberd", // disarm
	"Butterfly",        // evasion
	"Solar Crest",      // evasion and armor reduction

	// Control & lockdown
	"Scythe of Vyse", // hex
	"Abyssal Blade",  // stun
	"Gleipnir",       // AoE root
	"Rod of Atos",    // root

	// Silence & mana burn
	"Orchid Malevolence", // silence
	"Bloodthorn",         // silence with crit
	"Diffusal Blade",     // mana burn and slow

	// Vision & invisibility counter
	"Gem of True Sight",
	"Sentry Ward",
	"Dust of Appearance",
	"Monkey King Bar", // true strike against evasion

	// Damage mitigation & armor
	"Blade Mail",
	"Ghost Scepter",
	"Eul's Scepter of Divinity",
	"Pipe of Insight",
	"Eternal Shroud",
	"Assault Cuirass",
	"Crimson Guard",
	"Shiva's Guard",
	"Eye of Skadi",

	// Break & special counters
	"Silver Edge",   // breaks passives
	"Khanda",        // breaks passives
	"Nullifier",     // continuously dispels buffs
	"Spirit Vessel", // reduces health regen

	// Positional & escape
	"Force Staff",
	"Hurricane Pike",
	"Blink Dagger",

	// Specific hero counters
	"Dagon",
	"Hand of Midas",
}
