package data

// Hero is one roster entry from heroes.json.
type Hero struct {
	Name        string   `json:"name"`
	PrimaryAttr string   `json:"primary_attr,omitempty"`
	AttackType  string   `json:"attack_type,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

// NormalizedHero is one entry from normalized_heroes.json. SafeName is the
// filesystem-safe id that joins the roster to the strategy documents.
type NormalizedHero struct {
	Name      string `json:"name"`
	SafeName  string `json:"safe_name"`
	ImagePath string `json:"image_path,omitempty"`
}

// HeroRef is the lookup value for a display name.
type HeroRef struct {
	SafeName  string
	ImagePath string
}

// Strategy is the per-hero authored tip document (howdoiplay_json/<safe_name>.json).
type Strategy struct {
	Hero       string           `json:"hero,omitempty"`
	Strategies StrategySections `json:"strategies"`
}

// StrategySections holds the named tip lists of a strategy document.
// A nil slice means the field was absent from the source document.
type StrategySections struct {
	GeneralTips []string `json:"general_tips"`
	CounterTips []string `json:"counter_tips"`
}
