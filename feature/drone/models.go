package drone

// Style values accepted for Config.Style.
const (
	StyleNeon    = "neon"
	StyleWire    = "wire"
	StyleCrystal = "crystal"
)

// Field defaults applied to seeded records.
const (
	DefaultStyle = StyleNeon
	DefaultColor = "#06e0ff"
	DefaultScale = 1.0
)

// Config is the display configuration of one drone profile.
type Config struct {
	Key         string  `gorm:"column:key;primaryKey;size:64" json:"key"`
	Title       string  `gorm:"column:title;not null" json:"title"`
	Description string  `gorm:"column:description;not null;default:''" json:"description"`
	Style       string  `gorm:"column:style;size:16;not null;default:neon" json:"style"`
	Color       string  `gorm:"column:color;size:16;not null;default:#06e0ff" json:"color"`
	Scale       float64 `gorm:"column:scale;not null;default:1" json:"scale"`
	Animate     bool    `gorm:"column:animate;not null;default:false" json:"animate"`
	Simulator   bool    `gorm:"column:simulator;not null;default:false" json:"simulator"`
}

// TableName overrides the table name used by Config.
func (Config) TableName() string {
	return "drone_configs"
}

// NewConfig returns a record with every mutable field at its default.
func NewConfig(key, title, description string) Config {
	return Config{
		Key:         key,
		Title:       title,
		Description: description,
		Style:       DefaultStyle,
		Color:       DefaultColor,
		Scale:       DefaultScale,
	}
}

// Seed describes one profile created at startup.
type Seed struct {
	Key         string
	Title       string
	Description string
}

// DefaultSeeds is the fixed set of profiles the service ships with.
var DefaultSeeds = []Seed{
	{"quadcopter", "Quadcopter", "Versatile multi-rotor for photography and agility."},
	{"fixedwing", "Fixed-Wing", "Efficient for long-range flights and mapping."},
	{"hexacopter", "Hexacopter", "Six rotors for heavy lifting."},
	{"octocopter", "Octocopter", "Maximum payload and redundancy."},
	{"delivery", "Delivery", "Cargo bays for logistics."},
	{"agricultural", "Agricultural", "Sprayers & crop monitoring."},
	{"swarm", "Swarm", "Coordinated group operations."},
	{"nano", "Nano/Micro", "Compact indoor operations."},
	{"military", "Military", "Armored with advanced sensors."},
	{"hybrid", "Hybrid", "VTOL + fixed-wing capabilities."},
	{"spherical", "Spherical", "Omnidirectional orb."},
	{"singlerotor", "Single-Rotor", "Helicopter-style precise control."},
}
