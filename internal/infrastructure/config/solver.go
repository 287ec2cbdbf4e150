package config

// SolverConfig holds solver settings
type SolverConfig struct {
	// Optional YAML file with extra action presets, merged over the bundled ones
	PresetsFile string `mapstructure:"presets_file" validate:"omitempty,yamlfile"`

	// Upper bound on attribute craft points accepted for a build
	MaxCraftPoints int `mapstructure:"max_craft_points" validate:"min=1,max=1000"`
}
