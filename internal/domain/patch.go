package domain

// PatchRule is a literal text substitution applied before parsing.
type PatchRule struct {
	Pattern     string `mapstructure:"pattern" json:"pattern"`
	Replacement string `mapstructure:"replacement" json:"replacement"`
}

// DefaultPatchRules repairs the missing comma between two subtypes
// of the hand-authored catalog.
var DefaultPatchRules = []PatchRule{
	{
		Pattern:     `"принтованный""с_вышивкой"`,
		Replacement: `"принтованный", "с_вышивкой"`,
	},
}
