package domain

// SourceCatalog is the decoded "catalog" object of the source document.
// Slices keep the key order of the source text.
type SourceCatalog struct {
	Sections []SourceSection `json:"sections"`
}

type SourceSection struct {
	Name  string       `json:"name"`  // Raw section key, e.g. "Верхняя одежда"
	Types []SourceType `json:"types"` // Types in source order
}

type SourceType struct {
	Name     string   `json:"name"`     // Raw type key, e.g. "Куртки"
	Subtypes []string `json:"subtypes"` // Nil when the source value is not a list
}
