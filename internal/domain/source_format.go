package domain

type SourceFormat string

func (f SourceFormat) String() string {
	return string(f)
}

const (
	SourceFormatAuto     SourceFormat = "auto"     // Markdown for .md files, JSON otherwise
	SourceFormatJSON     SourceFormat = "json"     // Whole document is JSON
	SourceFormatMarkdown SourceFormat = "markdown" // JSON inside a fenced code block
)

var SourceFormats = []SourceFormat{
	SourceFormatAuto,
	SourceFormatJSON,
	SourceFormatMarkdown,
}

// IsValid reports whether f is one of the known formats.
func (f SourceFormat) IsValid() bool {
	for _, known := range SourceFormats {
		if f == known {
			return true
		}
	}
	return false
}
