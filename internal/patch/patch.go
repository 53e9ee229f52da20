package patch

import (
	"strings"

	"catalogtree/converter/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Patcher repairs known authoring errors in the raw source text.
type Patcher struct {
	rules []domain.PatchRule
}

func NewPatcher(rules []domain.PatchRule) *Patcher {
	return &Patcher{
		rules: rules,
	}
}

// Apply runs every rule in order; each rule sees the output of the previous one.
// Text without any pattern is returned unchanged.
func (p *Patcher) Apply(text string) string {
	for _, rule := range p.rules {
		if rule.Pattern == "" {
			continue
		}

		count := strings.Count(text, rule.Pattern)
		if count == 0 {
			continue
		}

		text = strings.ReplaceAll(text, rule.Pattern, rule.Replacement)
		log.Infof("🩹 Patched %d occurrence(s) of %s", count, rule.Pattern)
	}

	return text
}
