package builder

import (
	"catalogtree/converter/internal/domain"
	"catalogtree/converter/internal/slug"

	log "github.com/sirupsen/logrus"
)

// TreeBuilder re-shapes a parsed catalog into the navigation tree.
type TreeBuilder struct {
	rootTitle string
	rootSlug  string
}

func NewTreeBuilder(rootTitle, rootSlug string) *TreeBuilder {
	return &TreeBuilder{
		rootTitle: rootTitle,
		rootSlug:  rootSlug,
	}
}

// Build keeps source order at every level. Empty and colliding slugs are
// emitted unchanged and only reported in the log.
func (b *TreeBuilder) Build(catalog *domain.SourceCatalog) domain.Node {
	root := domain.Node{
		Title:    b.rootTitle,
		Slug:     b.rootSlug,
		Children: make([]domain.Node, 0, len(catalog.Sections)),
	}

	for _, section := range catalog.Sections {
		sectionNode := newBranch(section.Name, len(section.Types))

		for _, typ := range section.Types {
			typeNode := newBranch(typ.Name, len(typ.Subtypes))

			for _, subtype := range typ.Subtypes {
				typeNode.Children = append(typeNode.Children, domain.Node{
					Title: slug.Title(subtype),
					Slug:  slug.Slug(subtype),
				})
			}

			checkSlugs(section.Name+" / "+typ.Name, typeNode.Children)
			sectionNode.Children = append(sectionNode.Children, typeNode)
		}

		checkSlugs(section.Name, sectionNode.Children)
		root.Children = append(root.Children, sectionNode)
	}

	checkSlugs(b.rootTitle, root.Children)
	return root
}

func newBranch(key string, capacity int) domain.Node {
	return domain.Node{
		Title:    slug.Title(key),
		Slug:     slug.Slug(key),
		Children: make([]domain.Node, 0, capacity),
	}
}

// checkSlugs logs empty slugs and slugs shared by siblings under parent.
func checkSlugs(parent string, siblings []domain.Node) {
	seen := make(map[string]string, len(siblings))
	for _, node := range siblings {
		if node.Slug == "" {
			log.Warnf("⚠️ %q under %q has an empty slug", node.Title, parent)
			continue
		}
		if first, ok := seen[node.Slug]; ok {
			log.Warnf("⚠️ Slug %q under %q is shared by %q and %q", node.Slug, parent, first, node.Title)
			continue
		}
		seen[node.Slug] = node.Title
	}
}
