package domain

// Node is one entry of the generated navigation tree.
// A nil Children marks a leaf; sections and types always carry a non-nil slice.
type Node struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Children []Node `json:"children,omitzero"`
}

// IsLeaf reports whether the node is a subtype leaf.
func (n Node) IsLeaf() bool {
	return n.Children == nil
}

// Stats holds the counts printed after a successful run.
type Stats struct {
	Sections int `json:"sections"`
	Types    int `json:"types"`
	Subtypes int `json:"subtypes"`
}

// CountTree counts sections, types and subtypes below the root node.
func CountTree(root Node) Stats {
	stats := Stats{Sections: len(root.Children)}
	for _, section := range root.Children {
		stats.Types += len(section.Children)
		for _, typ := range section.Children {
			stats.Subtypes += len(typ.Children)
		}
	}
	return stats
}
