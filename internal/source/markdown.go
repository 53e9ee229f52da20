package source

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ExtractJSON returns the content of the first fenced code block tagged
// "json" in a markdown document. A document without a tagged block falls
// back to its fenced block only when it has exactly one, and that block is
// untagged.
func ExtractJSON(doc []byte) ([]byte, bool) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(doc))

	var tagged, first *gmast.FencedCodeBlock
	blocks := 0
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		block, ok := n.(*gmast.FencedCodeBlock)
		if !ok {
			return gmast.WalkContinue, nil
		}

		if strings.EqualFold(string(block.Language(doc)), "json") {
			tagged = block
			return gmast.WalkStop, nil
		}
		if blocks == 0 {
			first = block
		}
		blocks++
		return gmast.WalkContinue, nil
	})

	block := tagged
	if block == nil && blocks == 1 && len(first.Language(doc)) == 0 {
		block = first
	}
	if block == nil {
		return nil, false
	}

	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		buf.Write(segment.Value(doc))
	}

	return buf.Bytes(), true
}
