package builder

import (
	"testing"

	"catalogtree/converter/internal/domain"
	"catalogtree/converter/internal/parser"

	"github.com/stretchr/testify/require"
)

func build(t *testing.T, text string) domain.Node {
	t.Helper()
	catalog, err := parser.ParseCatalog(text)
	require.NoError(t, err)
	return NewTreeBuilder("Каталог товаров", "catalog").Build(catalog)
}

func TestBuild_OuterwearExample(t *testing.T) {
	root := build(t, `{"catalog": {"Верхняя одежда": {"Куртки": ["Зимние", "Демисезонные"]}}}`)

	require.Equal(t, "Каталог товаров", root.Title)
	require.Equal(t, "catalog", root.Slug)
	require.Len(t, root.Children, 1)

	section := root.Children[0]
	require.Equal(t, "Верхняя Одежда", section.Title)
	require.Equal(t, "verhnyayaodezhda", section.Slug)
	require.Len(t, section.Children, 1)

	typ := section.Children[0]
	require.Equal(t, "Куртки", typ.Title)
	require.Equal(t, "kurtki", typ.Slug)

	require.Equal(t, []domain.Node{
		{Title: "Зимние", Slug: "zimnie"},
		{Title: "Демисезонные", Slug: "demisezonnye"},
	}, typ.Children)
	for _, leaf := range typ.Children {
		require.True(t, leaf.IsLeaf())
	}
}

func TestBuild_TypesWithoutSubtypesGetEmptyChildren(t *testing.T) {
	root := build(t, `{"catalog": {"Обувь": {"Кеды": [], "Туфли": null, "Сапоги": "—"}}}`)

	for _, typ := range root.Children[0].Children {
		require.NotNil(t, typ.Children, typ.Title)
		require.Empty(t, typ.Children, typ.Title)
		require.False(t, typ.IsLeaf())
	}
}

func TestBuild_EmptySectionKeepsChildren(t *testing.T) {
	root := build(t, `{"catalog": {"Белье": {}}}`)

	require.NotNil(t, root.Children[0].Children)
	require.Empty(t, root.Children[0].Children)
}

func TestBuild_KeepsSourceOrder(t *testing.T) {
	root := build(t, `{"catalog": {"Я": {"в": ["2", "1"], "б": []}, "А": {}}}`)

	require.Equal(t, "ya", root.Children[0].Slug)
	require.Equal(t, "a", root.Children[1].Slug)
	require.Equal(t, "v", root.Children[0].Children[0].Slug)
	require.Equal(t, "b", root.Children[0].Children[1].Slug)
	require.Equal(t, "2", root.Children[0].Children[0].Children[0].Slug)
	require.Equal(t, "1", root.Children[0].Children[0].Children[1].Slug)
}

func TestBuild_EmitsEmptyAndDuplicateSlugs(t *testing.T) {
	root := build(t, `{"catalog": {"Сумки": {"Тип": ["Шоппер", "шоппер", "!!!"]}}}`)

	leaves := root.Children[0].Children[0].Children
	require.Len(t, leaves, 3)
	require.Equal(t, "shopper", leaves[0].Slug)
	require.Equal(t, "shopper", leaves[1].Slug)
	require.Equal(t, "", leaves[2].Slug)
	require.Equal(t, "!!!", leaves[2].Title)
}

func TestBuild_UsesConfiguredRoot(t *testing.T) {
	catalog, err := parser.ParseCatalog(`{"catalog": {}}`)
	require.NoError(t, err)

	root := NewTreeBuilder("Shop", "shop").Build(catalog)
	require.Equal(t, domain.Node{Title: "Shop", Slug: "shop", Children: []domain.Node{}}, root)
}
