package slug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTitle_Examples(t *testing.T) {
	cases := map[string]string{
		"летние_платья":   "Летние Платья",
		"Верхняя одежда":  "Верхняя Одежда",
		"Куртки":          "Куртки",
		"с_вышивкой":      "С Вышивкой",
		"юбка":            "Юбка",
		"":                "",
		"футболки-поло":   "Футболки-поло",
		"3d_принт":        "3d Принт",
		"2в1":             "2в1",
		"худи(оверсайз)":  "Худи(оверсайз)",
		"джинсы/брюки":    "Джинсы/брюки",
		"ёлочные игрушки": "Ёлочные Игрушки",
	}

	for in, want := range cases {
		require.Equal(t, want, Title(in), "Title(%q)", in)
	}
}

func TestTitle_KeepsRemainderCase(t *testing.T) {
	require.Equal(t, "ФУТБОЛКИ", Title("ФУТБОЛКИ"))
	require.Equal(t, "Худи OVERSIZE", Title("худи_OVERSIZE"))
}

func TestTitle_KeepsEmptySegments(t *testing.T) {
	require.Equal(t, "Платья  Миди", Title("платья__миди"))
	require.Equal(t, " Сумки ", Title("_сумки_"))
}

func TestTitle_OnlyWhitespaceStartsAWord(t *testing.T) {
	require.Equal(t, "Платье-рубашка Миди", Title("платье-рубашка миди"))
	require.Equal(t, "Сумки  Через\tПлечо", Title("сумки  через\tплечо"))
}
