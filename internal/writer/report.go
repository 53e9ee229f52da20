package writer

import (
	"fmt"
	"io"
	"path/filepath"

	"catalogtree/converter/internal/domain"
)

// Report prints the success line and the tree statistics.
func Report(out io.Writer, path string, stats domain.Stats) error {
	_, err := fmt.Fprintf(out,
		"✓ Файл %s создан успешно\nСтатистика:\n- Разделов: %d\n- Типов: %d\n- Подтипов: %d\n",
		filepath.Base(path), stats.Sections, stats.Types, stats.Subtypes)
	return err
}
