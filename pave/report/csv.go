package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/flexpave/flexpave/pave"
)

// WriteCSV writes the layer thickness table as CSV, one row per material
// course in allocation order.
func WriteCSV(path string, res *pave.DesignResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"material", "thickness_cm", "minimum_governs"}); err != nil {
		return err
	}
	for _, layer := range res.Layers {
		record := []string{
			layer.Material,
			strconv.FormatFloat(layer.Thickness, 'f', 2, 64),
			strconv.FormatBool(layer.Pinned),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row for %q: %w", layer.Material, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return file.Close()
}
