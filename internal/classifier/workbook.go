package classifier

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrSalesSheetMissing the workbook has no sheet named "Sales".
var ErrSalesSheetMissing = errors.New("ERROR: 'Sales' sheet not found in the selected Excel file.")

// ReadSalesGrid opens a workbook and returns the cell text of its "Sales"
// sheet (matched case-insensitively) as a row-major grid. GetRows yields the
// formatted display string of each cell, which is what the classifier's
// keyword scan and the raw reportDate capture both rely on.
func ReadSalesGrid(r io.Reader) ([][]string, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer wb.Close()

	for _, name := range wb.GetSheetList() {
		if !strings.EqualFold(name, "Sales") {
			continue
		}
		rows, err := wb.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		return rows, nil
	}

	return nil, ErrSalesSheetMissing
}
