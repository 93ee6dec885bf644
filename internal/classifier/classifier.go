package classifier

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/catalog"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
)

// Upload rejection messages. These surface verbatim in the API response, so
// keep them user-readable.
var (
	ErrLooksDaily        = errors.New("VALIDATION FAILED: This appears to be a Daily Achievement file. Please upload the Master Plan.")
	ErrLooksMaster       = errors.New("VALIDATION FAILED: This appears to be a Master Plan file. Please upload a Daily Report.")
	ErrMissingDateHeader = errors.New("ERROR: Missing valid date header (e.g. 'Monday, Jan 01, 2025') in the Sales sheet.")
	ErrNoProducts        = errors.New("IMPORT FAILED: No recognized products found in Column 1. Ensure product names match the Swiss catalog.")
)

// Scan window: export tools put headers in unpredictable cells, so signals
// are searched anywhere in the top-left region rather than at fixed positions.
const (
	scanRows = 30
	scanCols = 20
)

// defaultDataColumn is assumed when no header names the numeric column.
const defaultDataColumn = 1

// Result classification outcome for one uploaded grid
type Result struct {
	Kind       model.UploadKind `json:"kind"`
	ReportDate string           `json:"reportDate,omitempty"` // raw header text, daily only
	DataColumn int              `json:"dataColumn"`
	Entries    []model.Record   `json:"entries"`

	// diagnostics from the signal scan
	MasterLikely bool `json:"masterLikely"`
	DailyLikely  bool `json:"dailyLikely"`
}

var monthNames = func() []string {
	out := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, strings.ToLower(m.String()))
	}
	return out
}()

func containsMonthName(low string) bool {
	for _, m := range monthNames {
		if strings.Contains(low, m) {
			return true
		}
	}
	return false
}

// Classify decides whether a grid of cell text is a master-plan or
// daily-report export and extracts its (team, product, value) entries.
//
// The declared kind only picks which signal wins ties; a grid whose signals
// clearly contradict the declaration is rejected so a file picked on the
// wrong upload tab never silently merges as the wrong kind.
func Classify(grid [][]string, kind model.UploadKind) (*Result, error) {
	res := &Result{
		Kind:       kind,
		DataColumn: -1,
	}

	rowLimit := len(grid)
	if rowLimit > scanRows {
		rowLimit = scanRows
	}

	for r := 0; r < rowLimit; r++ {
		row := grid[r]
		for c := 0; c < scanCols && c < len(row); c++ {
			text := strings.TrimSpace(row[c])
			if text == "" {
				continue
			}
			low := strings.ToLower(text)

			// Date signal: a month name together with a 2020s/2030s year.
			if res.ReportDate == "" && containsMonthName(low) &&
				(strings.Contains(low, "202") || strings.Contains(low, "203")) {
				res.ReportDate = text
				res.DailyLikely = true
			}

			if strings.Contains(low, "master plan") || strings.Contains(low, "annual target") || strings.Contains(low, "budget 20") {
				res.MasterLikely = true
			}

			if low == "actual" || low == "achievement" || low == "achievment" {
				if kind == model.UploadDaily {
					res.DataColumn = c
				}
				res.DailyLikely = true
			}

			if low == "target" || low == "tgt" || low == "plan" {
				if kind == model.UploadMaster {
					res.DataColumn = c
				}
				// A plan header in a file that already looks daily is just
				// the comparison column, not a master signal.
				if !res.DailyLikely {
					res.MasterLikely = true
				}
			}
		}
	}

	if kind == model.UploadMaster && res.DailyLikely && !res.MasterLikely {
		return nil, ErrLooksDaily
	}
	if kind == model.UploadDaily && res.MasterLikely && !res.DailyLikely {
		return nil, ErrLooksMaster
	}

	if res.DataColumn == -1 {
		res.DataColumn = defaultDataColumn
	}

	if kind == model.UploadDaily && res.ReportDate == "" {
		return nil, ErrMissingDateHeader
	}

	res.Entries = extractEntries(grid, kind, res.DataColumn, res.ReportDate)
	if len(res.Entries) == 0 {
		return nil, ErrNoProducts
	}

	return res, nil
}

// extractEntries walks every row, takes column 0 as the product label, skips
// pivot-table scaffolding, resolves the label against the catalog and parses
// the numeric cell. Unmatched or non-numeric rows are dropped silently.
func extractEntries(grid [][]string, kind model.UploadKind, dataCol int, reportDate string) []model.Record {
	entries := make([]model.Record, 0, len(grid))

	for _, row := range grid {
		product := strings.TrimSpace(cellAt(row, 0))
		if skipRow(product) {
			continue
		}

		team, official, ok := catalog.Match(product)
		if !ok {
			continue
		}

		val, ok := parseNumeric(cellAt(row, dataCol))
		if !ok {
			continue
		}

		rec := model.Record{
			Department: model.DepartmentSales,
			Team:       team,
			Metric:     official,
			Unit:       "Units",
			Status:     model.StatusOnTrack,
		}
		if kind == model.UploadMaster {
			rec.Plan = val
		} else {
			rec.Actual = val
			rec.ReportDate = reportDate
		}
		entries = append(entries, rec)
	}

	return entries
}

// skipRow filters non-product rows: blank cells, pivot totals, header words,
// team group labels and date rows.
func skipRow(product string) bool {
	if product == "" || product == "Row Labels" || product == "Grand Total" {
		return true
	}
	low := strings.ToLower(product)
	if low == "actual" || low == "tgt" {
		return true
	}
	if catalog.IsTeamName(product) {
		return true
	}
	return containsMonthName(low)
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseNumeric parses a cell as float after stripping thousands separators.
// An empty cell counts as zero (pivot exports leave blanks for zero days).
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
