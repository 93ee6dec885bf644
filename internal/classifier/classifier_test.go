package classifier

import (
	"errors"
	"testing"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
)

func TestClassify_DailyGrid(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"MREP Daily Sales Report"},
		{"", "Thursday, January 01, 2026"},
		{"Row Labels", "", "", "Actual"},
		{"Achievers"},
		{"Asvon Tab 10/100mg 30s", "", "", "1,250"},
		{"panadol 500mg", "", "", "30"},
		{"Unknown Product", "", "", "99"},
		{"Grand Total", "", "", "1,379"},
	}

	res, err := Classify(grid, model.UploadDaily)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	if res.ReportDate != "Thursday, January 01, 2026" {
		t.Fatalf("unexpected report date: %q", res.ReportDate)
	}
	if res.DataColumn != 3 {
		t.Fatalf("data column = %d, want 3", res.DataColumn)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(res.Entries))
	}

	first := res.Entries[0]
	if first.Team != "Achievers" || first.Metric != "Asvon Tab 10/100mg 30s" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.Actual != 1250 || first.Plan != 0 {
		t.Fatalf("daily entry values wrong: %+v", first)
	}
	if first.ReportDate != res.ReportDate {
		t.Fatalf("entry not tagged with report date")
	}

	second := res.Entries[1]
	if second.Team != "Concord" || second.Metric != "Panadol 500mg" {
		t.Fatalf("fuzzy catalog match failed: %+v", second)
	}
}

func TestClassify_MasterGrid(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Swiss Pharmaceuticals - Master Plan"},
		{"Product", "", "Target"},
		{"Voren Inj", "", "3100"},
		{"Gaviscon Liquid", "", "840"},
	}

	res, err := Classify(grid, model.UploadMaster)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	if res.ReportDate != "" {
		t.Fatalf("master grid should not capture a date, got %q", res.ReportDate)
	}
	if res.DataColumn != 2 {
		t.Fatalf("data column = %d, want 2", res.DataColumn)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(res.Entries))
	}
	e := res.Entries[0]
	if e.Plan != 3100 || e.Actual != 0 || e.ReportDate != "" {
		t.Fatalf("master entry values wrong: %+v", e)
	}
	if e.Department != "Sales" || e.Unit != "Units" || e.Status != model.StatusOnTrack {
		t.Fatalf("entry defaults wrong: %+v", e)
	}
}

func TestClassify_CrossValidation(t *testing.T) {
	t.Parallel()

	daily := [][]string{
		{"Monday, February 02, 2026"},
		{"Row Labels", "Actual"},
		{"Neet", "10"},
	}
	if _, err := Classify(daily, model.UploadMaster); !errors.Is(err, ErrLooksDaily) {
		t.Fatalf("want ErrLooksDaily, got %v", err)
	}

	master := [][]string{
		{"Annual Target 2026"},
		{"Product", "Tgt"},
		{"Neet", "500"},
	}
	if _, err := Classify(master, model.UploadDaily); !errors.Is(err, ErrLooksMaster) {
		t.Fatalf("want ErrLooksMaster, got %v", err)
	}
}

func TestClassify_PlanHeaderAfterActualIsNotMasterSignal(t *testing.T) {
	t.Parallel()

	// "Target" appearing in a sheet that already raised the daily signal must
	// not flip the file to master-looking.
	grid := [][]string{
		{"Tuesday, March 03, 2026"},
		{"Row Labels", "Actual", "Target"},
		{"Neet", "12", "40"},
	}

	res, err := Classify(grid, model.UploadDaily)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if res.MasterLikely {
		t.Fatalf("masterLikely should stay false")
	}
	if res.DataColumn != 1 {
		t.Fatalf("data column = %d, want 1 (Actual)", res.DataColumn)
	}
}

func TestClassify_DailyWithoutDateRejected(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Row Labels", "Actual"},
		{"Neet", "10"},
	}
	if _, err := Classify(grid, model.UploadDaily); !errors.Is(err, ErrMissingDateHeader) {
		t.Fatalf("want ErrMissingDateHeader, got %v", err)
	}
}

func TestClassify_DefaultDataColumn(t *testing.T) {
	t.Parallel()

	// No recognizable header: value is assumed to sit in column 1.
	grid := [][]string{
		{"Master Plan 2026"},
		{"Neet", "77"},
	}
	res, err := Classify(grid, model.UploadMaster)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if res.DataColumn != 1 {
		t.Fatalf("data column = %d, want default 1", res.DataColumn)
	}
	if res.Entries[0].Plan != 77 {
		t.Fatalf("unexpected plan: %v", res.Entries[0].Plan)
	}
}

func TestClassify_ScaffoldingRowsSkipped(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Budget 2026"},
		{"Product", "Plan"},
		{"Row Labels", "1"},
		{"Grand Total", "2"},
		{"Achievers", "3"},
		{"January 2026", "6"},
		{"Neet", "7"},
	}
	res, err := Classify(grid, model.UploadMaster)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if len(res.Entries) != 1 || res.Entries[0].Metric != "Neet" {
		t.Fatalf("scaffolding rows leaked: %+v", res.Entries)
	}
}

func TestClassify_HeaderWordRowsSkippedBelowScanWindow(t *testing.T) {
	t.Parallel()

	// Row extraction covers the whole sheet, not just the 30-row scan
	// window; stray "actual"/"tgt" label rows further down must still be
	// skipped without re-targeting the data column.
	grid := make([][]string, 0, 40)
	grid = append(grid, []string{"", "Wednesday, January 07, 2026"})
	grid = append(grid, []string{"Row Labels", "", "", "Actual"})
	for i := 0; i < 30; i++ {
		grid = append(grid, []string{"filler"})
	}
	grid = append(grid,
		[]string{"actual", "", "", "9"},
		[]string{"TGT", "", "", "9"},
		[]string{"Neet", "", "", "7"},
	)

	res, err := Classify(grid, model.UploadDaily)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if res.DataColumn != 3 {
		t.Fatalf("data column = %d, want 3", res.DataColumn)
	}
	if len(res.Entries) != 1 || res.Entries[0].Metric != "Neet" || res.Entries[0].Actual != 7 {
		t.Fatalf("header-word rows leaked: %+v", res.Entries)
	}
}

func TestClassify_NumericCellHandling(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Master Plan"},
		{"Product", "Target"},
		{"Neet", "1,234.5"},
		{"Panadol 500mg", ""},
		{"Brufen 400mg", "n/a"},
	}
	res, err := Classify(grid, model.UploadMaster)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("entries = %d, want 2 (non-numeric row dropped)", len(res.Entries))
	}
	if res.Entries[0].Plan != 1234.5 {
		t.Fatalf("thousands separator not stripped: %v", res.Entries[0].Plan)
	}
	if res.Entries[1].Plan != 0 {
		t.Fatalf("empty cell should parse as zero: %v", res.Entries[1].Plan)
	}
}

func TestClassify_NoRecognizedProducts(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Master Plan"},
		{"Mystery A", "10"},
		{"Mystery B", "20"},
	}
	if _, err := Classify(grid, model.UploadMaster); !errors.Is(err, ErrNoProducts) {
		t.Fatalf("want ErrNoProducts, got %v", err)
	}
}

func TestClassify_SignalOutsideScanWindowIgnored(t *testing.T) {
	t.Parallel()

	grid := make([][]string, 0, 40)
	grid = append(grid, []string{"Product", "Value"})
	for i := 0; i < 32; i++ {
		grid = append(grid, []string{"filler row"})
	}
	// Date header below row 30 must not be picked up.
	grid = append(grid, []string{"Monday, April 06, 2026"})
	grid = append(grid, []string{"Neet", "5"})

	if _, err := Classify(grid, model.UploadDaily); !errors.Is(err, ErrMissingDateHeader) {
		t.Fatalf("want ErrMissingDateHeader, got %v", err)
	}
}
