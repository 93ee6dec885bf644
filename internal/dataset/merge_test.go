package dataset

import (
	"testing"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
)

func masterRow(team, metric string, plan float64) model.Record {
	return model.Record{
		Department: "Sales", Team: team, Metric: metric,
		Plan: plan, Unit: "Units", Status: model.StatusOnTrack,
	}
}

func dailyRow(team, metric string, actual float64, date string) model.Record {
	return model.Record{
		Department: "Sales", Team: team, Metric: metric,
		Actual: actual, Unit: "Units", Status: model.StatusOnTrack, ReportDate: date,
	}
}

func TestMerge_DailyReplacesSameDate(t *testing.T) {
	t.Parallel()

	const date = "Monday, January 05, 2026"
	current := []model.Record{
		masterRow("Dynamic", "Voren Inj", 3100),
		dailyRow("Dynamic", "Voren Inj", 40, date),
		dailyRow("Dynamic", "Dicloran Gel", 12, date),
		dailyRow("Dynamic", "Voren Inj", 55, "Sunday, January 04, 2026"),
	}
	incoming := []model.Record{
		dailyRow("Dynamic", "Voren Inj", 90, date),
	}

	out := Merge(current, incoming, model.UploadDaily, date)

	count := 0
	for _, r := range out {
		if r.ReportDate == date {
			count++
			if r.Actual != 90 {
				t.Fatalf("stale daily row survived: %+v", r)
			}
		}
	}
	if count != 1 {
		t.Fatalf("records for %s = %d, want 1", date, count)
	}

	// master row and the other day's records are untouched
	if len(out) != 3 {
		t.Fatalf("total records = %d, want 3", len(out))
	}
}

func TestMerge_DailyDifferentHeaderTextAccumulates(t *testing.T) {
	t.Parallel()

	// Replacement keys on the exact header string; a differently formatted
	// header for the same calendar day is a different key.
	current := []model.Record{
		dailyRow("Dynamic", "Voren Inj", 40, "Monday, January 05, 2026"),
	}
	incoming := []model.Record{
		dailyRow("Dynamic", "Voren Inj", 90, "monday, January 05, 2026"),
	}

	out := Merge(current, incoming, model.UploadDaily, "monday, January 05, 2026")
	if len(out) != 2 {
		t.Fatalf("records = %d, want 2 (no cross-format replacement)", len(out))
	}
}

func TestMerge_MasterUpsertNeverDeletes(t *testing.T) {
	t.Parallel()

	current := []model.Record{
		masterRow("Dynamic", "Voren Inj", 3100),
		masterRow("Dynamic", "Dicloran Gel", 900),
	}
	incoming := []model.Record{
		masterRow("Dynamic", "Voren Inj", 4000),
	}

	out := Merge(current, incoming, model.UploadMaster, "")
	if len(out) != 2 {
		t.Fatalf("records = %d, want 2", len(out))
	}

	var voren, dicloran *model.Record
	for i := range out {
		switch out[i].Metric {
		case "Voren Inj":
			voren = &out[i]
		case "Dicloran Gel":
			dicloran = &out[i]
		}
	}
	if voren == nil || voren.Plan != 4000 {
		t.Fatalf("upsert did not overwrite: %+v", voren)
	}
	if dicloran == nil || dicloran.Plan != 900 {
		t.Fatalf("absent product was removed or changed: %+v", dicloran)
	}
}

func TestMerge_MasterKeyIsTeamAndMetric(t *testing.T) {
	t.Parallel()

	current := []model.Record{
		masterRow("Achievers", "Vitaglobin Syp.", 100),
	}
	incoming := []model.Record{
		masterRow("Passionate", "Vitaglobin Syp.", 200),
	}

	out := Merge(current, incoming, model.UploadMaster, "")
	if len(out) != 2 {
		t.Fatalf("records = %d, want 2 (same metric, different team)", len(out))
	}
}

func TestMerge_MasterPreservesNonSalesAndDaily(t *testing.T) {
	t.Parallel()

	production := model.Record{Department: "Production", Metric: "Sample Tablet Compression", Plan: 5000000}
	daily := dailyRow("Dynamic", "Voren Inj", 10, "Friday, January 02, 2026")
	current := []model.Record{production, daily, masterRow("Dynamic", "Voren Inj", 3100)}

	out := Merge(current, []model.Record{masterRow("Dynamic", "Voren Inj", 5000)}, model.UploadMaster, "")

	if len(out) != 3 {
		t.Fatalf("records = %d, want 3", len(out))
	}
	if out[0].Department != "Production" {
		t.Fatalf("non-sales partition lost ordering: %+v", out[0])
	}
	if out[1].ReportDate == "" {
		t.Fatalf("daily partition lost ordering: %+v", out[1])
	}
	if out[2].Plan != 5000 {
		t.Fatalf("master partition not updated: %+v", out[2])
	}
}
