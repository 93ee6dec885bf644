package dataset

import (
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
)

// Merge folds freshly classified entries into the canonical record set and
// returns the new set; the input slice is not mutated.
//
// Daily uploads fully replace the records of their report date: every record
// whose ReportDate string-equals the new one is dropped before the new
// entries are appended. The comparison is exact text equality of the header
// string, so a re-upload supersedes a prior one only when the sheet carries
// the identical date header.
//
// Master uploads upsert by (team, metric) and never delete: a product present
// in an earlier master plan but absent from the new file keeps its old row.
func Merge(current, entries []model.Record, kind model.UploadKind, reportDate string) []model.Record {
	if kind == model.UploadDaily {
		out := make([]model.Record, 0, len(current)+len(entries))
		for _, rec := range current {
			if rec.ReportDate != reportDate {
				out = append(out, rec)
			}
		}
		return append(out, entries...)
	}

	var nonSales, dailySales, master []model.Record
	for _, rec := range current {
		switch {
		case rec.Department != model.DepartmentSales:
			nonSales = append(nonSales, rec)
		case rec.ReportDate != "":
			dailySales = append(dailySales, rec)
		default:
			master = append(master, rec)
		}
	}

	for _, entry := range entries {
		idx := -1
		for i, m := range master {
			if m.Metric == entry.Metric && m.Team == entry.Team {
				idx = i
				break
			}
		}
		if idx >= 0 {
			master[idx] = entry
		} else {
			master = append(master, entry)
		}
	}

	out := make([]model.Record, 0, len(nonSales)+len(dailySales)+len(master))
	out = append(out, nonSales...)
	out = append(out, dailySales...)
	return append(out, master...)
}
