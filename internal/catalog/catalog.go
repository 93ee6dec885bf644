package catalog

// Static product catalog: the single source of truth for valid metric names.
// Spreadsheet rows are matched against it through Normalize, so authors may
// vary case, punctuation and spacing freely.

// SalesTeams team match order; first catalog hit wins
var SalesTeams = []string{"Achievers", "Passionate", "Concord", "Dynamic"}

// PresetProducts team -> canonical product names
var PresetProducts = map[string][]string{
	"Achievers": {
		"Asvon Tab 10/100mg 30s", "Atoxan 30mg Tab.", "D-ABS injection (IM)",
		"D-ABS injection (IM) 5s", "Pentallin Syp. IVY", "Oplex 50mg/5ml Syrup 120ml",
		"Roplex 50mg/5ml Syrup 120ml", "Swicef 100mg/5ml Susp.", "Swicef DS 200mg/5ml Susp.",
		"Vitaglobin Plus Syp", "Vitaglobin Syp.", "VITAGLOBIN Syrup 120ml", "Vonz Tab 10mg 30s", "Vonz Tab 20mg 30s",
	},
	"Passionate": {
		"Cyestra Tablet", "Ferriboxy Injection 500mg / 10ml", "LER 2.5mg Tablet",
		"Neet", "Nomo-D 10/10mg Tablet", "Oplex F 100mg/0.35mg 30s Tab",
		"Roplex F 100mg/0.35mg 30s Tab", "Swicef 400mg Cap.", "Vitaglobin Tablets",
	},
	"Concord": {"Gaviscon Liquid", "Panadol 500mg", "Brufen 400mg", "Augmentin 625mg"},
	"Dynamic": {"Solu-Cortef 100mg", "Voren Inj", "Dicloran Gel", "Xylocaine 2%"},
}

// Normalize canonicalizes a free-text product label for matching:
// lowercase, keep only ASCII letters and digits.
func Normalize(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	return string(out)
}

// Match resolves a raw product label to (team, canonical name).
// Teams are tried in SalesTeams order, products in catalog order; the first
// normalized-key match wins.
func Match(label string) (team, official string, ok bool) {
	key := Normalize(label)
	if key == "" {
		return "", "", false
	}
	for _, t := range SalesTeams {
		for _, p := range PresetProducts[t] {
			if Normalize(p) == key {
				return t, p, true
			}
		}
	}
	return "", "", false
}

// IsTeamName exact (case-sensitive) team name check, used to skip
// pivot-table group rows.
func IsTeamName(s string) bool {
	for _, t := range SalesTeams {
		if s == t {
			return true
		}
	}
	return false
}
