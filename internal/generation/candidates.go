package generation

import "strings"

// CandidateModels returns the ordered list of models to try: the primary
// model first, then every known model in declaration order with the primary
// and any duplicates removed. Blank names are skipped.
func CandidateModels(primary string, known []string) []string {
	candidates := make([]string, 0, len(known)+1)
	seen := make(map[string]struct{}, len(known)+1)

	add := func(model string) {
		model = strings.TrimSpace(model)
		if model == "" {
			return
		}
		if _, dup := seen[model]; dup {
			return
		}
		seen[model] = struct{}{}
		candidates = append(candidates, model)
	}

	add(primary)
	for _, model := range known {
		add(model)
	}

	return candidates
}
