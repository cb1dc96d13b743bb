package remote

import "localjobs-engine/internal/domain"

// Merge combines locally stored jobs with remote summaries. Local records are
// authoritative and always returned in full; remote entries are appended only
// when their id is unseen, and at most maxRemote of them make it in. Both
// precedence and truncation are contracts, not incidental behavior.
func Merge(local, remote []domain.Job, maxRemote int) []domain.Job {
	out := append([]domain.Job(nil), local...)

	seen := make(map[string]bool, len(local))
	for _, j := range local {
		seen[j.ID] = true
	}

	added := 0
	for _, j := range remote {
		if added >= maxRemote {
			break
		}
		if j.ID == "" || seen[j.ID] {
			continue
		}
		seen[j.ID] = true
		out = append(out, j)
		added++
	}
	return out
}
