package run

import (
	"path"
	"path/filepath"
	"sort"

	"github.com/flarebyte/anubis-hooks/internal/gitfiles"
)

// candidateFiles resolves this run's candidate list. Explicit arguments win,
// otherwise the index or the HEAD tree is asked.
func candidateFiles(root string, allFiles bool, args []string) (gitfiles.Mode, []string, error) {
	if len(args) > 0 {
		return gitfiles.ModeList, normalizePaths(args), nil
	}
	if allFiles {
		files, err := gitfiles.Tracked(root)
		return gitfiles.ModeTracked, files, err
	}
	files, err := gitfiles.Staged(root)
	return gitfiles.ModeStaged, files, err
}

// normalizePaths cleans explicit paths into the repo-relative slash form the
// selectors expect, dropping duplicates and sorting for determinism.
func normalizePaths(args []string) []string {
	out := make([]string, 0, len(args))
	seen := make(map[string]struct{}, len(args))
	for _, a := range args {
		p := path.Clean(filepath.ToSlash(a))
		if p == "" || p == "." {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
