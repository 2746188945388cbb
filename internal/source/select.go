package source

import (
	"strconv"
	"strings"

	"github.com/corvind/mangasrc/internal/model"
)

// FilterChapters narrows a listing for the archive command. chapter
// matches by display number first and falls back to a 1-based listing
// index; rng and list are index based.
func FilterChapters(all []model.Chapter, chapter, rng, list string) []model.Chapter {
	if chapter != "" {
		if byNum := filterByNumber(all, chapter); len(byNum) > 0 {
			return byNum
		}
		if idx, err := strconv.Atoi(chapter); err == nil && idx > 0 && idx <= len(all) {
			return []model.Chapter{all[idx-1]}
		}

		return nil
	}

	if rng != "" {
		return filterRange(all, rng)
	}
	if list != "" {
		return filterList(all, list)
	}

	return all
}

func filterByNumber(all []model.Chapter, label string) []model.Chapter {
	want, err := strconv.ParseFloat(label, 64)
	if err != nil {
		return nil
	}

	var out []model.Chapter
	for _, c := range all {
		if c.Number == want {
			out = append(out, c)
		}
	}

	return out
}

func filterRange(all []model.Chapter, rng string) []model.Chapter {
	parts := strings.Split(rng, "-")
	if len(parts) != 2 {
		return nil
	}

	start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return nil
	}
	if start <= 0 || end <= 0 || start > end || end > len(all) {
		return nil
	}

	return all[start-1 : end]
}

func filterList(all []model.Chapter, list string) []model.Chapter {
	var out []model.Chapter

	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		idx, err := strconv.Atoi(p)
		if err != nil || idx <= 0 || idx > len(all) {
			continue
		}

		out = append(out, all[idx-1])
	}

	return out
}
