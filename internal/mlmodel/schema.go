package mlmodel

import (
	"sort"
	"strconv"
	"strings"
)

// ColumnName builds the one-hot column name for an answer. Offset is the
// number of columns emitted before the question's own dummy set.
func ColumnName(offset int, option string) string {
	return ColumnPrefix(offset) + option
}

func ColumnPrefix(offset int) string {
	return "Q_" + strconv.Itoa(offset) + "_"
}

// BuildSchema lays out the dummy columns for each question in order. Answers
// of a question are deduplicated and sorted, and each question's prefix is the
// running column count. Blank answers get no column.
func BuildSchema(answers [][]string) (names []string, offsets []int) {
	offsets = make([]int, 0, len(answers))
	for _, values := range answers {
		uniq := make(map[string]struct{}, len(values))
		sorted := make([]string, 0, len(values))
		for _, v := range values {
			if strings.TrimSpace(v) == "" {
				continue
			}
			if _, ok := uniq[v]; ok {
				continue
			}
			uniq[v] = struct{}{}
			sorted = append(sorted, v)
		}
		sort.Strings(sorted)

		offset := len(names)
		offsets = append(offsets, offset)
		for _, v := range sorted {
			names = append(names, ColumnName(offset, v))
		}
	}
	return names, offsets
}

// DeriveOffsets recovers the per-question offsets from a feature name list by
// collecting distinct "Q_<n>_" prefixes in first-appearance order.
func DeriveOffsets(featureNames []string) []int {
	seen := make(map[int]bool)
	var offsets []int
	for _, name := range featureNames {
		offset, ok := parseOffset(name)
		if !ok || seen[offset] {
			continue
		}
		seen[offset] = true
		offsets = append(offsets, offset)
	}
	return offsets
}

// OffsetsMatch reports whether every offset prefixes at least one feature
// name. Offsets from a different training run usually fail this.
func OffsetsMatch(featureNames []string, offsets []int) bool {
	present := make(map[int]bool)
	for _, name := range featureNames {
		if n, ok := parseOffset(name); ok {
			present[n] = true
		}
	}
	for _, o := range offsets {
		if !present[o] {
			return false
		}
	}
	return true
}

func parseOffset(name string) (int, bool) {
	if !strings.HasPrefix(name, "Q_") {
		return 0, false
	}
	rest := name[2:]
	end := strings.IndexByte(rest, '_')
	if end <= 0 {
		return 0, false
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
