package normalize

import "strings"

// CompressPageRange elides the repeated leading digits of the end
// page: "419-426" becomes "419-26". The range is returned unchanged
// when there is no hyphen, when the two halves differ in length, or
// when the halves are identical.
func CompressPageRange(pages string) string {
	start, end, ok := strings.Cut(pages, "-")
	if !ok || len(start) != len(end) {
		return pages
	}
	i := 0
	for i < len(start) && start[i] == end[i] {
		i++
	}
	if i == 0 || i == len(end) {
		return pages
	}
	return start + "-" + end[i:]
}
