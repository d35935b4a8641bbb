// internal/catalog/pages.go
package catalog

import "strconv"

// Ellipsis is the marker emitted between compressed page runs.
const Ellipsis = "..."

// PageNumbers produces the compressed page-marker list shown between the
// previous/next controls: page 1, an ellipsis when the window around the
// current page is detached from it, every page within two of the current
// page, a trailing ellipsis when detached from the end, and the last page.
// For currentPage=10, totalPages=20 this yields
// [1 ... 8 9 10 11 12 ... 20].
func PageNumbers(currentPage, totalPages int) []string {
	const delta = 2

	var window []int
	lo := currentPage - delta
	if lo < 2 {
		lo = 2
	}
	hi := currentPage + delta
	if hi > totalPages-1 {
		hi = totalPages - 1
	}
	for i := lo; i <= hi; i++ {
		window = append(window, i)
	}

	markers := []string{"1"}
	if currentPage-delta > 2 {
		markers = append(markers, Ellipsis)
	}

	for _, page := range window {
		markers = append(markers, strconv.Itoa(page))
	}

	if currentPage+delta < totalPages-1 {
		markers = append(markers, Ellipsis, strconv.Itoa(totalPages))
	} else if totalPages > 1 {
		markers = append(markers, strconv.Itoa(totalPages))
	}

	return markers
}
