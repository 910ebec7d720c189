package shared

// NormalizePagination clamps page and pageSize into usable ranges.
// Out-of-range values fall back rather than erroring out.
func NormalizePagination(page, pageSize, defaultSize, maxSize int) (int, int) {
	if defaultSize <= 0 {
		defaultSize = 10
	}
	if maxSize <= 0 {
		maxSize = 100
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}
