package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// CalculateTotalPages returns number of pages for a paginated listing
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}

	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}

	return pages
}
