package utils

import "time"

// ParseDate interpreta datas no formato yyyy-mm-dd no fuso informado.
// String vazia retorna o tempo zero.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	if loc == nil {
		loc = time.UTC
	}

	return time.ParseInLocation(time.DateOnly, dateStr, loc)
}
