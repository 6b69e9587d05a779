package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Normalize(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	filter := Filter{
		DateRange: DateRange{
			Start: time.Date(2024, 3, 1, 15, 30, 0, 0, loc),
			End:   time.Date(2024, 3, 31, 23, 59, 0, 0, loc),
		},
		Nucleo:    " Marcenaria ",
		Loja:      "\tL1",
		Vendedor:  "v1 ",
		Arquiteto: " a1",
	}

	normalized := filter.Normalize(loc)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), normalized.DateRange.Start)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, loc), normalized.DateRange.End)
	assert.Equal(t, "Marcenaria", normalized.Nucleo)
	assert.Equal(t, "L1", normalized.Loja)
	assert.Equal(t, "v1", normalized.Vendedor)
	assert.Equal(t, "a1", normalized.Arquiteto)
	assert.Equal(t, " Marcenaria ", filter.Nucleo)
}

func TestFilter_Validate(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, Filter{DateRange: DateRange{Start: start, End: end}}.Validate())
	assert.True(t, errors.Is(Filter{}.Validate(), ErrInvalidFilter))
	assert.True(t, errors.Is(Filter{DateRange: DateRange{Start: end, End: start}}.Validate(), ErrInvalidFilter))
	assert.True(t, errors.Is(Filter{DateRange: DateRange{Start: start, End: end}, Status: "x"}.Validate(), ErrInvalidFilter))
}
