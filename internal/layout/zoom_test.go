package layout

import (
	"testing"

	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDayWidth_ScalesWithZoom(t *testing.T) {
	assert.Equal(t, 96.0, DayWidth(100, domain.ViewWeek))
	assert.Equal(t, 144.0, DayWidth(150, domain.ViewWeek))
	assert.Equal(t, 64.0, DayWidth(100, domain.ViewTwoWeek))
	assert.Equal(t, 32.0, DayWidth(100, domain.ViewMonth))
}

func TestDayWidth_WiderKindsGetNarrowerDays(t *testing.T) {
	week := DayWidth(100, domain.ViewWeek)
	twoWeek := DayWidth(100, domain.ViewTwoWeek)
	month := DayWidth(100, domain.ViewMonth)
	assert.Greater(t, week, twoWeek)
	assert.Greater(t, twoWeek, month)
}

func TestDayWidth_ClampsOutOfRangeZoom(t *testing.T) {
	for _, kind := range []domain.ViewKind{domain.ViewWeek, domain.ViewTwoWeek, domain.ViewMonth} {
		assert.Equal(t, DayWidth(MaxZoomPercent, kind), DayWidth(300, kind),
			"%s: zoom 300 must behave like zoom 200", kind)
		assert.Equal(t, DayWidth(MinZoomPercent, kind), DayWidth(0, kind),
			"%s: zoom 0 must behave like zoom 60", kind)
		assert.Equal(t, DayWidth(MinZoomPercent, kind), DayWidth(-40, kind),
			"%s: negative zoom must saturate at the minimum", kind)
	}
}

func TestClampZoom(t *testing.T) {
	assert.Equal(t, 60, ClampZoom(12))
	assert.Equal(t, 60, ClampZoom(60))
	assert.Equal(t, 135, ClampZoom(135))
	assert.Equal(t, 200, ClampZoom(200))
	assert.Equal(t, 200, ClampZoom(999))
}
