package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// La fecha de corte de los filtros "today"/"upcoming" debe ser la medianoche
// del día calendario local, no el día UTC: en una zona -05 una mañana local
// todavía pertenece al día UTC anterior.
func TestStartOfDay_MedianocheDelDiaLocal(t *testing.T) {
	bogota := time.FixedZone("-05", -5*60*60)

	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"mañana local en zona -05",
			time.Date(2026, 8, 31, 10, 0, 0, 0, bogota),
			time.Date(2026, 8, 31, 0, 0, 0, 0, bogota),
		},
		{
			"justo antes de medianoche",
			time.Date(2026, 8, 31, 23, 59, 59, 0, bogota),
			time.Date(2026, 8, 31, 0, 0, 0, 0, bogota),
		},
		{
			"exactamente medianoche",
			time.Date(2026, 8, 31, 0, 0, 0, 0, bogota),
			time.Date(2026, 8, 31, 0, 0, 0, 0, bogota),
		},
		{
			"UTC se comporta igual",
			time.Date(2026, 8, 31, 3, 15, 0, 0, time.UTC),
			time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := startOfDay(tc.in)
			assert.True(t, got.Equal(tc.want), "esperaba %s, obtuve %s", tc.want, got)
			assert.Equal(t, tc.in.Day(), got.Day(), "el corte debe quedar en el mismo día calendario local")
		})
	}
}
