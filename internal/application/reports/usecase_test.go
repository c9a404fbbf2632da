package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laabuela/areperia-api/internal/application/reports"
	"github.com/laabuela/areperia-api/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolvePeriod_TodayYVacio(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 42, 7, 0, time.UTC)

	for _, period := range []string{"today", ""} {
		from, to, err := reports.ResolvePeriod(period, "", "", now)
		require.NoError(t, err, period)
		assert.Equal(t, day("2026-08-31"), from, "debe truncar al inicio del día")
		assert.Equal(t, day("2026-08-31"), to)
	}
}

func TestResolvePeriod_WeekArrancaLunes(t *testing.T) {
	// 2026-08-31 es lunes: la semana arranca ese mismo día
	from, to, err := reports.ResolvePeriod("week", "", "", day("2026-08-31"))
	require.NoError(t, err)
	assert.Equal(t, day("2026-08-31"), from)
	assert.Equal(t, day("2026-08-31"), to)

	// Jueves: la semana arranca el lunes anterior
	from, to, err = reports.ResolvePeriod("week", "", "", day("2026-09-03"))
	require.NoError(t, err)
	assert.Equal(t, day("2026-08-31"), from)
	assert.Equal(t, day("2026-09-03"), to)
}

func TestResolvePeriod_DomingoCierraSemana(t *testing.T) {
	// 2026-09-06 es domingo: pertenece a la semana que abrió el lunes 31
	from, to, err := reports.ResolvePeriod("week", "", "", day("2026-09-06"))
	require.NoError(t, err)
	assert.Equal(t, day("2026-08-31"), from)
	assert.Equal(t, day("2026-09-06"), to)
}

func TestResolvePeriod_MonthDesdeElPrimero(t *testing.T) {
	from, to, err := reports.ResolvePeriod("month", "", "", day("2026-08-19"))
	require.NoError(t, err)
	assert.Equal(t, day("2026-08-01"), from)
	assert.Equal(t, day("2026-08-19"), to)
}

func TestResolvePeriod_Custom(t *testing.T) {
	from, to, err := reports.ResolvePeriod("custom", "2026-07-01", "2026-07-15", day("2026-08-31"))
	require.NoError(t, err)
	assert.Equal(t, day("2026-07-01"), from)
	assert.Equal(t, day("2026-07-15"), to)

	// Un solo día también vale
	_, _, err = reports.ResolvePeriod("custom", "2026-07-01", "2026-07-01", day("2026-08-31"))
	assert.NoError(t, err)
}

func TestResolvePeriod_CustomInvalido(t *testing.T) {
	casos := []struct {
		nombre     string
		start, end string
	}{
		{"sin fechas", "", ""},
		{"start malformado", "01/07/2026", "2026-07-15"},
		{"end malformado", "2026-07-01", "15-07-2026"},
		{"end antes de start", "2026-07-15", "2026-07-01"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, _, err := reports.ResolvePeriod("custom", c.start, c.end, day("2026-08-31"))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestResolvePeriod_PeriodoDesconocido(t *testing.T) {
	_, _, err := reports.ResolvePeriod("quarter", "", "", day("2026-08-31"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
