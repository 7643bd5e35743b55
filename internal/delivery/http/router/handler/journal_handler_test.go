package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/journal/resolve?"+rawQuery, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestRefFromQuery_DefaultsToNow(t *testing.T) {
	c := queryContext(t, "")

	ref, err := refFromQuery(c)

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ref, time.Minute)
}

func TestRefFromQuery_ParsesRFC3339WithOffset(t *testing.T) {
	c := queryContext(t, "ref=2025-03-15T23%3A59%3A59%2B08%3A00")

	ref, err := refFromQuery(c)

	require.NoError(t, err)
	assert.Equal(t, 2025, ref.Year())
	assert.Equal(t, time.March, ref.Month())
	assert.Equal(t, 15, ref.Day())
	_, offset := ref.Zone()
	assert.Equal(t, 8*3600, offset)
}

func TestRefFromQuery_AppliesIANAZone(t *testing.T) {
	c := queryContext(t, "ref=2025-03-09T12%3A00%3A00Z&timezone=America%2FNew_York")

	ref, err := refFromQuery(c)

	require.NoError(t, err)
	assert.Equal(t, "America/New_York", ref.Location().String())
}

func TestRefFromQuery_RejectsBadTimestamp(t *testing.T) {
	c := queryContext(t, "ref=yesterday")

	_, err := refFromQuery(c)

	assert.Error(t, err)
}

func TestRefFromQuery_RejectsUnknownZone(t *testing.T) {
	c := queryContext(t, "timezone=Mars%2FOlympus_Mons")

	_, err := refFromQuery(c)

	assert.Error(t, err)
}
