package ratetable

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/guttosm/ratebook/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRates = "date,exchange_rate\n" +
	"2011-01-03,0.3\n" +
	"2011-01-09,0.32\n" +
	"2012-01-11,7.1\n"

func mustLoad(t *testing.T, content string) *Table {
	t.Helper()
	tbl, err := Load(strings.NewReader(content))
	require.NoError(t, err)
	return tbl
}

func TestLoad_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    []models.RateEntry
		wantErr error
	}{
		{
			name:    "header and rows",
			content: sampleRates,
			want: []models.RateEntry{
				{Date: "2011-01-03", Rate: 0.3},
				{Date: "2011-01-09", Rate: 0.32},
				{Date: "2012-01-11", Rate: 7.1},
			},
		},
		{
			name:    "unsorted input is ordered",
			content: "2012-02-29,1.0\n2011-01-03,0.3\n2011-01-09,0.32\n",
			want: []models.RateEntry{
				{Date: "2011-01-03", Rate: 0.3},
				{Date: "2011-01-09", Rate: 0.32},
				{Date: "2012-02-29", Rate: 1.0},
			},
		},
		{
			name:    "blank lines before header",
			content: "\n   \ndate,exchange_rate\n2011-01-03,0.3\n",
			want:    []models.RateEntry{{Date: "2011-01-03", Rate: 0.3}},
		},
		{
			name:    "crlf line endings",
			content: "date,exchange_rate\r\n2011-01-03,0.3\r\n",
			want:    []models.RateEntry{{Date: "2011-01-03", Rate: 0.3}},
		},
		{
			name:    "fields are trimmed",
			content: "  2011-01-03 ,\t0.3  \n",
			want:    []models.RateEntry{{Date: "2011-01-03", Rate: 0.3}},
		},
		{
			name:    "malformed rows dropped",
			content: "2011-01-03,0.3\nno comma here\n,0.5\n2011-01-04,\n2011-01-05,abc\n",
			want:    []models.RateEntry{{Date: "2011-01-03", Rate: 0.3}},
		},
		{
			name:    "lenient rate parse",
			content: "2011-01-03,0.3usd\n2011-01-04,1e2x\n",
			want: []models.RateEntry{
				{Date: "2011-01-03", Rate: 0.3},
				{Date: "2011-01-04", Rate: 100},
			},
		},
		{
			name:    "split on first comma only",
			content: "2011-01-03,0.3,extra\n",
			want:    []models.RateEntry{{Date: "2011-01-03", Rate: 0.3}},
		},
		{
			name:    "last duplicate wins",
			content: "2011-01-03,0.3\n2011-01-03,0.4\n",
			want:    []models.RateEntry{{Date: "2011-01-03", Rate: 0.4}},
		},
		{
			name:    "header only after first line is a dropped row",
			content: "2011-01-03,0.3\ndate,exchange_rate\n",
			want:    []models.RateEntry{{Date: "2011-01-03", Rate: 0.3}},
		},
		{
			name:    "overflowing rate dropped",
			content: "2011-01-03,1e999\n2011-01-04,2\n",
			want:    []models.RateEntry{{Date: "2011-01-04", Rate: 2}},
		},
		{name: "empty input", content: "", wantErr: ErrEmptyTable},
		{name: "header and blanks only", content: "date,exchange_rate\n\n\n", wantErr: ErrEmptyTable},
		{name: "only garbage", content: "foo\nbar,\n,baz\n", wantErr: ErrEmptyTable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := Load(strings.NewReader(tc.content))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, tbl)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, tbl.Entries("", ""))
			assert.Equal(t, len(tc.want), tbl.Len())
		})
	}
}

func TestLoad_EmptyTableMessage(t *testing.T) {
	_, err := Load(strings.NewReader("date,exchange_rate\n"))
	require.Error(t, err)
	assert.Equal(t, "empty rate database.", err.Error())
}

func TestLoad_LongRows(t *testing.T) {
	content := "2011-01-03,0.3\n" +
		"2011-01-04," + strings.Repeat("x", 2<<20) + "junk\n" +
		"2011-01-05," + strings.Repeat("9", 2<<20) + "\n" +
		"2011-01-09,0.32\n"

	tbl, err := Load(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, []models.RateEntry{
		{Date: "2011-01-03", Rate: 0.3},
		{Date: "2011-01-09", Rate: 0.32},
	}, tbl.Entries("", ""))
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("disk read failed") }

func TestLoad_ReadError(t *testing.T) {
	_, err := Load(brokenReader{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyTable))
	assert.Contains(t, err.Error(), "read reference data after line 0")
}

func TestLookup(t *testing.T) {
	tbl := mustLoad(t, sampleRates)

	cases := []struct {
		name     string
		date     string
		wantOK   bool
		wantDate string
		wantRate float64
	}{
		{name: "exact first", date: "2011-01-03", wantOK: true, wantDate: "2011-01-03", wantRate: 0.3},
		{name: "exact middle", date: "2011-01-09", wantOK: true, wantDate: "2011-01-09", wantRate: 0.32},
		{name: "exact last", date: "2012-01-11", wantOK: true, wantDate: "2012-01-11", wantRate: 7.1},
		{name: "between uses predecessor", date: "2011-01-10", wantOK: true, wantDate: "2011-01-09", wantRate: 0.32},
		{name: "just after first", date: "2011-01-04", wantOK: true, wantDate: "2011-01-03", wantRate: 0.3},
		{name: "just before last", date: "2012-01-10", wantOK: true, wantDate: "2011-01-09", wantRate: 0.32},
		{name: "future clamps to latest", date: "2030-06-01", wantOK: true, wantDate: "2012-01-11", wantRate: 7.1},
		{name: "before first", date: "2011-01-02", wantOK: false},
		{name: "far past", date: "0001-01-01", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tbl.Lookup(tc.date)
			require.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				assert.Equal(t, models.RateEntry{}, got)
				return
			}
			assert.Equal(t, tc.wantDate, got.Date)
			assert.Equal(t, tc.wantRate, got.Rate)
		})
	}
}

func TestLookup_SingleEntry(t *testing.T) {
	tbl := mustLoad(t, "2011-01-03,0.3\n")

	got, ok := tbl.Lookup("2011-01-03")
	assert.True(t, ok)
	assert.Equal(t, 0.3, got.Rate)

	got, ok = tbl.Lookup("2020-01-01")
	assert.True(t, ok)
	assert.Equal(t, "2011-01-03", got.Date)

	_, ok = tbl.Lookup("2010-12-31")
	assert.False(t, ok)
}

func TestLoad_Idempotent(t *testing.T) {
	a := mustLoad(t, sampleRates)
	b := mustLoad(t, sampleRates)
	assert.Equal(t, a.Entries("", ""), b.Entries("", ""))

	for _, d := range []string{"2000-01-01", "2011-01-03", "2011-01-05", "2011-06-30", "2012-01-11", "2099-12-31"} {
		ea, oka := a.Lookup(d)
		eb, okb := b.Lookup(d)
		assert.Equal(t, oka, okb, d)
		assert.Equal(t, ea, eb, d)
	}
}

func TestFromEntries(t *testing.T) {
	_, err := fromEntries(nil)
	require.ErrorIs(t, err, ErrEmptyTable)

	tbl, err := fromEntries([]models.RateEntry{
		{Date: "2011-01-09", Rate: 0.32},
		{Date: "2011-01-03", Rate: 0.3},
		{Date: "2011-01-09", Rate: 0.33},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, models.RateEntry{Date: "2011-01-03", Rate: 0.3}, tbl.First())
	assert.Equal(t, models.RateEntry{Date: "2011-01-09", Rate: 0.33}, tbl.Last())
}

func TestFromEntries_DropsNonFiniteRates(t *testing.T) {
	tbl, err := fromEntries([]models.RateEntry{
		{Date: "2011-01-03", Rate: 0.3},
		{Date: "2011-01-04", Rate: math.Inf(1)},
		{Date: "2011-01-05", Rate: math.Inf(-1)},
		{Date: "2011-01-06", Rate: math.NaN()},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())

	got, ok := tbl.Lookup("2011-01-06")
	require.True(t, ok)
	assert.Equal(t, models.RateEntry{Date: "2011-01-03", Rate: 0.3}, got)

	_, err = fromEntries([]models.RateEntry{{Date: "2011-01-04", Rate: math.Inf(1)}})
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestEntries_Range(t *testing.T) {
	tbl := mustLoad(t, sampleRates)

	cases := []struct {
		name     string
		from, to string
		want     []string
	}{
		{name: "open bounds", want: []string{"2011-01-03", "2011-01-09", "2012-01-11"}},
		{name: "inclusive bounds", from: "2011-01-03", to: "2011-01-09", want: []string{"2011-01-03", "2011-01-09"}},
		{name: "from between keys", from: "2011-01-04", want: []string{"2011-01-09", "2012-01-11"}},
		{name: "to between keys", to: "2011-12-31", want: []string{"2011-01-03", "2011-01-09"}},
		{name: "empty window", from: "2011-01-04", to: "2011-01-08", want: []string{}},
		{name: "inverted bounds", from: "2012-01-01", to: "2011-01-01", want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tbl.Entries(tc.from, tc.to)
			dates := make([]string, 0, len(got))
			for _, e := range got {
				dates = append(dates, e.Date)
			}
			assert.Equal(t, tc.want, dates)
		})
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	tbl := mustLoad(t, sampleRates)
	entries := tbl.Entries("", "")
	entries[0].Rate = 99

	got, ok := tbl.Lookup("2011-01-03")
	require.True(t, ok)
	assert.Equal(t, 0.3, got.Rate)
}
