package ratetable

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/guttosm/ratebook/internal/domain/models"
	"github.com/guttosm/ratebook/internal/logger"
	"github.com/guttosm/ratebook/internal/numeric"
	"github.com/guttosm/ratebook/internal/textline"
)

// ReferenceHeader is the optional first line of a reference dataset.
const ReferenceHeader = "date,exchange_rate"

const fieldSpace = " \t\r\n"

// ErrEmptyTable is returned by Load when the reference data yields no usable row.
var ErrEmptyTable = errors.New("empty rate database.") //nolint:staticcheck // user-facing diagnostic text

// Table is an immutable, date-ordered set of rates.
//
// dates is sorted ascending and unique; rates[i] is the rate for dates[i].
type Table struct {
	dates []string
	rates []float64
}

// Load reads a reference dataset and builds a Table.
//
// Behavior:
//   - Rows are "date,rate", split on the first comma. Blank lines and a
//     leading "date,exchange_rate" header are skipped.
//   - Rows without a comma, with an empty field, or whose rate has no numeric
//     prefix (or overflows) are dropped silently, whatever their length.
//   - The rate parse is lenient: trailing characters after the number are
//     ignored.
//   - For duplicate dates the last row wins.
//
// Returns:
//   - *Table: the sorted table.
//   - error: ErrEmptyTable when no row survives, or the reader's error.
func Load(r io.Reader) (*Table, error) {
	var entries []models.RateEntry
	lr := textline.NewReader(r)

	headerChecked := false
	lineNumber, dropped := 0, 0

	for lr.Next() {
		lineNumber++
		line := lr.Text()
		if strings.Trim(line, fieldSpace) == "" {
			continue
		}

		if !headerChecked {
			headerChecked = true
			if strings.Trim(line, fieldSpace) == ReferenceHeader {
				continue
			}
		}

		date, raw, ok := strings.Cut(line, ",")
		if !ok {
			dropped++
			continue
		}
		date = strings.Trim(date, fieldSpace)
		raw = strings.Trim(raw, fieldSpace)
		if date == "" || raw == "" {
			dropped++
			continue
		}

		rate, ok := numeric.ParseLenient(raw)
		if !ok || math.IsInf(rate, 0) {
			dropped++
			continue
		}

		entries = append(entries, models.RateEntry{Date: date, Rate: rate})
	}
	if err := lr.Err(); err != nil {
		return nil, fmt.Errorf("read reference data after line %d: %w", lineNumber, err)
	}

	logger.L().Debug().
		Int("lines", lineNumber).
		Int("dropped", dropped).
		Int("rows", len(entries)).
		Msg("reference data read")

	return fromEntries(entries)
}

// fromEntries applies Load's row rules to already-split entries: non-finite
// rates are dropped and later entries overwrite earlier ones that share a
// date.
func fromEntries(entries []models.RateEntry) (*Table, error) {
	byDate := make(map[string]float64, len(entries))
	for _, e := range entries {
		if math.IsInf(e.Rate, 0) || math.IsNaN(e.Rate) {
			continue
		}
		byDate[e.Date] = e.Rate
	}
	if len(byDate) == 0 {
		return nil, ErrEmptyTable
	}
	return fromMap(byDate), nil
}

func fromMap(byDate map[string]float64) *Table {
	t := &Table{
		dates: make([]string, 0, len(byDate)),
		rates: make([]float64, len(byDate)),
	}
	for d := range byDate {
		t.dates = append(t.dates, d)
	}
	sort.Strings(t.dates)
	for i, d := range t.dates {
		t.rates[i] = byDate[d]
	}
	return t
}

// Lookup returns the rate in force on date: the entry for date itself, or for
// the closest earlier date. Dates after the last entry resolve to the last
// entry. The bool is false when date precedes every entry.
//
// date must already be a well-formed YYYY-MM-DD string.
func (t *Table) Lookup(date string) (models.RateEntry, bool) {
	i := sort.SearchStrings(t.dates, date)
	switch {
	case i == len(t.dates):
		i--
	case t.dates[i] == date:
	case i == 0:
		return models.RateEntry{}, false
	default:
		i--
	}
	return models.RateEntry{Date: t.dates[i], Rate: t.rates[i]}, true
}

// Len returns the number of distinct dates.
func (t *Table) Len() int { return len(t.dates) }

// First returns the earliest entry.
func (t *Table) First() models.RateEntry {
	return models.RateEntry{Date: t.dates[0], Rate: t.rates[0]}
}

// Last returns the latest entry.
func (t *Table) Last() models.RateEntry {
	n := len(t.dates) - 1
	return models.RateEntry{Date: t.dates[n], Rate: t.rates[n]}
}

// Entries returns a copy of the entries dated from..to inclusive, in
// ascending date order. An empty bound is open.
func (t *Table) Entries(from, to string) []models.RateEntry {
	lo, hi := 0, len(t.dates)
	if from != "" {
		lo = sort.SearchStrings(t.dates, from)
	}
	if to != "" {
		hi = sort.Search(len(t.dates), func(i int) bool { return t.dates[i] > to })
	}
	if lo >= hi {
		return []models.RateEntry{}
	}
	out := make([]models.RateEntry, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, models.RateEntry{Date: t.dates[i], Rate: t.rates[i]})
	}
	return out
}
