package ingestion

import (
	"strconv"
	"strings"

	"github.com/guttosm/ratebook/internal/domain/models"
	"github.com/guttosm/ratebook/internal/numeric"
	"github.com/guttosm/ratebook/internal/ratetable"
)

const (
	// RecordHeader is the optional first line of a record stream.
	RecordHeader = "date | value"

	// MaxQuantity is the largest accepted quantity (inclusive).
	MaxQuantity = 1000.0

	fieldSpace = " \t\r\n"

	// YYYY-MM-DD
	dateLen  = 10
	yearEnd  = 4
	monthEnd = 7
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ParseLine runs one record line through split, date validation, strict
// quantity parse, range check and rate lookup. The first failing stage
// decides the outcome.
//
// line is the raw line; blank lines and the header are the caller's concern.
func ParseLine(table *ratetable.Table, lineNumber int, line string) models.Outcome {
	bar := strings.IndexByte(line, '|')
	if bar < 0 {
		return failure(models.MalformedLine, lineNumber, line)
	}

	date := strings.Trim(line[:bar], fieldSpace)
	raw := strings.Trim(line[bar+1:], fieldSpace)

	if !ValidDate(date) {
		return failure(models.MalformedDate, lineNumber, date)
	}

	q, ok := numeric.ParseStrict(raw)
	if !ok {
		return failure(models.MalformedQuantity, lineNumber, raw)
	}

	switch {
	case q < 0:
		return failure(models.NegativeQuantity, lineNumber, raw)
	case q > MaxQuantity:
		return failure(models.QuantityTooLarge, lineNumber, raw)
	}

	rate, ok := table.Lookup(date)
	if !ok {
		return failure(models.NoRateAvailable, lineNumber, line)
	}

	rec := models.Record{Date: date, Quantity: q}
	return models.Outcome{Result: models.NewResult(lineNumber, rec, rate)}
}

// ValidDate reports whether d is a real calendar day written as YYYY-MM-DD:
// exactly ten characters, dashes at offsets 4 and 7, ASCII digits elsewhere,
// month 1-12 and a day that exists in that month (Gregorian leap years).
func ValidDate(d string) bool {
	if len(d) != dateLen {
		return false
	}
	for i := 0; i < len(d); i++ {
		if i == yearEnd || i == monthEnd {
			if d[i] != '-' {
				return false
			}
			continue
		}
		if d[i] < '0' || d[i] > '9' {
			return false
		}
	}

	// All three fields are digit-only here, so Atoi cannot fail.
	y, _ := strconv.Atoi(d[:yearEnd])
	m, _ := strconv.Atoi(d[yearEnd+1 : monthEnd])
	day, _ := strconv.Atoi(d[monthEnd+1:])

	if m < 1 || m > 12 {
		return false
	}
	maxDay := daysInMonth[m-1]
	if m == 2 && isLeap(y) {
		maxDay = 29
	}
	return day >= 1 && day <= maxDay
}

func isLeap(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

func failure(kind models.ErrorKind, lineNumber int, input string) models.Outcome {
	return models.Outcome{Err: &models.LineError{Kind: kind, Line: lineNumber, Input: input}}
}
