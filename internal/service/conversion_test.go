package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/guttosm/ratebook/internal/domain/models"
	"github.com/guttosm/ratebook/internal/ingestion"
	"github.com/guttosm/ratebook/internal/ratetable"
)

func newService(t *testing.T) ConversionService {
	t.Helper()
	tbl, err := ratetable.Load(strings.NewReader("date,exchange_rate\n2011-01-03,0.3\n2011-01-09,0.32\n2012-01-11,7.1\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewConversionService(tbl)
}

func TestConversionService_Convert(t *testing.T) {
	svc := newService(t)
	records := "date | value\n2011-01-03 | 3\n2012-01-11 | -1\n2001-42-42\n2012-01-11 | 1\n"

	out, err := svc.Convert(context.Background(), strings.NewReader(records))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if want := (ingestion.Summary{Lines: 5, Results: 2, Errors: 2, Skipped: 1}); out.Summary != want {
		t.Fatalf("summary=%+v, want %+v", out.Summary, want)
	}
	if len(out.Results) != 2 || out.Results[0].String() != "2011-01-03 => 3 = 0.9" || out.Results[1].String() != "2012-01-11 => 1 = 7.1" {
		t.Fatalf("unexpected results: %+v", out.Results)
	}
	if len(out.Errors) != 2 || out.Errors[0].Kind != models.NegativeQuantity || out.Errors[1].Kind != models.MalformedLine {
		t.Fatalf("unexpected errors: %+v", out.Errors)
	}
}

func TestConversionService_ConvertCanceled(t *testing.T) {
	svc := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := svc.Convert(ctx, strings.NewReader("2011-01-03 | 1\n"))
	if !errors.Is(err, context.Canceled) || out != nil {
		t.Fatalf("want context.Canceled and nil result, got out=%+v err=%v", out, err)
	}
}

func TestConversionService_RateFor_TableDriven(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name     string
		date     string
		wantErr  error
		wantDate string
		wantRate float64
	}{
		{name: "exact", date: "2011-01-03", wantDate: "2011-01-03", wantRate: 0.3},
		{name: "between keys", date: "2011-01-10", wantDate: "2011-01-09", wantRate: 0.32},
		{name: "after last", date: "2099-12-31", wantDate: "2012-01-11", wantRate: 7.1},
		{name: "before first", date: "2010-12-31", wantErr: ErrNoRate},
		{name: "malformed", date: "2011-1-3", wantErr: ErrInvalidDate},
		{name: "not a day", date: "2011-02-29", wantErr: ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.RateFor(tc.date)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.Date != tc.wantDate || got.Rate != tc.wantRate {
				t.Fatalf("got %+v, want date=%s rate=%v", got, tc.wantDate, tc.wantRate)
			}
		})
	}
}

func TestConversionService_Rates(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name     string
		from, to string
		wantErr  error
		want     int
	}{
		{name: "whole table", want: 3},
		{name: "bounded", from: "2011-01-04", to: "2011-12-31", want: 1},
		{name: "bad from", from: "2011-13-01", wantErr: ErrInvalidDate},
		{name: "bad to", to: "yesterday", wantErr: ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Rates(tc.from, tc.to)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want err %v, got %v", tc.wantErr, err)
			}
			if len(got) != tc.want {
				t.Fatalf("got %d rates, want %d", len(got), tc.want)
			}
		})
	}
}

func TestConversionService_Summary(t *testing.T) {
	sum := newService(t).Summary()
	if sum.Count != 3 || sum.First.Date != "2011-01-03" || sum.Last.Date != "2012-01-11" || sum.Last.Rate != 7.1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}
