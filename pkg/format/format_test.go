package format_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/go-headless/headless/pkg/date"
	"github.com/go-headless/headless/pkg/format"
	"github.com/go-headless/headless/pkg/locale"
)

func TestMonthYear(t *testing.T) {
	f := format.New(locale.MustParse("en-US"))
	d := date.New(2024, time.June, 15)
	if got := f.MonthYear(d); got != "June 2024" {
		t.Errorf("MonthYear = %q", got)
	}
}

func TestMonthYearRange(t *testing.T) {
	f := format.New(locale.MustParse("en-US"))
	tests := []struct {
		first, last date.Date
		want        string
	}{
		{date.New(2024, time.June, 1), date.New(2024, time.June, 30), "June 2024"},
		{date.New(2024, time.June, 1), date.New(2024, time.July, 1), "June - July 2024"},
		{date.New(2024, time.December, 1), date.New(2025, time.January, 1), "December 2024 - January 2025"},
	}
	for _, tt := range tests {
		if got := f.MonthYearRange(tt.first, tt.last); got != tt.want {
			t.Errorf("MonthYearRange(%v, %v) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestWeekdayNames_OrderFollowsFirstDay(t *testing.T) {
	f := format.New(locale.MustParse("en-US"))

	sun := f.WeekdayNames(time.Sunday, format.WeekdayShort)
	if want := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}; !reflect.DeepEqual(sun, want) {
		t.Errorf("sunday-first = %v, want %v", sun, want)
	}

	mon := f.WeekdayNames(time.Monday, format.WeekdayShort)
	if want := []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}; !reflect.DeepEqual(mon, want) {
		t.Errorf("monday-first = %v, want %v", mon, want)
	}
}

func TestWeekdayWidths(t *testing.T) {
	f := format.New(locale.Default)
	if got := f.Weekday(time.Wednesday, format.WeekdayNarrow); got != "W" {
		t.Errorf("narrow = %q", got)
	}
	if got := f.Weekday(time.Wednesday, format.WeekdayAbbreviated); got != "Wed" {
		t.Errorf("abbreviated = %q", got)
	}
	if got := f.Weekday(time.Wednesday, format.WeekdayLong); got != "Wednesday" {
		t.Errorf("long = %q", got)
	}
}

func TestSelectedDate(t *testing.T) {
	f := format.New(locale.Default)
	d := date.New(2024, time.June, 15)
	if got := f.SelectedDate(d); got != "Saturday, June 15, 2024" {
		t.Errorf("SelectedDate = %q", got)
	}
}

func TestSetLocale(t *testing.T) {
	f := format.New(locale.MustParse("en-US"))
	f.SetLocale(locale.MustParse("en-GB"))
	if got := f.Locale().String(); got != "en-GB" {
		t.Errorf("Locale after SetLocale = %q", got)
	}
}
