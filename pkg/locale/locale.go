// Package locale resolves locale-dependent calendar layout data. It wraps
// a BCP-47 language tag and answers the one question the calendar needs a
// locale for: which weekday starts the week. The territory table is
// embedded at build time and follows CLDR week data.
package locale

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed weekstart.yaml
var weekStartYAML []byte

type weekStartTable struct {
	Sunday   []string `yaml:"sunday"`
	Saturday []string `yaml:"saturday"`
}

var (
	tableOnce sync.Once
	byRegion  map[string]time.Weekday
)

func regionTable() map[string]time.Weekday {
	tableOnce.Do(func() {
		var table weekStartTable
		if err := yaml.Unmarshal(weekStartYAML, &table); err != nil {
			// The table is compiled in; a parse failure is a build defect.
			panic(fmt.Sprintf("locale: bad embedded week data: %v", err))
		}
		byRegion = make(map[string]time.Weekday, len(table.Sunday)+len(table.Saturday))
		for _, r := range table.Sunday {
			byRegion[r] = time.Sunday
		}
		for _, r := range table.Saturday {
			byRegion[r] = time.Saturday
		}
	})
	return byRegion
}

// Locale is an immutable, validated locale identifier.
type Locale struct {
	tag language.Tag
}

// Default is the locale used when none is configured.
var Default = Locale{tag: language.AmericanEnglish}

// Parse validates a BCP-47 tag such as "en-US" or "fr".
func Parse(s string) (Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}, fmt.Errorf("locale: parse %q: %w", s, err)
	}
	return Locale{tag: tag}, nil
}

// MustParse is Parse for compile-time-known tags; it panics on error.
func MustParse(s string) Locale {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// FromTag wraps an already-parsed language tag.
func FromTag(tag language.Tag) Locale {
	return Locale{tag: tag}
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag { return l.tag }

// String returns the canonical BCP-47 form, e.g. "en-US".
func (l Locale) String() string { return l.tag.String() }

// IsZero reports whether l is the unconfigured zero value.
func (l Locale) IsZero() bool { return l.tag == language.Tag{} }

// FirstDayOfWeek returns the weekday that starts the week in this
// locale's territory. Locales without a resolvable territory, and
// territories absent from the table, default to Monday.
func (l Locale) FirstDayOfWeek() time.Weekday {
	if l.IsZero() {
		l = Default
	}
	region, conf := l.tag.Region()
	if conf == language.No {
		return time.Monday
	}
	if day, ok := regionTable()[region.String()]; ok {
		return day
	}
	return time.Monday
}
