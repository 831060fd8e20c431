package extract

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	monthNames = `(?P<mname>january|february|march|april|may|june|july|august|september|october|november|december|` +
		`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\.?`
	ordinal   = `(?:st|nd|rd|th)?`
	separator = `[\s,./-]`
	clock     = `(?:(?:\s+|t)(?P<hour>\d{1,2}):(?P<minute>\d{2})` +
		`(?::(?P<second>\d{2})(?:\.(?P<frac>\d{1,9}))?)?` +
		`(?:\s*(?P<ampm>am|pm))?` +
		`(?P<zone>z|[+-]\d{2}:?\d{2})?)?\b`
)

// datePatterns are tried on the whole input; overlapping matches are
// resolved in favor of the earliest, then the longest.
var datePatterns = []*regexp.Regexp{
	// 2015-05-01, 2015/05/01, 2015-05-01T14:30:00Z
	regexp.MustCompile(`(?i)\b(?P<year>\d{4})(?P<sep1>[-/.])(?P<month>\d{1,2})(?P<sep2>[-/.])(?P<day>\d{1,2})` + clock),
	// 05/01/2015, 25.12.2015
	regexp.MustCompile(`(?i)\b(?P<first>\d{1,2})(?P<sep1>[/.-])(?P<second_field>\d{1,2})(?P<sep2>[/.-])(?P<year>\d{4})` + clock),
	// 25 May 1977, 10-Dec-2015, 1st of June 2001
	regexp.MustCompile(`(?i)\b(?P<day>\d{1,2})` + ordinal + separator + `*(?:of\s+)?` + monthNames +
		separator + `*(?P<year>\d{4})` + clock),
	// May 25, 1977
	regexp.MustCompile(`(?i)\b` + monthNames + separator + `*(?P<day>\d{1,2})` + ordinal +
		separator + `+(?P<year>\d{4})` + clock),
	// 1977 May 25
	regexp.MustCompile(`(?i)\b(?P<year>\d{4})` + separator + `+` + monthNames + separator +
		`*(?P<day>\d{1,2})` + ordinal + clock),
}

type dateMatch struct {
	start, end int
	at         time.Time
}

// Dates finds every complete calendar date in s, in order of occurrence.
// Day, month and year must all be present; numeric dates read month first
// unless the first field cannot be a month. A trailing time of day may carry
// seconds, a fraction, am/pm and a Z or numeric offset; without a zone the
// date is UTC. Each matched substring is removed once and the rest trimmed.
//
//	Dates("Istanbul 25 May 2005 ") // "Istanbul", [2005-05-25]
func Dates(s string) (string, []time.Time) {
	var found []dateMatch

	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
			if at, ok := buildDate(re, s, loc); ok {
				found = append(found, dateMatch{start: loc[0], end: loc[1], at: at})
			}
		}
	}

	slices.SortFunc(found, func(a, b dateMatch) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(b.end, a.end))
	})

	var (
		dates []time.Time
		spans []string
		last  = -1
	)

	for _, m := range found {
		if m.start < last {
			continue
		}

		dates = append(dates, m.at)
		spans = append(spans, s[m.start:m.end])
		last = m.end
	}

	for _, span := range spans {
		s = strings.Replace(s, span, "", 1)
	}

	return strings.TrimSpace(s), dates
}

func buildDate(re *regexp.Regexp, s string, loc []int) (time.Time, bool) {
	group := func(name string) string {
		i := re.SubexpIndex(name)
		if i < 0 || loc[2*i] < 0 {
			return ""
		}

		return s[loc[2*i]:loc[2*i+1]]
	}

	number := func(name string) int {
		n, err := strconv.Atoi(group(name))
		if err != nil {
			return -1
		}

		return n
	}

	year, month, day := number("year"), number("month"), number("day")

	if name := group("mname"); name != "" {
		month = monthNumber(name)
	}

	if group("sep1") != group("sep2") {
		return time.Time{}, false
	}

	if first := group("first"); first != "" {
		month, day = number("first"), number("second_field")
		if month > 12 {
			month, day = day, month
		}
	}

	hour, minute, second, nsec := 0, 0, 0, 0
	if group("hour") != "" {
		hour, minute = number("hour"), number("minute")
		if group("second") != "" {
			second = number("second")
		}

		if frac := group("frac"); frac != "" {
			nsec, _ = strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
		}
	}

	if ampm := strings.ToLower(group("ampm")); ampm != "" {
		if hour < 1 || hour > 12 {
			return time.Time{}, false
		}

		hour %= 12
		if ampm == "pm" {
			hour += 12
		}
	}

	tz, ok := zone(group("zone"))

	if !ok || !validClock(hour, minute, second) || month < 1 || month > 12 || year < 1 {
		return time.Time{}, false
	}

	at := time.Date(year, time.Month(month), day, hour, minute, second, nsec, tz)
	if at.Day() != day || at.Month() != time.Month(month) {
		return time.Time{}, false
	}

	return at, true
}

// zone resolves a "Z" or "+hh:mm" suffix; no suffix means UTC.
func zone(z string) (*time.Location, bool) {
	if z == "" || strings.EqualFold(z, "z") {
		return time.UTC, true
	}

	digits := strings.ReplaceAll(z[1:], ":", "")
	hh, _ := strconv.Atoi(digits[:2])
	mm, _ := strconv.Atoi(digits[2:])

	if hh > 14 || mm > 59 {
		return nil, false
	}

	offset := hh*3600 + mm*60
	if z[0] == '-' {
		offset = -offset
	}

	return time.FixedZone(z, offset), true
}

func monthNumber(name string) int {
	const months = "janfebmaraprmayjunjulaugsepoctnovdec"

	i := strings.Index(months, strings.ToLower(name)[:3])
	if i < 0 || i%3 != 0 {
		return -1
	}

	return i/3 + 1
}

func validClock(hour, minute, second int) bool {
	return hour >= 0 && hour < 24 && minute >= 0 && minute < 60 && second >= 0 && second < 60
}
