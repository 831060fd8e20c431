package block

import "valuematch/dictionary"

// Option toggles a stage of the extraction pipeline.
type Option func(*options)

type options struct {
	dates       bool
	coordinates bool
	strNumber   bool
	strCustom   bool
	roman       bool
	foldAccents bool
	dict        *dictionary.Dictionary
}

func defaultOptions() options {
	return options{
		dates:       true,
		coordinates: true,
		strNumber:   true,
		strCustom:   true,
		roman:       true,
	}
}

// WithDates toggles date extraction. Enabled by default.
func WithDates(on bool) Option {
	return func(o *options) { o.dates = on }
}

// WithCoordinates toggles coordinate extraction. Enabled by default.
func WithCoordinates(on bool) Option {
	return func(o *options) { o.coordinates = on }
}

// WithStrNumber toggles extraction of words holding digits. Enabled by
// default.
func WithStrNumber(on bool) Option {
	return func(o *options) { o.strNumber = on }
}

// WithStrCustom toggles extraction of dictionary keys. Enabled by default.
func WithStrCustom(on bool) Option {
	return func(o *options) { o.strCustom = on }
}

// WithRomanConversion toggles turning roman numerals into integers.
// Enabled by default.
func WithRomanConversion(on bool) Option {
	return func(o *options) { o.roman = on }
}

// WithAccentFolding toggles removing accents before extraction, so that
// "Zürich" reads as "Zurich". Disabled by default.
func WithAccentFolding(on bool) Option {
	return func(o *options) { o.foldAccents = on }
}

// WithDictionary sets the dictionary used for str_custom extraction. The
// embedded default dictionary is used otherwise.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(o *options) { o.dict = d }
}
