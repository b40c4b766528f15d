package extract

// Closed vocabularies for the rule-based extraction path. Keeping them as
// package-level tables makes the vocabulary a single testable unit and
// leaves room to swap in a richer gazetteer without touching the extraction
// control flow. Entries are lower-cased; order matters, since the first
// match wins.

// Cities lists every city name the rule-based path can recognize.
var Cities = []string{
	"new york",
	"los angeles",
	"chicago",
	"san francisco",
	"miami",
	"london",
	"tokyo",
	"paris",
	"sydney",
	"rio de janeiro",
}

// Airlines lists every airline name the rule-based path can recognize.
var Airlines = []string{
	"global airways",
	"pacific routes",
	"euro connect",
	"ocean pacific",
	"south american airways",
}
