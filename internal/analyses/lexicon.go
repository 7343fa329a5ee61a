package analyses

// The lexicons drive both matching and output ordering: hits are reported in
// the order terms appear here, never in input order. Terms are stored
// lower-case because matching happens against normalized text.
var suspiciousTerms = []string{
	"wire transfer",
	"upfront payment",
	"no interview",
	"immediate start",
	"work from home guaranteed",
	"easy money",
	"pay fee",
	"training fee",
	"send money",
	"bank account",
	"social security",
	"processing fee",
}

var legitimateTerms = []string{
	"company website",
	"office location",
	"benefits package",
	"interview process",
	"job requirements",
	"qualifications",
	"responsibilities",
	"team",
	"company culture",
}
