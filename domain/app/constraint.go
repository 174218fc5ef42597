package app

import "regexp"

type RuleKind uint8

const (
	RuleRequired RuleKind = iota
	RuleMinLength
	RuleExactLength
	RulePattern
	RuleOneOf
	RuleEmail
)

// Rule is one check on a column. Length, Pattern and Values are read
// according to Kind; Reason is appended to the column label on failure.
type Rule struct {
	Kind    RuleKind
	Length  int
	Pattern *regexp.Regexp
	Values  []string
	Reason  string
}

// Constraint lists the rules for one required column, evaluated in order.
type Constraint struct {
	Column string
	Label  string
	Rules  []Rule
}
