// Package gate implements the script admission check: a coarse textual
// firewall over third-party script content, applied before a script is ever
// exposed to the execution sandbox.
//
// The gate scans for a fixed denylist of forbidden capability invocations.
// It is deliberately not a parser and not a sandbox; true isolation is the
// execution environment's job. A match means the load resolves to no result,
// an expected outcome rather than a fault.
package gate

import "regexp"

// Rule is one forbidden capability pattern.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// denylist covers capability escapes scripts must not reach for: spawning
// reserved entity types, touching the host process, filesystem or network,
// and dynamic code evaluation.
var denylist = []Rule{
	{"spawn-player", regexp.MustCompile(`\bspawnEntity\s*\(\s*['"]player['"]`)},
	{"spawn-portal", regexp.MustCompile(`\bspawnEntity\s*\(\s*['"]portal['"]`)},
	{"process-access", regexp.MustCompile(`\bprocess\s*\.\s*(env|exit|kill)\b`)},
	{"filesystem", regexp.MustCompile(`\brequire\s*\(\s*['"](fs|child_process|net)['"]`)},
	{"dynamic-eval", regexp.MustCompile(`\beval\s*\(`)},
	{"function-constructor", regexp.MustCompile(`\bnew\s+Function\s*\(`)},
	{"raw-fetch", regexp.MustCompile(`\bfetch\s*\(\s*['"]file:`)},
}

// Verdict is the result of an admission check.
type Verdict struct {
	Admitted bool
	Rule     string // name of the matched rule when not admitted
}

// Admit scans source against the denylist. The first matching rule decides;
// source that matches nothing is admitted.
func Admit(source string) Verdict {
	for _, rule := range denylist {
		if rule.Pattern.MatchString(source) {
			return Verdict{Admitted: false, Rule: rule.Name}
		}
	}
	return Verdict{Admitted: true}
}
