// Package resolver turns a free-text bank description into at most one
// reference that can be looked up against projects, challenges and accounts.
package resolver

import (
	"regexp"
	"strings"
)

type Kind int

const (
	KindNone Kind = iota
	KindReferralCode
	KindChallengeCode
	KindProjectCode
	KindAccountCode
	KindRawToken
)

func (k Kind) String() string {
	switch k {
	case KindReferralCode:
		return "referral"
	case KindChallengeCode:
		return "challenge"
	case KindProjectCode:
		return "project"
	case KindAccountCode:
		return "account"
	case KindRawToken:
		return "raw"
	default:
		return "none"
	}
}

// Reference is the single thing a description points at.
type Reference struct {
	Kind Kind
	Code string
}

// Prefixes are the markers recognised in a description, one per reference kind.
type Prefixes struct {
	Referral  string
	Challenge string
	Project   string
	Account   string
}

func DefaultPrefixes() Prefixes {
	return Prefixes{
		Referral:  "REFER",
		Challenge: "CHALLENGE",
		Project:   "PROJECT",
		Account:   "ACCOUNT",
	}
}

type matcher struct {
	kind    Kind
	pattern *regexp.Regexp
}

// Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	matchers []matcher
}

// New builds a resolver that tests prefixes in the order referral,
// challenge, project, account. Empty prefixes are skipped.
func New(prefixes Prefixes) *Resolver {
	ordered := []struct {
		kind   Kind
		prefix string
	}{
		{KindReferralCode, prefixes.Referral},
		{KindChallengeCode, prefixes.Challenge},
		{KindProjectCode, prefixes.Project},
		{KindAccountCode, prefixes.Account},
	}

	r := &Resolver{}
	for _, p := range ordered {
		prefix := strings.TrimSpace(p.prefix)
		if prefix == "" {
			continue
		}
		// The prefix must open the description or follow whitespace, and is
		// separated from the code by whitespace or one of : - # / =.
		pattern := regexp.MustCompile(`(?i)(?:^|\s)` + regexp.QuoteMeta(prefix) + `(?:\s*[:#/=-]\s*|\s+)(\S+)`)
		r.matchers = append(r.matchers, matcher{kind: p.kind, pattern: pattern})
	}
	return r
}

// Resolve returns the first recognised prefixed code, the trimmed
// description as a raw token when no prefix matches, or KindNone for an
// empty description.
func (r *Resolver) Resolve(description string) Reference {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return Reference{Kind: KindNone}
	}

	for _, m := range r.matchers {
		match := m.pattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		code := strings.Trim(match[1], ":#/=-.,;")
		if code == "" {
			continue
		}
		return Reference{Kind: m.kind, Code: code}
	}

	return Reference{Kind: KindRawToken, Code: trimmed}
}

// LooksLikeEmail reports whether a raw token could be an account e-mail.
func LooksLikeEmail(token string) bool {
	at := strings.Index(token, "@")
	return at > 0 && at < len(token)-1 && !strings.ContainsAny(token, " \t")
}
