package commands

import (
	"strconv"
	"strings"
	"unicode"
)

// Args are a command's parsed parameters. Values are keyed by parameter
// name; prefix commands fill them by position or with name:value tokens,
// slash commands from their options.
type Args struct {
	Values map[string]string
	Extra  []string
}

// Get returns a parameter, empty when absent
func (a *Args) Get(name string) string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a.Values[name])
}

// Int returns a numeric parameter. Missing or malformed values are 0,
// which no instance or page uses.
func (a *Args) Int(name string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(a.Get(name), "#"))
	if err != nil {
		return 0
	}
	return n
}

// User returns a parameter holding a mention or a bare user id
func (a *Args) User(name string) string {
	return ParseMention(a.Get(name))
}

// ParseMention accepts <@id>, <@!id> or a bare numeric id
func ParseMention(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<@") && strings.HasSuffix(s, ">") {
		s = strings.TrimPrefix(s[2:len(s)-1], "!")
	}
	if s == "" {
		return ""
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return ""
		}
	}
	return s
}

// tokenize splits on whitespace, keeping double-quoted runs together.
// The quotes themselves are dropped, so offer:"#1 gold=5" is one token.
func tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		started bool
	)
	flush := func() {
		if started {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		started = false
	}
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case unicode.IsSpace(r) && !quoted:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()
	return tokens
}

// parseArgs binds tokens to cmd's parameters. name:value tokens bind by
// name, the rest fill unbound positional parameters in order. A greedy
// command's last parameter takes every leftover token.
func parseArgs(cmd *Command, tokens []string) *Args {
	args := &Args{Values: map[string]string{}}
	var positional []string
	for _, tok := range tokens {
		if key, value, ok := strings.Cut(tok, ":"); ok && cmd.accepts(strings.ToLower(key)) {
			args.Values[strings.ToLower(key)] = value
			continue
		}
		positional = append(positional, tok)
	}

	var open []string
	for _, p := range cmd.Params {
		if _, ok := args.Values[p]; !ok {
			open = append(open, p)
		}
	}
	for i, p := range open {
		if len(positional) == 0 {
			break
		}
		if cmd.Greedy && i == len(open)-1 {
			args.Values[p] = strings.Join(positional, " ")
			positional = nil
			break
		}
		args.Values[p] = positional[0]
		positional = positional[1:]
	}
	args.Extra = positional
	return args
}
