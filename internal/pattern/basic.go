package pattern

import (
	"fmt"
	"strings"

	"github.com/cheerioskun/grepninja/internal/errs"
)

// translateBasic rewrites a POSIX basic expression as an extended one.
//
// In basic syntax \( \) \{ \} are the grouping and interval operators and the
// bare characters are literals. '*' is literal at the start of an expression,
// '^' anchors only at the start and '$' only at the end. \| \+ \? are accepted
// as their extended counterparts.
func translateBasic(expr string) (string, error) {
	var b strings.Builder
	b.Grow(len(expr) + 8)

	// exprStart is true where '^' anchors: the very start, after \( and after \|.
	// starLiteral is true where '*' has nothing to repeat.
	exprStart, starLiteral := true, true

	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == '\\':
			if i+1 >= len(expr) {
				return "", fmt.Errorf("trailing backslash")
			}
			d := expr[i+1]
			i += 2
			switch {
			case d == '(':
				b.WriteByte('(')
				exprStart, starLiteral = true, true
				continue
			case d == '|':
				b.WriteByte('|')
				exprStart, starLiteral = true, true
				continue
			case d == ')', d == '+', d == '?':
				b.WriteByte(d)
			case d == '{':
				end := strings.Index(expr[i:], `\}`)
				if end < 0 {
					return "", fmt.Errorf(`unmatched \{`)
				}
				b.WriteByte('{')
				b.WriteString(expr[i : i+end])
				b.WriteByte('}')
				i += end + 2
			case d == '}':
				return "", fmt.Errorf(`unmatched \}`)
			case d >= '1' && d <= '9':
				return "", errs.ErrBackReference
			case isAlnum(d):
				return "", fmt.Errorf(`unsupported escape \%c`, d)
			default:
				writeLiteral(&b, d)
			}

		case c == '[':
			end, err := bracketEnd(expr, i)
			if err != nil {
				return "", err
			}
			writeBracket(&b, expr[i:end])
			i = end

		case c == '*' && starLiteral:
			b.WriteString(`\*`)
			i++

		case c == '^' && exprStart:
			b.WriteByte('^')
			i++
			exprStart = false
			continue

		case c == '^':
			b.WriteString(`\^`)
			i++

		case c == '$':
			if atExprEnd(expr, i+1) {
				b.WriteByte('$')
			} else {
				b.WriteString(`\$`)
			}
			i++

		case strings.IndexByte("+?(){}|", c) >= 0:
			writeLiteral(&b, c)
			i++

		default:
			b.WriteByte(c)
			i++
		}
		exprStart, starLiteral = false, false
	}

	return b.String(), nil
}

// atExprEnd reports whether position i ends a basic (sub)expression.
func atExprEnd(expr string, i int) bool {
	return i == len(expr) || strings.HasPrefix(expr[i:], `\)`) || strings.HasPrefix(expr[i:], `\|`)
}

// bracketEnd returns the index just past the bracket expression opened at start.
func bracketEnd(expr string, start int) (int, error) {
	i := start + 1
	if i < len(expr) && expr[i] == '^' {
		i++
	}
	if i < len(expr) && expr[i] == ']' {
		i++
	}
	for i < len(expr) {
		switch {
		case expr[i] == ']':
			return i + 1, nil
		case expr[i] == '[' && i+1 < len(expr) && strings.IndexByte(":.=", expr[i+1]) >= 0:
			closer := string(expr[i+1]) + "]"
			end := strings.Index(expr[i+2:], closer)
			if end < 0 {
				return 0, fmt.Errorf("unterminated character class")
			}
			i += 2 + end + 2
		default:
			i++
		}
	}
	return 0, fmt.Errorf("unmatched [")
}

// writeBracket copies a bracket expression. Backslash is literal inside POSIX
// brackets but an escape in the compiled syntax, so it is doubled.
func writeBracket(b *strings.Builder, bracket string) {
	for i := 0; i < len(bracket); i++ {
		if bracket[i] == '\\' {
			b.WriteString(`\\`)
			continue
		}
		b.WriteByte(bracket[i])
	}
}

func writeLiteral(b *strings.Builder, c byte) {
	if strings.IndexByte(`\.+*?()|[]{}^$`, c) >= 0 {
		b.WriteByte('\\')
	}
	b.WriteByte(c)
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
