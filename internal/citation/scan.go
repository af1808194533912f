package citation

import (
	"strconv"
	"strings"
)

// marker is a bracketed run of ASCII digits: [n], {n} or (n).
type marker struct {
	start  int
	end    int
	open   byte
	digits string
}

// value returns the marker number. Digit runs that overflow int are
// reported as not ok and are treated as out of range by callers.
func (m marker) value() (int, bool) {
	n, err := strconv.Atoi(m.digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func closer(open byte) byte {
	switch open {
	case '[':
		return ']'
	case '{':
		return '}'
	case '(':
		return ')'
	}
	return 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// nextMarker finds the first marker at or after from whose opening bracket
// is one of opens. Every byte is visited at most twice.
func nextMarker(text string, from int, opens string) (marker, bool) {
	i := from
	for i < len(text) {
		open := text[i]
		if strings.IndexByte(opens, open) < 0 {
			i++
			continue
		}

		j := i + 1
		for j < len(text) && isDigit(text[j]) {
			j++
		}

		if j > i+1 && j < len(text) && text[j] == closer(open) {
			return marker{start: i, end: j + 1, open: open, digits: text[i+1 : j]}, true
		}

		// bytes in (i, j) are digits, none of them can open a marker
		if j > i+1 {
			i = j
		} else {
			i++
		}
	}
	return marker{}, false
}

// rewrite copies text, replacing every marker opened by one of opens with
// whatever replace returns for it.
func rewrite(text string, opens string, replace func(m marker) string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	pos := 0
	for {
		m, ok := nextMarker(text, pos, opens)
		if !ok {
			break
		}
		sb.WriteString(text[pos:m.start])
		sb.WriteString(replace(m))
		pos = m.end
	}
	sb.WriteString(text[pos:])
	return sb.String()
}

// each calls fn for every canonical [n] marker in order.
func each(text string, fn func(m marker)) {
	pos := 0
	for {
		m, ok := nextMarker(text, pos, "[")
		if !ok {
			return
		}
		fn(m)
		pos = m.end
	}
}
