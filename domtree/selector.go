package domtree

import (
	"errors"
	"strings"

	"github.com/dshills/keyscope"
)

// ErrInvalidSelector is returned by parseSelector for malformed input.
var ErrInvalidSelector = errors.New("domtree: invalid selector")

// compound is one space-separated piece of a selector, e.g. "div#n.active".
type compound struct {
	tag     string
	id      string
	classes []string
}

func (c compound) specificity() int {
	idCount := 0
	if c.id != "" {
		idCount = 1
	}
	tagCount := 0
	if c.tag != "" {
		tagCount = 1
	}
	return idCount*10000 + len(c.classes)*100 + tagCount
}

func (c compound) matches(node keyscope.Node) bool {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return false
	}
	if c.tag != "" && n.Tag != c.tag {
		return false
	}
	if c.id != "" && n.ID != c.id {
		return false
	}
	for _, class := range c.classes {
		if !n.hasClass(class) {
			return false
		}
	}
	return true
}

// parseCompound parses one compound selector like "div#n.a.b", "#n",
// ".active", or "div".
func parseCompound(s string) (compound, error) {
	if s == "" {
		return compound{}, ErrInvalidSelector
	}

	var c compound
	i := 0
	for i < len(s) {
		switch s[i] {
		case '#':
			j := i + 1
			for j < len(s) && s[j] != '#' && s[j] != '.' {
				j++
			}
			if j == i+1 {
				return compound{}, ErrInvalidSelector
			}
			if c.id != "" {
				return compound{}, ErrInvalidSelector
			}
			c.id = s[i+1 : j]
			i = j
		case '.':
			j := i + 1
			for j < len(s) && s[j] != '#' && s[j] != '.' {
				j++
			}
			if j == i+1 {
				return compound{}, ErrInvalidSelector
			}
			c.classes = append(c.classes, s[i+1:j])
			i = j
		default:
			j := i
			for j < len(s) && s[j] != '#' && s[j] != '.' {
				j++
			}
			if c.tag != "" {
				return compound{}, ErrInvalidSelector
			}
			c.tag = s[i:j]
			i = j
		}
	}
	return c, nil
}

func parseSelector(selector string) ([]compound, error) {
	fields := strings.Fields(selector)
	if len(fields) == 0 {
		return nil, ErrInvalidSelector
	}
	compounds := make([]compound, 0, len(fields))
	for _, f := range fields {
		c, err := parseCompound(f)
		if err != nil {
			return nil, err
		}
		compounds = append(compounds, c)
	}
	return compounds, nil
}

// Engine is the default keyscope.SelectorEngine, implementing tag,
// #id, .class, and descendant-combinator matching with conventional
// CSS-style specificity.
type Engine struct{}

var _ keyscope.SelectorEngine = Engine{}

// IsValid implements keyscope.SelectorEngine.
func (Engine) IsValid(selector string) bool {
	_, err := parseSelector(selector)
	return err == nil
}

// Specificity implements keyscope.SelectorEngine, folding id count,
// class count, and tag count (id weighted highest) into one integer,
// summed across every compound in the selector.
func (Engine) Specificity(selector string) int {
	compounds, err := parseSelector(selector)
	if err != nil {
		return 0
	}
	total := 0
	for _, c := range compounds {
		total += c.specificity()
	}
	return total
}

// Matches implements keyscope.SelectorEngine. The rightmost compound
// must match node itself; each preceding compound must match some
// strict ancestor, in order, walking upward.
func (Engine) Matches(node keyscope.Node, selector string) bool {
	compounds, err := parseSelector(selector)
	if err != nil {
		return false
	}

	last := compounds[len(compounds)-1]
	if !last.matches(node) {
		return false
	}

	cur := node.Parent()
	for i := len(compounds) - 2; i >= 0; i-- {
		found := false
		for cur != nil {
			next := cur.Parent()
			if compounds[i].matches(cur) {
				found = true
				cur = next
				break
			}
			cur = next
		}
		if !found {
			return false
		}
	}
	return true
}
