package html

import "strings"

// capture accumulates a section of the page as raw HTML so anchors inside it
// can be rewritten to <see> markup after parsing. Tag depth is tracked from
// the moment the capture starts; when divCloses is set, a closing div at
// depth zero ends the capture (the section's enclosing container closed).
// Captures without divCloses run until the owner stops them.
type capture struct {
	divCloses bool

	active bool
	depth  int
	parts  []string
}

func (c *capture) start() {
	c.active = true
	c.depth = 0
	c.parts = c.parts[:0]
}

func (c *capture) stop() { c.active = false }

func (c *capture) startTag(raw string) {
	if !c.active {
		return
	}
	c.depth++
	c.parts = append(c.parts, raw)
}

// endTag records a closing tag and reports whether it ended the capture.
func (c *capture) endTag(tag string) bool {
	if !c.active {
		return false
	}
	if c.divCloses && c.depth == 0 && tag == "div" {
		c.active = false
		return true
	}
	c.depth--
	c.parts = append(c.parts, "</"+tag+">")
	return false
}

func (c *capture) text(data string) {
	if !c.active || data == "" {
		return
	}
	c.parts = append(c.parts, data)
}

func (c *capture) html() string {
	return strings.TrimSpace(strings.Join(c.parts, ""))
}
