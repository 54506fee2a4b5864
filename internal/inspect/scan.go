package inspect

import (
	"github.com/jmylchreest/a11ykit/internal/element"
	"github.com/jmylchreest/a11ykit/internal/filter"
	"github.com/jmylchreest/a11ykit/internal/warning"
)

// Summary counts the scanned population.
type Summary struct {
	Total   int                   `json:"total"`
	Visible int                   `json:"visible"`
	ByLevel map[warning.Level]int `json:"by_level"`
	Highest warning.Level         `json:"highest"`
}

// Scan audits a population of snapshots, replacing the previous scan. The filter state is
// kept across scans.
func (c *Context) Scan(snapshots []element.Snapshot) []Element {
	c.elements = make([]Element, 0, len(snapshots))
	for _, s := range snapshots {
		c.elements = append(c.elements, c.Audit(s))
	}
	c.syncFilter()

	c.logger.Info("scan complete", "elements", len(c.elements))
	return c.Elements()
}

// Elements returns the last scanned population.
func (c *Context) Elements() []Element {
	out := make([]Element, len(c.elements))
	copy(out, c.elements)
	return out
}

// Visible returns the scanned elements that pass the filter.
func (c *Context) Visible() []Element {
	return filter.Apply(c.filter, c.elements)
}

// Summary counts the scanned elements per level.
func (c *Context) Summary() Summary {
	summary := Summary{
		Total:   len(c.elements),
		Visible: c.filter.Count(),
		ByLevel: make(map[warning.Level]int),
	}
	levels := make([]warning.Level, 0, len(c.elements))
	for _, el := range c.elements {
		level := el.Level()
		summary.ByLevel[level]++
		levels = append(levels, level)
	}
	summary.Highest = warning.HighestLevel(levels)
	return summary
}

func (c *Context) syncFilter() {
	targets := make([]filter.Target, len(c.elements))
	for i, el := range c.elements {
		targets[i] = el
	}
	c.filter.SetTargets(targets)
}
