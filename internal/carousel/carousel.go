// Package carousel holds the index selectors behind the gallery lightbox, the
// menu tabs and the testimonial slider, plus the timer that auto-advances them.
package carousel

import "fmt"

// Carousel is an index into a fixed-length list. Next and Prev wrap around.
// The index always satisfies 0 <= index < length for a non-empty list.
// A Carousel is not safe for concurrent use.
type Carousel struct {
	length int
	index  int
}

// New returns a carousel over length items, positioned on the first one.
// A non-positive length yields an empty carousel that never moves.
func New(length int) *Carousel {
	if length < 0 {
		length = 0
	}
	return &Carousel{length: length}
}

// At returns a carousel positioned on index, or false if index is out of range.
func At(length, index int) (*Carousel, bool) {
	c := New(length)
	if !c.Go(index) {
		return nil, false
	}
	return c, true
}

// Len returns the number of items.
func (c *Carousel) Len() int {
	return c.length
}

// Current returns the current index.
func (c *Carousel) Current() int {
	return c.index
}

// Empty reports whether there is nothing to show.
func (c *Carousel) Empty() bool {
	return c.length == 0
}

// Next moves forward, wrapping from the last item to the first.
func (c *Carousel) Next() int {
	if c.length > 0 {
		c.index = (c.index + 1) % c.length
	}
	return c.index
}

// Prev moves backward, wrapping from the first item to the last.
func (c *Carousel) Prev() int {
	if c.length > 0 {
		c.index = (c.index - 1 + c.length) % c.length
	}
	return c.index
}

// Go jumps to index i. Out-of-range indexes are rejected and leave the
// position unchanged.
func (c *Carousel) Go(i int) bool {
	if i < 0 || i >= c.length {
		return false
	}
	c.index = i
	return true
}

// NextIndex is the index Next would move to, without moving.
func (c *Carousel) NextIndex() int {
	if c.length == 0 {
		return 0
	}
	return (c.index + 1) % c.length
}

// PrevIndex is the index Prev would move to, without moving.
func (c *Carousel) PrevIndex() int {
	if c.length == 0 {
		return 0
	}
	return (c.index - 1 + c.length) % c.length
}

// Position renders the one-based caption, e.g. "3 of 6".
func (c *Carousel) Position() string {
	if c.length == 0 {
		return "0 of 0"
	}
	return fmt.Sprintf("%d of %d", c.index+1, c.length)
}
