// Package input implements the single-line editor backing the name field.
package input

// Editor is a rune buffer with a cursor. The zero value is an empty editor.
type Editor struct {
	buf []rune
	c   int
}

// Get returns the current buffer contents.
func (e *Editor) Get() string {
	return string(e.buf)
}

// Len returns the number of runes in the buffer.
func (e *Editor) Len() int {
	return len(e.buf)
}

// Cursor returns the cursor index in runes, 0..Len.
func (e *Editor) Cursor() int {
	return e.c
}

// Write inserts r at the cursor and advances it.
func (e *Editor) Write(r rune) {
	e.buf = append(e.buf[:e.c], append([]rune{r}, e.buf[e.c:]...)...)
	e.c++
}

// WriteText inserts s at the cursor.
func (e *Editor) WriteText(s string) {
	rs := []rune(s)
	e.buf = append(e.buf[:e.c], append(rs, e.buf[e.c:]...)...)
	e.c += len(rs)
}

// Erase removes the rune before the cursor. Reports whether a rune was removed.
func (e *Editor) Erase() bool {
	if e.c == 0 {
		return false
	}
	e.buf = append(e.buf[:e.c-1], e.buf[e.c:]...)
	e.c--
	return true
}

// Delete removes the rune under the cursor. Reports whether a rune was removed.
func (e *Editor) Delete() bool {
	if e.c >= len(e.buf) {
		return false
	}
	e.buf = append(e.buf[:e.c], e.buf[e.c+1:]...)
	return true
}

// Back moves the cursor one rune left. Reports whether it moved.
func (e *Editor) Back() bool {
	if e.c <= 0 {
		return false
	}
	e.c--
	return true
}

// Next moves the cursor one rune right. Reports whether it moved.
func (e *Editor) Next() bool {
	if e.c >= len(e.buf) {
		return false
	}
	e.c++
	return true
}

// Home moves the cursor to the start of the buffer.
func (e *Editor) Home() {
	e.c = 0
}

// End moves the cursor past the last rune.
func (e *Editor) End() {
	e.c = len(e.buf)
}

// Clear empties the buffer and resets the cursor.
func (e *Editor) Clear() {
	e.buf = nil
	e.c = 0
}
