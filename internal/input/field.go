// Package input validates the hour and minute text fields and turns them,
// or the initial parameters, into a duration in seconds.
package input

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/akyairhashvil/tminus/internal/config"
)

// Valid reports whether text may be stored in a duration field: empty, or
// only ASCII digits and no longer than config.MaxFieldLength.
func Valid(text string) bool {
	return utf8.RuneCountInString(text) <= config.MaxFieldLength && digits(text)
}

func digits(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// Field is a text field that only ever holds a valid value.
type Field struct {
	value string
}

// Set stores text if it is valid and reports whether the stored value
// changed. Rejected text leaves the field untouched.
func (f *Field) Set(text string) bool {
	if !Valid(text) || text == f.value {
		return false
	}
	f.value = text
	return true
}

func (f *Field) Value() string { return f.value }
func (f *Field) Empty() bool   { return f.value == "" }
func (f *Field) Clear()        { f.value = "" }

// ParseField reads a field as a non-negative integer. Anything but plain
// digits, including signs, counts as zero, and so does a value past MaxInt.
func ParseField(text string) int {
	if text == "" || !digits(text) {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return n
}

// Commit converts hour and minute text into total seconds. A field whose
// seconds would overflow int counts as non-numeric, and so does the whole
// duration if the sum would.
func Commit(hours, minutes string) int {
	h := fieldSeconds(hours, 3600)
	m := fieldSeconds(minutes, 60)
	if h > math.MaxInt-m {
		return 0
	}
	return h + m
}

func fieldSeconds(text string, unit int) int {
	n := ParseField(text)
	if n > math.MaxInt/unit {
		return 0
	}
	return n * unit
}
