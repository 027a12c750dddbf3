// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package textformat

import (
	"testing"
)

var stripTestCases = []struct {
	input    string
	expected string
}{
	{"", ""},
	{"hello", "hello"},
	{"\x02bold\x02", "bold"},
	{"\x034red\x0f", "red"},
	{"\x0304,07text\x0f", "text"},
	{"a\x13b\x15c\x16d\x1de\x1ff", "abcdef"},
	{"This is a \x02cool\x02, \x034red\x0f message!", "This is a cool, red message!"},
	// a bare color marker is removed without consuming anything
	{"\x03", ""},
	{"\x03,5x", ",5x"},
	{"\x03!x", "!x"},
	// greedy digit parsing: at most two foreground digits
	{"\x03123", "3"},
	{"\x0399x", "x"},
	{"\x034,red", ",red"},
	// unknown control characters are not formatting and survive
	{"a\x01b\x04c", "a\x01b\x04c"},
	{"tabs\tand\nnewlines", "tabs\tand\nnewlines"},
}

func TestToPlainText(t *testing.T) {
	for _, testcase := range stripTestCases {
		assertEqual(ToPlainText(testcase.input), testcase.expected, t)
	}
}

func TestToPlainTextIdempotent(t *testing.T) {
	for _, testcase := range stripTestCases {
		once := ToPlainText(testcase.input)
		assertEqual(ToPlainText(once), once, t)
	}
}

func BenchmarkToPlainText(b *testing.B) {
	line := "\x02lorem\x02 ipsum \x034,8dolor\x0f sit amet, \x1dconsectetur\x1d adipiscing elit"
	for i := 0; i < b.N; i++ {
		ToPlainText(line)
	}
}
