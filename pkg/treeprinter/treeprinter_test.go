package treeprinter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() *MultiNode {
	return &MultiNode{Data: 0, Children: []*MultiNode{
		{Data: 1, Children: []*MultiNode{{Data: 3}}},
		{Data: 2},
	}}
}

func TestPrintMultiTree_ASCII(t *testing.T) {
	want := "0\n" +
		"|-- 1\n" +
		"|   '-- 3\n" +
		"'-- 2\n"
	got := PrintMultiTree(MultiTreePrinter{Root: sample(), Style: StyleASCII})
	t.Log("\n" + got)
	assert.Equal(t, want, got)
}

func TestPrintMultiTree_UnicodeFormatFn(t *testing.T) {
	want := "<0>\n" +
		"├── <1>\n" +
		"│   └── <3>\n" +
		"└── <2>\n"
	got := PrintMultiTree(MultiTreePrinter{
		Root:     sample(),
		Style:    StyleUnicode,
		FormatFn: func(n *MultiNode) string { return "<" + string(rune('0'+n.Data.(int))) + ">" },
	})
	assert.Equal(t, want, got)
}

func TestPrintEmpty(t *testing.T) {
	assert.Equal(t, "tree is empty\n", PrintMultiTree(MultiTreePrinter{}))
	assert.Equal(t, "forest is empty\n", PrintForest(nil, StyleASCII, nil))
}

func TestPrintForest(t *testing.T) {
	got := PrintForest([]*MultiNode{{Data: "a"}, {Data: "b", Children: []*MultiNode{{Data: "c"}}}}, StyleASCII, nil)
	assert.Equal(t, "a\nb\n'-- c\n", got)
}
