package treeprinter

import (
	"fmt"
	"strings"
)

const (
	StyleASCII   = 0
	StyleUnicode = 1
)

// MultiNode 是多叉树节点，Data 可以是任意类型
type MultiNode struct {
	Data     any
	Children []*MultiNode
}

type MultiTreePrinter struct {
	Root     *MultiNode
	Style    int                     // 0 = ascii, 1 = unicode
	FormatFn func(*MultiNode) string // 可选的自定义格式化函数
}

type glyphs struct {
	last, branch, space string
}

func glyphsOf(style int) glyphs {
	if style == StyleUnicode {
		return glyphs{last: "└── ", branch: "├── ", space: "│   "}
	}
	return glyphs{last: "'-- ", branch: "|-- ", space: "|   "}
}

// PrintMultiTree 打印一棵多叉树，根节点不带连接符
func PrintMultiTree(printer MultiTreePrinter) string {
	if printer.Root == nil {
		return "tree is empty\n"
	}
	var b strings.Builder
	writeTree(&b, printer.Root, printer.Style, printer.FormatFn)
	return b.String()
}

// PrintForest 依次打印多棵树，树之间不留空行
func PrintForest(roots []*MultiNode, style int, formatFn func(*MultiNode) string) string {
	if len(roots) == 0 {
		return "forest is empty\n"
	}
	var b strings.Builder
	for _, r := range roots {
		writeTree(&b, r, style, formatFn)
	}
	return b.String()
}

func writeTree(b *strings.Builder, root *MultiNode, style int, formatFn func(*MultiNode) string) {
	g := glyphsOf(style)
	label := func(n *MultiNode) string {
		if formatFn != nil {
			return formatFn(n)
		}
		return fmt.Sprintf("%v", n.Data)
	}

	// 显式栈，避免很深的链把递归栈打爆
	type frame struct {
		node   *MultiNode
		prefix string
		isLast bool
		isRoot bool
	}
	stack := []frame{{node: root, isRoot: true}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node == nil {
			continue
		}

		childPrefix := ""
		switch {
		case top.isRoot:
			fmt.Fprintf(b, "%s\n", label(top.node))
		case top.isLast:
			fmt.Fprintf(b, "%s%s%s\n", top.prefix, g.last, label(top.node))
			childPrefix = top.prefix + "    "
		default:
			fmt.Fprintf(b, "%s%s%s\n", top.prefix, g.branch, label(top.node))
			childPrefix = top.prefix + g.space
		}

		// 逆序压栈，保证先打印第一个孩子
		children := top.node.Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:   children[i],
				prefix: childPrefix,
				isLast: i == len(children)-1,
			})
		}
	}
}
