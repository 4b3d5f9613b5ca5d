// Package diffutil 对比两次森林打印结果，按行左右对照输出。
package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	MarkSame    = "|"
	MarkAdded   = "+"
	MarkRemoved = "-"
	MarkChanged = "~"
)

type DiffLine struct {
	Left  string
	Right string
	Mark  string
}

func splitLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// CompareLines 按行做 diff，紧挨着的删除+插入合并成修改行
func CompareLines(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(text1, text2, false), lineArray)

	var result []DiffLine
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete && i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
			del, ins := splitLines(d.Text), splitLines(diffs[i+1].Text)
			for j := 0; j < max(len(del), len(ins)); j++ {
				var l, r string
				if j < len(del) {
					l = del[j]
				}
				if j < len(ins) {
					r = ins[j]
				}
				result = append(result, DiffLine{Left: l, Right: r, Mark: MarkChanged})
			}
			i++
			continue
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: MarkSame})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Mark: MarkRemoved})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Right: line, Mark: MarkAdded})
			}
		}
	}
	return result
}

// Changed 判断 diff 中是否有不同的行
func Changed(lines []DiffLine) bool {
	for _, l := range lines {
		if l.Mark != MarkSame {
			return true
		}
	}
	return false
}
