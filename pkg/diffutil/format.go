package diffutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// FormatSideBySide 左右对照输出
//
// fmt 的宽度按字符数计算，树形符号和中文的显示宽度不是 1，
// 所以每行的填充宽度 = 字符数 + (最大显示宽度 - 本行显示宽度)。
func FormatSideBySide(diff []DiffLine, leftTitle, rightTitle string) string {
	cond := runewidth.NewCondition()
	// 模糊宽度字符（比如 │ └）按宽度 1 计算
	cond.EastAsianWidth = false

	maxWidth := cond.StringWidth(leftTitle)
	for _, d := range diff {
		maxWidth = max(maxWidth, cond.StringWidth(d.Left))
	}
	pad := func(s string) int {
		return utf8.RuneCountInString(s) + maxWidth - cond.StringWidth(s)
	}

	var out []string
	header := fmt.Sprintf("%-*s     %s", pad(leftTitle), leftTitle, rightTitle)
	out = append(out, header, strings.Repeat("-", cond.StringWidth(header)))
	for _, d := range diff {
		out = append(out, strings.TrimRight(fmt.Sprintf("%-*s  %s  %s", pad(d.Left), d.Left, d.Mark, d.Right), " "))
	}
	return strings.Join(out, "\n") + "\n"
}
