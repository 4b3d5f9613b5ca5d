package toolutil

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// 读取文件并返回按行拆分的字符串列表，适用于所有操作系统
func ReadFileToLines(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("无法打开文件 %s: %w", filePath, err)
	}
	defer file.Close()
	return ReadLines(file, filePath)
}

// ReadLines 从已经打开的文件（比如 os.Stdin）按行读取，name 只用于错误信息
func ReadLines(file *os.File, name string) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		// 顺带去掉 Windows 的 \r
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("读取文件 %s 出错: %w", name, err)
	}
	return lines, nil
}

// Grep 返回匹配正则 pattern 的行，invert 为 true 时返回不匹配的行
func Grep(lines []string, pattern string, ignoreCase, invert bool) ([]string, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("非法的正则 %q: %w", pattern, err)
	}
	var out []string
	for _, l := range lines {
		if re.MatchString(l) != invert {
			out = append(out, l)
		}
	}
	return out, nil
}

// StripComment 去掉 # 之后的注释和首尾空白
func StripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// FileExists 判断普通文件是否存在
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
