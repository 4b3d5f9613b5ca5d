// Package replay 解析并执行并查集操作脚本。
//
// 脚本每行一个操作，# 之后是注释，空行忽略：
//
//	union 1 2
//	find 3
//	connected 1 3
//	size 1
//	count
package replay

import (
	"fmt"
	"strconv"
	"strings"

	"dsu_tool/pkg/diffutil"
	"dsu_tool/pkg/errorutil"
	"dsu_tool/pkg/logutil"
	"dsu_tool/pkg/toolutil"
	"dsu_tool/pkg/unionfind"
)

type OpKind string

const (
	OpUnion     OpKind = "union"
	OpFind      OpKind = "find"
	OpConnected OpKind = "connected"
	OpSize      OpKind = "size"
	OpCount     OpKind = "count"
)

// 每种操作需要的参数个数
var arity = map[OpKind]int{
	OpUnion:     2,
	OpFind:      1,
	OpConnected: 2,
	OpSize:      1,
	OpCount:     0,
}

// Op 是脚本中的一行操作
type Op struct {
	Line int // 脚本中的行号，从 1 开始
	Kind OpKind
	Args []int
}

func (op Op) String() string {
	parts := []string{string(op.Kind)}
	for _, a := range op.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, " ")
}

// Result 是一次操作的输出
type Result struct {
	Op     Op
	Output string // true/false 或者数字
	Trace  string // 开启 Trace 且 union 成功时的森林对照图
}

// Options 控制执行过程
type Options struct {
	Trace bool // union 成功后输出合并前后森林的对照
	Style int  // 森林打印风格，见 treeprinter
}

func syntaxError(line int, format string, args ...any) error {
	return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData,
		fmt.Sprintf("第 %d 行: %s", line, fmt.Sprintf(format, args...)), nil, line)
}

// ParseScript 解析脚本，只检查语法，编号是否越界在执行时由并查集判断
func ParseScript(lines []string) ([]Op, error) {
	var ops []Op
	for i, raw := range lines {
		lineNo := i + 1
		line := toolutil.StripComment(raw)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		kind := OpKind(strings.ToLower(fields[0]))
		want, ok := arity[kind]
		if !ok {
			return nil, syntaxError(lineNo, "未知操作 %q", fields[0])
		}
		if len(fields)-1 != want {
			return nil, syntaxError(lineNo, "%s 需要 %d 个参数，实际 %d 个", kind, want, len(fields)-1)
		}
		op := Op{Line: lineNo, Kind: kind}
		for _, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, syntaxError(lineNo, "参数 %q 不是整数", f)
			}
			op.Args = append(op.Args, v)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Run 依次执行 ops，遇到第一个错误立即停止
//
// 出错的操作不会修改并查集，之前成功的操作保留。返回已经执行成功的结果。
func Run(ds *unionfind.DisjointSet, ops []Op, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	merges := 0
	for _, op := range ops {
		res, err := apply(ds, op, opts)
		if err != nil {
			logutil.Debug("第 %d 行 %s 执行失败: %v", op.Line, op, err)
			return results, fmt.Errorf("第 %d 行 %s: %w", op.Line, op, err)
		}
		if op.Kind == OpUnion && res.Output == "true" {
			merges++
		}
		logutil.Debug("第 %d 行 %s => %s", op.Line, op, res.Output)
		results = append(results, res)
	}
	logutil.Info("执行 %d 个操作，成功合并 %d 次，剩余 %d 个集合", len(results), merges, ds.Count())
	return results, nil
}

func apply(ds *unionfind.DisjointSet, op Op, opts Options) (Result, error) {
	res := Result{Op: op}
	switch op.Kind {
	case OpUnion:
		var before string
		if opts.Trace {
			before = unionfind.Render(ds, opts.Style)
		}
		merged, err := ds.Union(op.Args[0], op.Args[1])
		if err != nil {
			return res, err
		}
		res.Output = strconv.FormatBool(merged)
		if opts.Trace && merged {
			diff := diffutil.CompareLines(before, unionfind.Render(ds, opts.Style))
			res.Trace = diffutil.FormatSideBySide(diff, "合并前", "合并后")
		}
	case OpFind:
		root, err := ds.Find(op.Args[0])
		if err != nil {
			return res, err
		}
		res.Output = strconv.Itoa(root)
	case OpConnected:
		ok, err := ds.Connected(op.Args[0], op.Args[1])
		if err != nil {
			return res, err
		}
		res.Output = strconv.FormatBool(ok)
	case OpSize:
		n, err := ds.SetSize(op.Args[0])
		if err != nil {
			return res, err
		}
		res.Output = strconv.Itoa(n)
	case OpCount:
		res.Output = strconv.Itoa(ds.Count())
	default:
		return res, fmt.Errorf("未知操作 %q", op.Kind)
	}
	return res, nil
}
