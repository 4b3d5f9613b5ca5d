package replay

import (
	"fmt"
	"io"
	"os"

	"dsu_tool/pkg/errorutil"
	"dsu_tool/pkg/initutil"
	"dsu_tool/pkg/logutil"
	"dsu_tool/pkg/report"
	"dsu_tool/pkg/toolutil"
	"dsu_tool/pkg/unionfind"

	"github.com/spf13/cobra"
)

type cliOptions struct {
	Script  string
	Size    int
	From    string
	Save    string
	Trace   bool
	Style   int
	Summary bool
	Limit   int
	Grep    string
}

// ReplayCmd 返回 replay 子命令
func ReplayCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "replay [script]",
		Short: "在并查集上执行操作脚本",
		Long: `在并查集上执行操作脚本，每个操作输出一行结果

脚本格式（# 之后为注释）:
    union 1 2        合并，输出 true/false
    find 3           输出根
    connected 1 3    输出 true/false
    size 1           输出所在集合的大小
    count            输出集合个数

Examples:
    dsu replay -n 10 ops.txt
    dsu replay -f state.json -o state.json ops.txt
    dsu replay -n 10 --grep '=> false' ops.txt
    echo "union 1 2" | dsu replay -n 4 -t -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Script = args[0]
			}
			if !cmd.Flags().Changed("size") {
				opts.Size = initutil.GetConfig().Size
			}
			if !cmd.Flags().Changed("style") {
				opts.Style = initutil.GetConfig().Style
			}
			return opts.runReplay(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&opts.Size, "size", "n", 10, "元素个数 N（与 --from 互斥）")
	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "从快照文件恢复并查集")
	cmd.Flags().StringVarP(&opts.Save, "save", "o", "", "执行完成后把快照写到该文件")
	cmd.Flags().BoolVarP(&opts.Trace, "trace", "t", false, "每次合并成功后打印合并前后森林对照")
	cmd.Flags().IntVar(&opts.Style, "style", 0, "森林打印风格 0=ascii 1=unicode")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "最后打印集合摘要")
	cmd.Flags().IntVar(&opts.Limit, "limit", 10, "摘要中最多列出的集合个数")
	cmd.Flags().StringVarP(&opts.Grep, "grep", "g", "", "只输出匹配该正则的结果行")
	cmd.MarkFlagsMutuallyExclusive("size", "from")

	return cmd
}

func (opts *cliOptions) load() (*unionfind.DisjointSet, error) {
	if opts.From != "" {
		logutil.Info("从快照 %s 恢复", opts.From)
		return unionfind.ReadSnapshotFile(opts.From)
	}
	return unionfind.New(opts.Size)
}

func (opts *cliOptions) readScript() ([]string, error) {
	if opts.Script == "" || opts.Script == "-" {
		return toolutil.ReadLines(os.Stdin, "stdin")
	}
	if !toolutil.FileExists(opts.Script) {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput,
			fmt.Sprintf("脚本 %s 不存在", opts.Script), nil)
	}
	lines, err := toolutil.ReadFileToLines(opts.Script)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "无法读取脚本", err)
	}
	return lines, nil
}

func (opts *cliOptions) runReplay(out io.Writer) error {
	lines, err := opts.readScript()
	if err != nil {
		return err
	}
	ops, err := ParseScript(lines)
	if err != nil {
		return err
	}
	ds, err := opts.load()
	if err != nil {
		return err
	}

	results, runErr := Run(ds, ops, Options{Trace: opts.Trace, Style: opts.Style})
	if err := opts.printResults(out, results); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	if opts.Summary {
		fmt.Fprint(out, report.Summarize(ds).Format(opts.Limit))
	}
	if opts.Save != "" {
		if err := unionfind.WriteSnapshotFile(ds, opts.Save); err != nil {
			return err
		}
		logutil.Info("快照已写入 %s", opts.Save)
	}
	return nil
}

// printResults 输出每个操作的结果，设置了 --grep 时只输出匹配的行和它们的对照
func (opts *cliOptions) printResults(out io.Writer, results []Result) error {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("%s => %s", r.Op, r.Output)
	}
	keep := lines
	if opts.Grep != "" {
		var err error
		keep, err = toolutil.Grep(lines, opts.Grep, false, false)
		if err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "--grep 参数错误", err)
		}
	}
	matched := make(map[string]bool, len(keep))
	for _, l := range keep {
		matched[l] = true
	}
	for i, r := range results {
		if !matched[lines[i]] {
			continue
		}
		fmt.Fprintln(out, lines[i])
		if r.Trace != "" {
			fmt.Fprint(out, r.Trace)
		}
	}
	return nil
}

// ShowCmd 返回 show 子命令：打印快照中的森林和摘要
func ShowCmd() *cobra.Command {
	var (
		from  string
		style int
		limit int
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "打印快照中的森林结构和集合摘要",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("style") {
				style = initutil.GetConfig().Style
			}
			ds, err := unionfind.ReadSnapshotFile(from)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, unionfind.Render(ds, style))
			fmt.Fprint(out, report.Summarize(ds).Format(limit))
			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "快照文件")
	cmd.Flags().IntVar(&style, "style", 0, "森林打印风格 0=ascii 1=unicode")
	cmd.Flags().IntVar(&limit, "limit", 10, "最多列出的集合个数，0 表示全部")
	cmd.MarkFlagRequired("from")
	return cmd
}
