package graph

import (
	"fmt"
	"os"
	"strings"

	"dsu_tool/pkg/errorutil"
	"dsu_tool/pkg/logutil"

	"github.com/spf13/cobra"
)

// GraphCmd 返回 graph 子命令及其下属的 components / cycle / mst
func GraphCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "在 DOT 图上求连通分量、检测环、求最小生成森林",
		Long: `在 DOT 图上求连通分量、检测环、求最小生成森林

有向边按无向边处理，边权取 weight 属性，缺省为 1。

Examples:
    dsu graph components -i net.dot
    dsu graph cycle -i net.dot
    dsu graph mst -i net.dot -o msf.dot`,
	}
	cmd.PersistentFlags().StringVarP(&input, "input", "i", "", "DOT 文件")
	cmd.MarkPersistentFlagRequired("input")

	load := func() (*Graph, error) {
		g, err := LoadDOT(input)
		if err != nil {
			return nil, err
		}
		logutil.Info("读取 %s: %d 个节点 %d 条边", input, g.Names.Len(), len(g.Edges))
		return g, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "components",
		Short: "列出所有连通分量",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load()
			if err != nil {
				return err
			}
			comps, _, err := Components(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range comps {
				fmt.Fprintf(out, "[%s]\n", strings.Join(c, " "))
			}
			fmt.Fprintf(out, "共 %d 个连通分量\n", len(comps))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cycle",
		Short: "找出第一条使无向图成环的边",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load()
			if err != nil {
				return err
			}
			e, found, err := FindCycleEdge(g)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "无环")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "成环边: %s\n", e)
			return nil
		},
	})

	var output string
	mst := &cobra.Command{
		Use:   "mst",
		Short: "用 Kruskal 算法求最小生成森林",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load()
			if err != nil {
				return err
			}
			forest, total, err := Kruskal(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range forest {
				fmt.Fprintln(out, e)
			}
			fmt.Fprintf(out, "总权重: %g\n", total)

			if output == "" {
				return nil
			}
			dot, err := ForestToDOT(g, forest)
			if err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "生成 DOT 失败", err)
			}
			if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError,
					fmt.Sprintf("写入 %s 失败", output), err)
			}
			return nil
		},
	}
	mst.Flags().StringVarP(&output, "output", "o", "", "把生成森林写成 DOT 文件")
	cmd.AddCommand(mst)

	return cmd
}
