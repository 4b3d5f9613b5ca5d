package main

import (
	"fmt"
	"os"

	"dsu_tool/pkg/errorutil"
	"dsu_tool/pkg/graph"
	"dsu_tool/pkg/initutil"
	"dsu_tool/pkg/logutil"
	"dsu_tool/pkg/replay"

	"github.com/spf13/cobra"
)

const TOOL_VERSION = "1.0.0+20261019"

func newRootCmd() *cobra.Command {
	var (
		configFile string
		logFile    string
		logLevel   = logutil.WARN
	)

	rootCmd := &cobra.Command{
		Use:     "dsu",
		Short:   fmt.Sprintf("dsu v%s 并查集命令行工具，支持 replay/show/graph 等子命令", TOOL_VERSION),
		Version: TOOL_VERSION,
	}

	rootCmd.AddCommand(replay.ReplayCmd())
	rootCmd.AddCommand(replay.ShowCmd())
	rootCmd.AddCommand(graph.GraphCmd())

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", initutil.DefaultConfigFile, "配置文件，不存在时使用默认配置")
	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "stdout", "日志文件名(stdout 表示标准输出)")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunEs返回的错误内容
	rootCmd.SilenceErrors = true

	// flag 解析完成后再加载配置，命令行上显式给出的值优先
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := initutil.LoadConfig(configFile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if flags.Changed("log-file") {
			cfg.LogFile = logFile
		}
		initutil.InitSystem(cfg)
		return nil
	}

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		logutil.Debug("命令执行失败: %v", err)
		msg, _ := errorutil.FormatErrorAndCode(err)
		fmt.Fprintln(os.Stderr, msg)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(errorutil.ExitCodeFromError(err))
}
