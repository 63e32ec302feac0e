package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	err := newRootCmd().Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gcol",
		Short: "Раскраска графа с минимальным числом конфликтов метаэвристиками",
		Long: `gcol раскрашивает граф заданным числом цветов, минимизируя число рёбер
с одинаково окрашенными концами. Доступны имитация отжига (SA), генетический
алгоритм (GA), муравьиный алгоритм (ACO), рой частиц (PSO) и табу-поиск (TS).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Флаги klog (-v, --logtostderr, ...) доступны во всех подкомандах
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	root.PersistentFlags().AddGoFlagSet(klogFlags)

	root.AddCommand(newSolveCmd(), newBenchCmd())
	return root
}
