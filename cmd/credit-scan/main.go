package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"credit-scan/internal/analyzer"
	"credit-scan/internal/catalog"
	"credit-scan/internal/model"
	"credit-scan/internal/reporter"
	"credit-scan/internal/scanner"
	"credit-scan/internal/server"
)

var (
	srcPath    string
	extensions []string
	excludes   []string
	reportFmt  string
	outputFile string
	workers    int

	serveAddr string
)

var rootCmd = &cobra.Command{
	Use:   "credit-scan",
	Short: "A static analysis tool for obsolete SAP credit-management objects",
	Long: `credit-scan audits legacy ABAP sources for references to credit master
data objects retired in S/4HANA (OSS Notes 2706489 and 2227014): obsolete
tables, fields, programs, transactions and views. Every occurrence is
reported with a suggested replacement, or flagged as ambiguous when the
catalog has none.`,
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a source tree and report obsolete references",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the batch remediation endpoint over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	scanCmd.Flags().StringVarP(&srcPath, "src", "s", ".", "Path to source code to scan")
	scanCmd.Flags().StringSliceVarP(&extensions, "ext", "x", []string{"abap", "txt"}, "File extensions to scan")
	scanCmd.Flags().StringSliceVarP(&excludes, "exclude", "e", []string{".git"}, "Glob patterns to exclude from scan")
	scanCmd.Flags().StringVarP(&reportFmt, "report", "r", "console", "Report format (console, json)")
	scanCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output file path (json format only, default stdout)")
	scanCmd.Flags().IntVarP(&workers, "workers", "w", 10, "Number of concurrent file workers")

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "Listen address")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newEngine() *analyzer.Analyzer {
	return analyzer.New(catalog.New(), catalog.NewRegistry())
}

func runScan() error {
	if _, err := os.Stat(srcPath); os.IsNotExist(err) {
		return fmt.Errorf("source path does not exist: %s", srcPath)
	}

	engine := newEngine()
	walker := scanner.NewFileWalker(extensions, excludes)

	ctx := context.Background()
	paths, errChan := walker.Walk(ctx, srcPath)

	pool := scanner.NewWorkerPool(workers, func(path string) (model.UnitResult, error) {
		unit, err := scanner.LoadUnit(path)
		if err != nil {
			return model.UnitResult{}, err
		}
		return engine.AnalyzeUnit(unit), nil
	})
	results := pool.Start(ctx, paths)

	go func() {
		for err := range errChan {
			fmt.Fprintf(os.Stderr, "Scanner error: %v\n", err)
		}
	}()

	var all []model.UnitResult
	files := 0
	for res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", res.File, res.Err)
			continue
		}
		files++
		all = append(all, res.Result)
	}

	// Worker completion order is nondeterministic; sort by file name
	// so repeated scans produce identical reports.
	sort.Slice(all, func(i, j int) bool {
		return all[i].Unit.PgmName < all[j].Unit.PgmName
	})

	fmt.Printf("Scanned %d files under %s.\n\n", files, srcPath)

	var rpt model.Reporter
	switch reportFmt {
	case "json":
		rpt = reporter.NewJSONReporter(outputFile)
	default:
		rpt = reporter.NewConsoleReporter()
	}

	if err := rpt.Report(all); err != nil {
		return fmt.Errorf("reporting failed: %w", err)
	}
	return nil
}

func runServe() error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	srv := server.New(serveAddr, newEngine(), log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
