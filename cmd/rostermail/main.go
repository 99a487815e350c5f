// Package main provides the CLI entry point for rostermail.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rostermail/rostermail-go/pkg/rostermail"
	"github.com/rostermail/rostermail-go/pkg/rostermail/compose"
	"github.com/rostermail/rostermail-go/pkg/rostermail/config"
	"github.com/rostermail/rostermail-go/pkg/rostermail/dispatch"
	"github.com/rostermail/rostermail-go/pkg/rostermail/models"
	"github.com/rostermail/rostermail-go/pkg/rostermail/parser"
	"github.com/rostermail/rostermail-go/pkg/rostermail/render"
)

var (
	configPath string
	sheetName  string
	locator    string
	weekStart  string
	verbose    bool

	asTSV     bool
	page      int
	outPath   string
	endpoint  string
	token     string
	tokenFile string
	yes       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rostermail",
		Short: "Preview and mail weekly schedule slices from an Excel workbook",
		Long: `rostermail reads a spreadsheet staff schedule, extracts the five-day
week starting at a chosen date, and renders it as a preview table,
per-employee email drafts, or a "Weekly Template" workbook copy.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file path")
	pf.StringVar(&sheetName, "sheet", "", `schedule sheet name (default "Schedule", exact case)`)
	pf.StringVar(&locator, "locator", "", "header location strategy: dynamic or fixed")
	pf.StringVarP(&weekStart, "week-start", "w", "", "week start date (YYYY-MM-DD)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	previewCmd := &cobra.Command{
		Use:   "preview [schedule.xlsx]",
		Short: "Print the weekly preview table",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().BoolVar(&asTSV, "tsv", false, "emit tab-separated values instead of an aligned table")

	draftsCmd := &cobra.Command{
		Use:   "drafts [schedule.xlsx]",
		Short: "Print email drafts, ten per page",
		Args:  cobra.ExactArgs(1),
		RunE:  runDrafts,
	}
	draftsCmd.Flags().IntVar(&page, "page", 0, "page number to print (0 = all pages)")

	sendCmd := &cobra.Command{
		Use:   "send [schedule.xlsx]",
		Short: "Compose drafts and dispatch them through the mail API",
		Args:  cobra.ExactArgs(1),
		RunE:  runSend,
	}
	sendCmd.Flags().StringVar(&endpoint, "endpoint", "", "mail-send API URL (overrides config)")
	sendCmd.Flags().StringVar(&token, "token", "", "bearer token for the mail API")
	sendCmd.Flags().StringVar(&tokenFile, "token-file", "", "file containing the bearer token")
	sendCmd.Flags().BoolVar(&yes, "yes", false, "skip the send confirmation prompt")

	templateCmd := &cobra.Command{
		Use:   "template [schedule.xlsx]",
		Short: `Write a workbook copy with a "Weekly Template" sheet`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplate,
	}
	templateCmd.Flags().StringVarP(&outPath, "output", "o", "", "output workbook path (required)")
	templateCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(previewCmd, draftsCmd, sendCmd, templateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return cfg, err
		}
	}
	if sheetName != "" {
		cfg.Sheet = sheetName
	}
	if locator != "" {
		cfg.Locator = locator
	}
	return cfg, nil
}

// project loads the workbook and generates the weekly projection shared by
// every subcommand.
func project(path string) (*rostermail.Session, *models.Projection, error) {
	if weekStart == "" {
		return nil, nil, fmt.Errorf("--week-start is required")
	}
	start, err := models.ParseDate(weekStart)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	sess := rostermail.NewSession(rostermail.Options{
		SheetName: cfg.Sheet,
		Strategy:  parser.Strategy(cfg.Locator),
		Log:       log,
	})
	if err := sess.Load(path); err != nil {
		return nil, nil, err
	}
	proj, err := sess.Generate(start)
	if err != nil {
		return nil, nil, err
	}
	return sess, proj, nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	_, proj, err := project(args[0])
	if err != nil {
		return err
	}
	if asTSV {
		return render.TSV(os.Stdout, proj)
	}
	return render.Table(os.Stdout, proj)
}

func runDrafts(cmd *cobra.Command, args []string) error {
	_, proj, err := project(args[0])
	if err != nil {
		return err
	}
	drafts := compose.All(proj)
	if len(drafts) == 0 {
		fmt.Println(render.EmptyMessage)
		return nil
	}

	pages := compose.Paginate(drafts)
	if page > len(pages) {
		return fmt.Errorf("page %d out of range (have %d)", page, len(pages))
	}
	for i, p := range pages {
		if page > 0 && page != i+1 {
			continue
		}
		fmt.Printf("--- Page %d/%d ---\n", i+1, len(pages))
		for _, d := range p {
			fmt.Printf("To: %s\nSubject: %s\n%s\n\n", d.To, d.Subject, d.HTML)
		}
	}
	return nil
}

func runTemplate(cmd *cobra.Command, args []string) error {
	sess, _, err := project(args[0])
	if err != nil {
		return err
	}
	if err := sess.WriteTemplate(outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %q sheet to %s\n", render.TemplateSheetName, outPath)
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	_, proj, err := project(args[0])
	if err != nil {
		return err
	}
	drafts := compose.All(proj)
	if len(drafts) == 0 {
		fmt.Println(render.EmptyMessage)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if endpoint == "" {
		endpoint = cfg.Mail.Endpoint
	}
	if endpoint == "" {
		return fmt.Errorf("no mail endpoint: set --endpoint or mail.endpoint in the config")
	}
	tok, err := resolveToken()
	if err != nil {
		return err
	}
	if !yes && !confirm(fmt.Sprintf("Send all %d drafts now?", len(drafts))) {
		fmt.Println("Aborted.")
		return nil
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	bar := progressbar.Default(int64(len(drafts)), "sending")
	sender := dispatch.NewSender(
		dispatch.NewHTTP(endpoint, cfg.Mail.Timeout.Std(), log),
		dispatch.StaticToken(tok),
		log,
	)
	sender.Progress = func(done, total int) {
		bar.Set(done)
	}

	report, err := sender.SendAll(cmd.Context(), drafts)
	if err != nil {
		return err
	}
	fmt.Printf("\nSent %d of %d drafts.\n", report.Sent, len(drafts))
	if report.Failed > 0 {
		fmt.Printf("%d failed:\n", report.Failed)
		for _, f := range report.Failures {
			fmt.Printf("  %s (%s): %v\n", f.Recipient, f.MessageID, f.Err)
		}
	}
	return nil
}

func resolveToken() (string, error) {
	switch {
	case token != "":
		return token, nil
	case tokenFile != "":
		data, err := os.ReadFile(tokenFile)
		if err != nil {
			return "", fmt.Errorf("read token file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("no token: set --token or --token-file")
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
