package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cbrarecords/internal/attendance"
	"cbrarecords/internal/config"
	"cbrarecords/internal/logging"
	"cbrarecords/internal/manager"
	"cbrarecords/internal/models"
	"cbrarecords/internal/promotion"
	"cbrarecords/internal/storage"
	"cbrarecords/internal/tui"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "cbrarecords",
		Short:         "Student record management",
		Long:          "cbrarecords keeps student admissions, marks, attendance and yearly promotion in a local records file.",
		RunE:          runTUI,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/cbraapps/cbrarecords.toml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all students in the records file",
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [roll number]",
		Short: "Show one student's record card",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	promoteCmd := &cobra.Command{
		Use:   "promote",
		Short: "Promote every eligible student whose session has started",
		Long: `Run the yearly promotion on the records file and save the result.

A student is promoted when all three terms are completed, marks are
calculated, and for classes 8-12 the board marks are entered. Classes 1-7
promote from March, 8-10 from April and 11-12 from June. Class 12 is final.`,
		RunE: runPromote,
	}

	termsCmd := &cobra.Command{
		Use:   "terms [roll number] [0-3]",
		Short: "Set the number of completed terms",
		Args:  cobra.ExactArgs(2),
		RunE:  runTerms,
	}

	attendCmd := &cobra.Command{
		Use:   "attend [roll number] [YYYY-MM-DD] [P|A]",
		Short: "Mark a student present or absent on a day",
		Example: `  cbrarecords attend 101 2026-04-10 P
  cbrarecords attend 101 2026-04-11 A`,
		Args: cobra.ExactArgs(3),
		RunE: runAttend,
	}

	var outputFlag string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export results to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(outputFlag)
		},
	}
	exportCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file (default <export_dir>/results_<date>.xlsx)")

	var fileFlag string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Admit students from a CSV or XLSX roster",
		Long: `Admit students from a roster file and save them to the records file.

Columns: roll,name,father,class,category,admission_year[,subjects]
The header row is optional. Classes 1-7 list their subjects separated by
semicolons; classes 8-12 get the fixed subjects of their category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(fileFlag)
		},
	}
	importCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Roster file (.csv or .xlsx)")
	importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(promoteCmd)
	rootCmd.AddCommand(termsCmd)
	rootCmd.AddCommand(attendCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    config.Config
	mgr    *manager.Manager
	closer io.Closer
}

func (a *app) Close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

func setup() (*app, error) {
	var cfg config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogDir, "cbrarecords", cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	mgr := manager.New(nil, promotion.NewEngine(nil), storage.New(storage.Disk{}), logger)
	return &app{cfg: cfg, mgr: mgr, closer: closer}, nil
}

// openRecords sets up the app and loads the records file. A missing file is
// an empty store when allowMissing is set.
func openRecords(allowMissing bool) (*app, error) {
	a, err := setup()
	if err != nil {
		return nil, err
	}

	result, err := a.mgr.Load(a.cfg.DataPath())
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return a, nil
		}
		a.Close()
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	for _, c := range result.Corrupt {
		fmt.Fprintf(os.Stderr, "warning: line %d skipped: %v\n", c.Line, c.Err)
	}
	for _, roll := range result.Duplicates {
		fmt.Fprintf(os.Stderr, "warning: duplicate roll number %s skipped\n", roll)
	}
	return a, nil
}

func (a *app) save() error {
	if _, err := a.mgr.Save(a.cfg.DataPath()); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.Run(a.cfg, a.mgr)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openRecords(false)
	if err != nil {
		return err
	}
	defer a.Close()

	students := a.mgr.ListStudents()
	if len(students) == 0 {
		fmt.Println("No students in system.")
		return nil
	}

	fmt.Printf("Total Students: %d\n\n", len(students))
	for _, s := range students {
		category := ""
		if s.Category != models.CategoryNone {
			category = " " + string(s.Category)
		}
		result := "not calculated"
		if s.MaxMarks > 0 {
			result = fmt.Sprintf("%.2f%% %s", s.Percentage, s.Grade)
		}
		fmt.Printf("%-10s %-24s class %d%s  •  %s  •  terms %d/%d\n",
			s.RollNo, s.Name, s.ClassName, category, result, s.TermsCompleted, models.MaxTerms)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openRecords(false)
	if err != nil {
		return err
	}
	defer a.Close()

	s, err := a.mgr.SearchStudent(args[0])
	if err != nil {
		return err
	}
	fmt.Println(tui.RenderCard(s))
	return nil
}

func runPromote(cmd *cobra.Command, args []string) error {
	a, err := openRecords(false)
	if err != nil {
		return err
	}
	defer a.Close()

	report := a.mgr.PromoteAll()
	for _, e := range report.Entries {
		fmt.Printf("%-10s %-24s class %-2d  %s\n", e.RollNo, e.Name, e.ClassName, e.Outcome)
	}
	fmt.Printf("\nPromoted: %d  •  Not eligible: %d  •  Not in season: %d  •  Final class: %d\n",
		report.Promoted, report.NotEligible, report.NotInSeason, report.Terminal)

	if report.Promoted == 0 {
		return nil
	}
	return a.save()
}

func runTerms(cmd *cobra.Command, args []string) error {
	terms, err := models.ParseTerms(args[1])
	if err != nil {
		return err
	}

	a, err := openRecords(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.mgr.UpdateTerms(args[0], terms); err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	fmt.Printf("✓ Terms for %s set to %d/%d\n", args[0], terms, models.MaxTerms)
	return nil
}

func runAttend(cmd *cobra.Command, args []string) error {
	d, err := attendance.ParseDate(args[1])
	if err != nil {
		return err
	}

	var present bool
	switch strings.ToUpper(args[2]) {
	case "P":
		present = true
	case "A":
		present = false
	default:
		return fmt.Errorf("mark must be P or A, got %q", args[2])
	}

	a, err := openRecords(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.mgr.MarkAttendance(args[0], d.Year, d.Month, d.Day, present); err != nil {
		return err
	}
	if err := a.save(); err != nil {
		return err
	}
	fmt.Printf("✓ Attendance marked for %s on %s\n", args[0], d)
	return nil
}

func runExport(output string) error {
	a, err := openRecords(false)
	if err != nil {
		return err
	}
	defer a.Close()

	if output == "" {
		output = a.cfg.ExportPath(fmt.Sprintf("results_%s.xlsx", time.Now().Format("2006-01-02")))
	}
	if err := a.mgr.ExportResults(output); err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}
	fmt.Printf("✓ Results exported to %s\n", output)
	return nil
}

func runImport(file string) error {
	a, err := openRecords(true)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.mgr.ImportRoster(file)
	if err != nil {
		return err
	}
	for _, s := range result.Skipped {
		fmt.Fprintf(os.Stderr, "warning: row %d skipped: %v\n", s.Line, s.Err)
	}

	if result.Imported > 0 {
		if err := a.save(); err != nil {
			return err
		}
	}
	fmt.Printf("Successfully imported %d students\n", result.Imported)
	return nil
}
