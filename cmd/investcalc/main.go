package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/mhalvorsen/investcalc/internal/calculation"
	"github.com/mhalvorsen/investcalc/internal/compare"
	"github.com/mhalvorsen/investcalc/internal/config"
	"github.com/mhalvorsen/investcalc/internal/domain"
	"github.com/mhalvorsen/investcalc/internal/logging"
	"github.com/mhalvorsen/investcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "investcalc",
	Short: "Investment projection calculator CLI",
	Long:  "Projects the future value of a periodic investment plan and renders the projection as tables, CSV or JSON",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "investcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// newEngine builds a calculation engine, wiring in a zap logger when
// debug mode is on.
func newEngine(debugMode bool) (*calculation.Engine, error) {
	engine := calculation.NewEngine()
	if debugMode {
		logger, err := logging.NewZapLogger("debug")
		if err != nil {
			return nil, err
		}
		engine.SetLogger(logger)
		engine.Debug = true
	}
	return engine, nil
}

// loadScenario loads the config file and picks a scenario: the named
// one, or the only one when the file has a single scenario.
func loadScenario(inputFile, name string) (*domain.Scenario, error) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, err
	}
	if name == "" {
		if len(cfg.Scenarios) == 1 {
			return &cfg.Scenarios[0], nil
		}
		names := make([]string, 0, len(cfg.Scenarios))
		for _, s := range cfg.Scenarios {
			names = append(names, s.Name)
		}
		return nil, fmt.Errorf("config has %d scenarios, pick one with --scenario (available: %s)",
			len(cfg.Scenarios), strings.Join(names, ", "))
	}
	return cfg.ScenarioByName(name)
}

var projectCmd = &cobra.Command{
	Use:   "project [input-file]",
	Short: "Project a scenario's investment growth",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenarioName, _ := cmd.Flags().GetString("scenario")
		format, _ := cmd.Flags().GetString("format")
		real, _ := cmd.Flags().GetBool("real")
		preset, _ := cmd.Flags().GetString("return-preset")
		debugMode, _ := cmd.Flags().GetBool("debug")

		scenario, err := loadScenario(args[0], scenarioName)
		if err != nil {
			log.Fatal(err)
		}
		plan := scenario.Plan

		if preset != "" {
			p, err := calculation.PresetByKey(preset)
			if err != nil {
				log.Fatal(err)
			}
			plan.AnnualReturn = p.AnnualReturn
		}

		engine, err := newEngine(debugMode)
		if err != nil {
			log.Fatal(err)
		}
		proj, err := engine.Project(plan)
		if err != nil {
			log.Fatal(err)
		}

		if real {
			proj = calculation.AdjustForInflation(proj, plan.AnnualInflationRate)
		}

		report := &output.Report{
			ScenarioName:      scenario.Name,
			Projection:        proj,
			Summary:           calculation.Summarize(proj),
			Breakdown:         calculation.AnnualBreakdown(plan, proj.Yearly),
			InflationAdjusted: real,
		}

		f := output.GetFormatterByName(format)
		if f == nil {
			log.Fatalf("unsupported format %q (available: %s)",
				format, strings.Join(output.FormatterNames(), ", "))
		}
		data, err := f.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(data)
	},
}

var goalSeekCmd = &cobra.Command{
	Use:   "goal-seek [input-file]",
	Short: "Find the monthly contribution needed to reach a target value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenarioName, _ := cmd.Flags().GetString("scenario")
		targetStr, _ := cmd.Flags().GetString("target")
		debugMode, _ := cmd.Flags().GetBool("debug")

		target, err := decimal.NewFromString(targetStr)
		if err != nil {
			log.Fatalf("invalid --target value %q: %v", targetStr, err)
		}

		scenario, err := loadScenario(args[0], scenarioName)
		if err != nil {
			log.Fatal(err)
		}

		engine, err := newEngine(debugMode)
		if err != nil {
			log.Fatal(err)
		}
		result, err := engine.RequiredMonthlyContribution(cmd.Context(), scenario.Plan, target)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Target final value:     %s\n", output.FormatCurrency(result.TargetValue))
		fmt.Printf("Required contribution:  %s per month\n", output.FormatCurrency(result.MonthlyContribution))
		fmt.Printf("Projected final value:  %s\n", output.FormatCurrency(result.AchievedValue))
		fmt.Printf("Solver iterations:      %d\n", result.Iterations)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare scenarios against a base scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		baseName, _ := cmd.Flags().GetString("base")
		format, _ := cmd.Flags().GetString("format")
		debugMode, _ := cmd.Flags().GetBool("debug")

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if baseName == "" {
			baseName = cfg.Scenarios[0].Name
		}

		engine, err := newEngine(debugMode)
		if err != nil {
			log.Fatal(err)
		}
		compareEngine := compare.NewCompareEngine(engine)
		set, err := compareEngine.Compare(cmd.Context(), cfg, compare.CompareOptions{
			BaseScenarioName: baseName,
			ConfigPath:       args[0],
		})
		if err != nil {
			log.Fatal(err)
		}

		switch format {
		case "table":
			tf := &compare.TableFormatter{}
			fmt.Print(tf.Format(set))
		case "csv":
			cf := &compare.CSVFormatter{}
			out, err := cf.Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		case "json":
			jf := &compare.JSONFormatter{Pretty: true}
			out, err := jf.Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		default:
			log.Fatalf("unsupported format %q (available: table, csv, json)", format)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			fmt.Printf("Configuration is invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration is valid (%d scenarios)\n", len(cfg.Scenarios))
		for _, s := range cfg.Scenarios {
			fmt.Printf("  - %s: %d years, %s/month\n",
				s.Name, s.Plan.Years, output.FormatCurrency(s.Plan.MonthlyContribution))
		}
	},
}

var historicalCmd = &cobra.Command{
	Use:   "historical",
	Short: "List the canned historical return presets",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Historical annualized return presets:")
		for _, p := range calculation.ReturnPresets() {
			fmt.Printf("  %-12s %-30s %s%%\n",
				p.Key, p.Label, p.AnnualReturn.Mul(decimal.NewFromInt(100)).StringFixed(2))
		}
		fmt.Println("\nUse with: investcalc project <config> --return-preset <key>")
	},
}

func init() {
	projectCmd.Flags().String("scenario", "", "Scenario name (defaults to the only scenario)")
	projectCmd.Flags().String("format", "console", "Output format (console, csv, csv-monthly, json)")
	projectCmd.Flags().Bool("real", false, "Deflate the series by the plan's inflation rate")
	projectCmd.Flags().String("return-preset", "", "Override annual return with a historical preset")
	projectCmd.Flags().Bool("debug", false, "Enable debug logging")

	goalSeekCmd.Flags().String("scenario", "", "Scenario name (defaults to the only scenario)")
	goalSeekCmd.Flags().String("target", "", "Target final value to reach")
	goalSeekCmd.Flags().Bool("debug", false, "Enable debug logging")
	_ = goalSeekCmd.MarkFlagRequired("target")

	compareCmd.Flags().String("base", "", "Base scenario name (defaults to the first scenario)")
	compareCmd.Flags().String("format", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(goalSeekCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historicalCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
