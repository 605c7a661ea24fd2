package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/geomorph-lab/moraine-offset/internal/types"
	"github.com/geomorph-lab/moraine-offset/pkg/analysis"
	"github.com/geomorph-lab/moraine-offset/pkg/geomath"
	"github.com/geomorph-lab/moraine-offset/pkg/structgeo"
	"github.com/geomorph-lab/moraine-offset/pkg/utils"
)

const (
	// Application constants
	appName = "moraine-offset"
	version = "v1.0.0"
)

var (
	// Configuration loaded in PersistentPreRunE
	cfg *utils.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Horizontal offset of a moraine crest across an oblique fault",
	Long: `moraine-offset computes the horizontal (map-view) offset of a moraine
crest displaced by dip-slip motion on an oblique, inclined fault plane.

Given the fault's dip direction and dip, the dip-slip magnitude, and the
moraine's trend, the tool derives the apparent dip of the moraine on the
fault plane, its rake against the strike line, and the horizontal component
of the displacement - the lateral offset a geologist cannot read directly
off a map because the crest crosses the fault obliquely.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" || cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		var err error
		cfg, err = utils.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return nil
	},
}

// initCmd initializes the client configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize client configuration",
	Long: `Initialize the moraine-offset configuration. This writes the default
survey-site parameters (fault orientation, dip-slip magnitude, sweep window)
to the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Initializing %s %s\n", appName, version)

		if err := utils.SaveConfig(utils.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		fmt.Println("\nNext steps:")
		fmt.Println("1. Set your fault geometry in the config file, or pass it per run")
		fmt.Println("2. Compute an offset: moraine-offset offset --trend 40")
		fmt.Println("3. Explore sensitivity: moraine-offset sweep")

		return nil
	},
}

// offsetCmd computes the horizontal offset for one moraine trend
var offsetCmd = &cobra.Command{
	Use:   "offset",
	Short: "Compute the horizontal offset for one moraine trend",
	Long: `Compute the horizontal component of dip-slip displacement projected
along a moraine crest of the given trend. Fault parameters default to the
configured survey site and can be overridden per run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fault, slip := faultFromFlags(cmd)
		trend, _ := cmd.Flags().GetFloat64("trend")
		showWork, _ := cmd.Flags().GetBool("show-work")
		asJSON, _ := cmd.Flags().GetBool("json")

		start := time.Now()
		sol, err := structgeo.Solve(fault, slip, geomath.Degrees(trend))
		if err != nil {
			return err
		}
		result := types.NewOffsetResult(sol, time.Since(start))

		if asJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if showWork {
			fmt.Printf("Fault:        %g/%g (dip direction/dip)\n", result.DipDirectionDeg, result.DipDeg)
			fmt.Printf("Strike:       %g°\n", result.StrikeDeg)
			fmt.Printf("Apparent dip: %.2f° (moraine plunge on the fault plane)\n", result.ApparentDipDeg)
			fmt.Printf("Rake:         %.2f°\n", result.RakeDeg)
			fmt.Printf("Dip slip:     %g %s\n", result.DipSlipM, cfg.Site.SlipUnits)
		}
		fmt.Println(result.Report())

		return nil
	},
}

// sweepCmd runs a trend sensitivity sweep over the configured fault
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep trial moraine trends and summarize the offsets",
	Long: `Evaluate the offset pipeline for a range of trial moraine trends on a
single fault and summarize the resulting offsets. Trends that land on a
geometric singularity are skipped and counted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fault, slip := faultFromFlags(cmd)
		from := flagOrDefault(cmd, "from", cfg.Sweep.FromDeg)
		to := flagOrDefault(cmd, "to", cfg.Sweep.ToDeg)
		step := flagOrDefault(cmd, "step", cfg.Sweep.StepDeg)
		asJSON, _ := cmd.Flags().GetBool("json")

		mgr := analysis.NewManager()
		result, err := mgr.SweepTrends(fault, slip,
			geomath.Degrees(from), geomath.Degrees(to), geomath.Degrees(step))
		if err != nil {
			return err
		}

		if asJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Trend sweep on fault %g/%g, dip slip %g %s\n",
			result.DipDirectionDeg, result.DipDeg, result.DipSlipM, cfg.Site.SlipUnits)
		fmt.Printf("%8s %12s %8s %10s\n", "trend", "apparent dip", "rake", "offset")
		for _, s := range result.Samples {
			fmt.Printf("%7.1f° %11.2f° %7.2f° %8.1f %s\n",
				s.TrendDeg, s.ApparentDipDeg, s.RakeDeg, s.OffsetM, cfg.Site.SlipUnits)
		}
		fmt.Printf("\nOffset: mean %.1f, std dev %.1f, range %.1f..%.1f %s\n",
			result.MeanOffsetM, result.StdDevOffsetM, result.MinOffsetM, result.MaxOffsetM, cfg.Site.SlipUnits)
		fmt.Printf("Offset closest to zero: %.1f %s at trend %g°\n",
			result.OffsetAtMinAbsM, cfg.Site.SlipUnits, result.TrendAtMinAbsDeg)
		if result.SingularTrends > 0 {
			fmt.Printf("Skipped %d singular trend(s)\n", result.SingularTrends)
		}

		return nil
	},
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", appName, version)
	},
}

// faultFromFlags builds the fault and slip inputs, starting from the
// configured defaults and applying any flags set on the command.
func faultFromFlags(cmd *cobra.Command) (structgeo.FaultPlane, structgeo.SlipVector) {
	fault := structgeo.FaultPlane{
		DipDirection: geomath.Degrees(flagOrDefault(cmd, "dip-direction", cfg.Fault.DipDirectionDeg)),
		Dip:          geomath.Degrees(flagOrDefault(cmd, "dip", cfg.Fault.DipDeg)),
	}
	slip := structgeo.SlipVector{
		DipSlip: flagOrDefault(cmd, "slip", cfg.Fault.DipSlipM),
	}
	return fault, slip
}

// flagOrDefault returns the flag value when set on the command line, the
// fallback otherwise.
func flagOrDefault(cmd *cobra.Command, name string, fallback float64) float64 {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetFloat64(name)
		return v
	}
	return fallback
}

func addFaultFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("dip-direction", 0, "fault dip direction in degrees [0,360)")
	cmd.Flags().Float64("dip", 0, "fault dip in degrees [0,90]")
	cmd.Flags().Float64("slip", 0, "dip-slip magnitude in length units (>= 0)")
}

func init() {
	addFaultFlags(offsetCmd)
	offsetCmd.Flags().Float64("trend", 0, "moraine trend in degrees [0,360)")
	offsetCmd.Flags().Bool("show-work", false, "print the intermediate geometry")
	offsetCmd.Flags().Bool("json", false, "emit the result as JSON")
	offsetCmd.MarkFlagRequired("trend")

	addFaultFlags(sweepCmd)
	sweepCmd.Flags().Float64("from", 0, "first trial trend in degrees")
	sweepCmd.Flags().Float64("to", 0, "last trial trend in degrees")
	sweepCmd.Flags().Float64("step", 0, "trend step in degrees (> 0)")
	sweepCmd.Flags().Bool("json", false, "emit the result as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(offsetCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
