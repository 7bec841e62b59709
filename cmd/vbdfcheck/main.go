package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/containerd/log"
	"github.com/spf13/cobra"

	"github.com/virtbox/vbdfcheck/internal/paths"
	"github.com/virtbox/vbdfcheck/internal/platform"
	"github.com/virtbox/vbdfcheck/internal/validate"
)

var rootCmd = &cobra.Command{
	Use:   "vbdfcheck",
	Short: "Check virtual device bus addresses against a board inventory.",
	Long: "vbdfcheck verifies that no virtual UART or shared-memory device in a\n" +
		"scenario description is assigned a bus address already claimed by a\n" +
		"native device, a reserved slot, or another virtual device.",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().String("board", "", "board description document (default "+paths.ConfigDir+"/"+paths.BoardFileName+")")
	rootCmd.Flags().String("scenario", "", "scenario description document (default "+paths.ConfigDir+"/"+paths.ScenarioFileName+")")
	rootCmd.Flags().Bool("strict", false, "fail a category on malformed address strings instead of skipping them")
	rootCmd.Flags().Bool("debug", false, "enable debug logging")
}

func run(cmd *cobra.Command, _ []string) error {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		if err := log.SetLevel("debug"); err != nil {
			return err
		}
	}

	boardPath, _ := cmd.Flags().GetString("board")
	if boardPath == "" {
		boardPath = paths.BoardPath()
	}
	scenarioPath, _ := cmd.Flags().GetString("scenario")
	if scenarioPath == "" {
		scenarioPath = paths.ScenarioPath()
	}

	board, err := loadBoard(boardPath)
	if err != nil {
		return err
	}
	scenario, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	var opts []validate.Option
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		opts = append(opts, validate.WithStrictParsing())
	}

	report := validate.New(board, scenario, opts...).Validate()

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if !report.Result {
		return errors.New("virtual device address collision detected")
	}
	return nil
}

func loadBoard(path string) (*platform.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board description %s: %w", path, err)
	}
	return platform.DecodeBoard(data)
}

func loadScenario(path string) (*platform.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario description %s: %w", path, err)
	}
	return platform.DecodeScenario(data)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.L.WithError(err).Error("validation did not pass")
		os.Exit(1)
	}
}
