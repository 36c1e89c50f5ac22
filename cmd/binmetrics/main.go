// SPDX-License-Identifier: MIT
// Command binmetrics computes binned AUPRC over a CSV prediction dump and
// prints a JSON report. The library stays silent; all logging lives here.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/quantfold/binmetrics/auprc"
	"github.com/quantfold/binmetrics/binning"
)

var (
	inputPath  string
	numTasks   int
	bins       int
	thresholds []float64
	verbose    bool
)

// report is the JSON document written to stdout.
type report struct {
	AUPRC      []float64 `json:"auprc"`
	Thresholds []float64 `json:"thresholds"`
	NumTasks   int       `json:"num_tasks"`
	BatchSize  int       `json:"batch_size"`
}

var rootCmd = &cobra.Command{
	Use:   "binmetrics",
	Short: "Binned AUPRC for binary classifiers",
	Long: `binmetrics reads a CSV prediction dump (one "score,target" pair per
line, target 0 or 1) and computes the binned area under the
precision-recall curve.

With --num-tasks k the rows are split row-major into k equal task slices
and one AUPRC is reported per task. The threshold grid comes from --bins
(uniform) or --thresholds (explicit, must start at 0 and end at 1).`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "CSV file with score,target per line (required)")
	rootCmd.Flags().IntVar(&numTasks, "num-tasks", 1, "number of independent tasks; rows split row-major")
	rootCmd.Flags().IntVar(&bins, "bins", binning.DefaultNumThresholds, "uniform threshold grid size")
	rootCmd.Flags().Float64SliceVar(&thresholds, "thresholds", nil, "explicit threshold grid, overrides --bins")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("input")
}

func run(cmd *cobra.Command, _ []string) error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if numTasks < 1 {
		return fmt.Errorf("num-tasks must be at least 1, got %d", numTasks)
	}

	scores, labels, err := readPredictions(inputPath)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		return errors.New("no predictions found in input")
	}
	if len(scores)%numTasks != 0 {
		return fmt.Errorf("cannot split %d rows into %d equal task slices", len(scores), numTasks)
	}
	batchSize := len(scores) / numTasks
	log.Debug().
		Int("rows", len(scores)).
		Int("numTasks", numTasks).
		Int("batchSize", batchSize).
		Msg("loaded predictions")

	input := mat.NewDense(numTasks, batchSize, scores)
	target := mat.NewDense(numTasks, batchSize, labels)

	spec := binning.Uniform(bins)
	if len(thresholds) > 0 {
		spec = binning.Explicit(thresholds...)
	}

	opts := auprc.BinnedOptions{NumTasks: numTasks, Threshold: spec}
	res, grid, err := auprc.BinaryBinnedAUPRC(input, target, &opts)
	if err != nil {
		return err
	}
	log.Info().
		Floats64("auprc", res).
		Int("gridSize", len(grid)).
		Msg("computed binned AUPRC")

	out, err := sonic.ConfigDefault.MarshalIndent(report{
		AUPRC:      res,
		Thresholds: grid,
		NumTasks:   numTasks,
		BatchSize:  batchSize,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}

// readPredictions parses the score,target CSV. A non-numeric first record is
// treated as a header and skipped.
func readPredictions(path string) (scores, labels []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	for i, rec := range records {
		score, serr := strconv.ParseFloat(rec[0], 64)
		label, lerr := strconv.ParseFloat(rec[1], 64)
		if serr != nil || lerr != nil {
			if i == 0 {
				continue // header row
			}

			return nil, nil, fmt.Errorf("line %d: cannot parse %q", i+1, rec)
		}
		if label != 0 && label != 1 {
			return nil, nil, fmt.Errorf("line %d: target must be 0 or 1, got %v", i+1, label)
		}
		scores = append(scores, score)
		labels = append(labels, label)
	}

	return scores, labels, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("binmetrics failed")
		os.Exit(1)
	}
}
