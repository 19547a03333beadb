package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/TANJUMAJERIN/testsmellRank/internal/contract"
	"github.com/TANJUMAJERIN/testsmellRank/schema"
)

// WriteRankedResults outputs the analysis result, dispatching based on the
// output format configured. JSON always carries the complete result map so
// machine consumers see every smell type; the result limit only trims the
// human-facing table and CSV views.
func WriteRankedResults(result *schema.Result, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeResultJSON(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeResultCSV(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeResultJSON handles opening the file and calling the JSON writer.
func writeResultJSON(result *schema.Result, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// writeResultCSV handles opening the file and calling the CSV writer.
// An unavailable result yields a single error column so the failure is
// visible in the output instead of a bare header.
func writeResultCSV(result *schema.Result, cfg *contract.Config, fmtFloat func(float64) string) error {
	if result.Unavailable() {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"error"}, func(csvWriter *csv.Writer) error {
				return csvWriter.Write([]string{result.Error})
			})
		}, "Wrote CSV")
	}

	header := []string{
		"rank",
		"smell_type",
		"prioritization_score",
		"label",
		"cp_score",
		"fp_score",
		"change_frequency_rho",
		"change_extent_rho",
		"fault_frequency_rho",
		"fault_extent_rho",
		"p_cf",
		"p_ce",
		"p_ff",
		"p_fe",
		"instance_count",
		"files_with_smell",
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, entry := range limitRanked(result, cfg.ResultLimit) {
				s := entry.Score
				rec := []string{
					strconv.Itoa(s.DataRank),
					entry.SmellType,
					fmtFloat(s.PrioritizationScore),
					schema.GetPlainLabel(s.PrioritizationScore),
					fmtFloat(s.CPScore),
					fmtFloat(s.FPScore),
					fmtFloat(s.ChangeFrequencyRho),
					fmtFloat(s.ChangeExtentRho),
					fmtFloat(s.FaultFrequencyRho),
					fmtFloat(s.FaultExtentRho),
					fmtFloat(s.PValues.CF),
					fmtFloat(s.PValues.CE),
					fmtFloat(s.PValues.FF),
					fmtFloat(s.PValues.FE),
					strconv.Itoa(s.InstanceCount),
					strconv.Itoa(len(s.FilesWithSmell)),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeResultTable generates and writes the human-readable table.
func writeResultTable(result *schema.Result, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if result.Unavailable() {
		_, err := fmt.Fprintf(writer, "History unavailable: %s\n", result.Error)
		return err
	}

	headerPrefix := ""
	if cfg.UseEmojis {
		headerPrefix = "🧪 "
	}
	if _, err := fmt.Fprintf(writer, "%sTest smell ranking by historical risk\n", headerPrefix); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Smell", "Score", "Label", "CP", "FP", "Instances", "Files", "Sig"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	label := schema.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}

	ranked := limitRanked(result, cfg.ResultLimit)
	var data [][]string
	for _, entry := range ranked {
		s := entry.Score
		row := []string{
			strconv.Itoa(s.DataRank),
			contract.TruncatePath(entry.SmellType, getMaxTableSmellWidth(cfg)),
			fmtFloat(s.PrioritizationScore),
			label(s.PrioritizationScore),
			fmtFloat(s.CPScore),
			fmtFloat(s.FPScore),
			strconv.Itoa(s.InstanceCount),
			strconv.Itoa(len(s.FilesWithSmell)),
			fmt.Sprintf("%d/4", schema.CountSignificant(s.Significant)),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if stats := result.Statistics; stats != nil {
		if _, err := fmt.Fprintf(writer, "History: %d commits (%.1f%% faulty), %d files, %d test files\n",
			stats.TotalCommits, stats.FaultPercentage, stats.TotalFiles, stats.TestFiles); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d of %d smell types. Completed in %v with %d workers. Store backend: %s\n",
		len(ranked), len(result.Metrics), duration, cfg.Workers, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// limitRanked returns the rank-ordered entries trimmed to the result limit.
func limitRanked(result *schema.Result, limit int) []schema.RankedSmell {
	ranked := result.Ranked()
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
