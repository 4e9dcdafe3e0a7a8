package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"movegen/internal/annotate"
	"movegen/internal/config"
	"movegen/internal/diagnostic"
	"movegen/internal/gen"
	"movegen/internal/metadata"
	"movegen/internal/scan"
)

// Summary reports what a run did.
type Summary struct {
	// Included and Skipped count the per-block decisions.
	Included int
	Skipped  int
	// Diags holds all non-fatal findings from loading and annotation.
	Diags diagnostic.Diagnostics
}

// Run regenerates the output table from the configured inputs.
func Run(cfg config.Config, log zerolog.Logger) (*Summary, error) {
	doc, decisions, summary, err := analyze(cfg, log)
	if err != nil {
		return nil, err
	}

	out, err := gen.Render(doc, decisions, cfg.MaxGeneration)
	if err != nil {
		return nil, err
	}

	if err := gen.WriteFile(cfg.OutputPath, out); err != nil {
		return nil, err
	}

	log.Info().
		Str("output", cfg.OutputPath).
		Int("included", summary.Included).
		Int("skipped", summary.Skipped).
		Msg("wrote output table")

	return summary, nil
}

// Check performs the full analysis without writing anything.
func Check(cfg config.Config, log zerolog.Logger) (*Summary, error) {
	_, _, summary, err := analyze(cfg, log)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("included", summary.Included).
		Int("skipped", summary.Skipped).
		Msg("check complete, nothing written")

	return summary, nil
}

// analyze loads both inputs, scans the source, and decides every block.
func analyze(cfg config.Config, log zerolog.Logger) (*scan.Document, []annotate.Decision, *Summary, error) {
	summary := &Summary{}

	table, err := metadata.Load(cfg.MetadataPath, &summary.Diags)
	if err != nil {
		return nil, nil, nil, err
	}

	log.Debug().Str("path", cfg.MetadataPath).Int("records", len(table)).Msg("loaded metadata table")

	src, err := os.Open(cfg.SourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, nil, nil, fmt.Errorf("source table %s: %w", cfg.SourcePath, metadata.ErrMissingInput)
		}

		return nil, nil, nil, fmt.Errorf("opening source table %s: %w", cfg.SourcePath, err)
	}
	defer src.Close()

	doc, err := scan.Scan(src)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("scanning %s: %w", cfg.SourcePath, err)
	}

	log.Debug().Str("path", cfg.SourcePath).Int("blocks", len(doc.Blocks)).Msg("scanned source table")

	decisions := make([]annotate.Decision, len(doc.Blocks))
	for i, block := range doc.Blocks {
		decisions[i] = annotate.Decide(block, table, cfg.MaxGeneration, &summary.Diags)

		switch decisions[i].Kind {
		case annotate.KindInclude:
			summary.Included++
		case annotate.KindSkip:
			summary.Skipped++
		}
	}

	logDiags(log, summary.Diags)

	return doc, decisions, summary, nil
}

func logDiags(log zerolog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		log.Warn().Str("code", d.Code).Msg(d.String())
	}

	for _, d := range diags.Infos {
		log.Debug().Str("code", d.Code).Msg(d.String())
	}
}
