// Package converter turns the "Open Items List" sheet of a workbook into the
// Exceptions and Clarifications document.
package converter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nconklindev/exclar/internal/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OutputName is the file name of every generated document.
const OutputName = "Exceptions_and_Clarifications.docx"

type Options struct {
	// OutputDir receives the document. Empty means next to the input file.
	OutputDir string
	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger
}

type Converter struct {
	outputDir string
	log       zerolog.Logger
}

func New(opts Options) *Converter {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Converter{
		outputDir: opts.OutputDir,
		log:       log,
	}
}

// Request identifies one conversion. An empty ID is replaced by a new uuid.
type Request struct {
	ID        string
	InputFile string
}

// Convert runs the whole pipeline and writes the document. Stage transitions
// are sent on stageChan without blocking; a nil channel is allowed. The
// document only appears once it is completely written.
func (c *Converter) Convert(ctx context.Context, req Request, stageChan chan<- Stage) (*types.ConversionResult, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	log := c.log.With().Str("conversion_id", req.ID).Str("path", req.InputFile).Logger()

	result := &types.ConversionResult{
		ID:        req.ID,
		InputFile: req.InputFile,
	}

	// Helper to report progress
	report := func(s Stage) {
		log.Debug().Stringer("stage", s).Msg("stage")
		if stageChan == nil {
			return
		}
		select {
		case stageChan <- s:
		default:
		}
	}

	fail := func(err error) (*types.ConversionResult, error) {
		log.Error().Err(err).Msg("conversion failed")
		report(StageFailed)
		return nil, err
	}

	classified, err := c.classify(ctx, req.InputFile, result, report)
	if err != nil {
		return fail(err)
	}

	report(StageAssembling)
	doc := BuildDocument(classified)

	outDir := c.outputDir
	if outDir == "" {
		outDir = filepath.Dir(req.InputFile)
	}
	outputFile := filepath.Join(outDir, OutputName)

	if err := ctx.Err(); err != nil {
		return fail(processingError(StageAssembling, err))
	}
	if err := writeAtomic(outputFile, doc.Render); err != nil {
		return fail(processingError(StageAssembling, err))
	}

	result.OutputFile = outputFile
	report(StageDone)

	log.Info().
		Str("output", outputFile).
		Int("exceptions", result.Exceptions).
		Int("clarifications", result.Clarifications).
		Msg("document created")

	return result, nil
}

// Preview runs the pipeline up to formatting and returns the entries that
// would be written.
func (c *Converter) Preview(ctx context.Context, inputFile string) (*types.Classified, error) {
	var result types.ConversionResult
	return c.classify(ctx, inputFile, &result, func(Stage) {})
}

func (c *Converter) classify(ctx context.Context, inputFile string, result *types.ConversionResult, report func(Stage)) (*types.Classified, error) {
	report(StageValidating)
	if err := ValidateFileName(inputFile); err != nil {
		return nil, err
	}

	rows, err := LoadRows(inputFile)
	if err != nil {
		var notFound *SheetNotFoundError
		if errors.As(err, &notFound) {
			return nil, err
		}
		return nil, processingError(StageValidating, err)
	}
	c.log.Debug().Str("sheet_name", SheetName).Int("rows", len(rows)).Msg("sheet loaded")

	if err := ctx.Err(); err != nil {
		return nil, processingError(StageExtracting, err)
	}
	report(StageExtracting)
	texts := ExtractTexts(rows)
	result.RowsScanned = max(len(rows)-HeaderRows, 0)
	result.TextsExtracted = len(texts)

	report(StageClassifying)
	exceptions, clarifications := Classify(texts)

	report(StageFormatting)
	classified := &types.Classified{
		Exceptions:     ParseBullets(exceptions),
		Clarifications: ParseBullets(clarifications),
	}
	result.Exceptions = len(classified.Exceptions)
	result.Clarifications = len(classified.Clarifications)

	return classified, nil
}

// writeAtomic writes to a temporary file in the target directory and renames
// it into place, so a failed write never leaves a partial document.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".exclar-*.docx")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close document: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("move document into place: %w", err)
	}
	return nil
}
