package process

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/qr-creator/internal/logger"
	"github.com/ytget/qr-creator/internal/model"
	"github.com/ytget/qr-creator/internal/platform"
	"github.com/ytget/qr-creator/internal/qrcode"
)

// ItemSeparator splits the raw input into items
const ItemSeparator = ","

// ErrNoData marks input without any non-empty item. It is reported, not returned.
var ErrNoData = errors.New("no data given")

// RunOptions selects how a run treats items and the output directory
type RunOptions struct {
	FilterEmpty   bool
	AutoCreateDir bool
	Mode          model.ImageMode
}

// BatchOptions returns the options used by batch mode
func BatchOptions(createDir bool) RunOptions {
	return RunOptions{FilterEmpty: true, AutoCreateDir: createDir, Mode: model.ImageModeRaw}
}

// InteractiveOptions returns the options used by the window
func InteractiveOptions() RunOptions {
	return RunOptions{FilterEmpty: true, AutoCreateDir: true, Mode: model.ImageModeDisplay}
}

// Service generates and saves QR codes for comma-separated input
type Service struct {
	encoder         qrcode.Encoder
	writer          qrcode.ImageWriter
	reporter        Reporter
	dryRun          bool
	createOutputDir bool
}

// NewService creates a new processing service
func NewService(encoder qrcode.Encoder, writer qrcode.ImageWriter) *Service {
	return &Service{
		encoder:  encoder,
		writer:   writer,
		reporter: nopReporter{},
	}
}

// SetReporter sets the progress reporter; nil discards progress
func (s *Service) SetReporter(r Reporter) {
	if r == nil {
		r = nopReporter{}
	}
	s.reporter = r
}

// SetEncoder replaces the encoder, e.g. after settings changed
func (s *Service) SetEncoder(encoder qrcode.Encoder) {
	s.encoder = encoder
}

// SetDryRun enables dry-run: images are generated but nothing is written
func (s *Service) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// DryRun reports whether dry-run is enabled
func (s *Service) DryRun() bool {
	return s.dryRun
}

// SetCreateOutputDir makes batch mode create a missing output directory
func (s *Service) SetCreateOutputDir(create bool) {
	s.createOutputDir = create
}

// RunBatch processes raw input non-interactively
func (s *Service) RunBatch(raw, outputDir string) (*model.Result, error) {
	return s.Run(raw, outputDir, BatchOptions(s.createOutputDir))
}

// Submit processes input from the window. Empty input is ignored.
func (s *Service) Submit(input, savePath string) (*model.Result, error) {
	if input == "" {
		return nil, nil
	}
	result, err := s.Run(input, savePath, InteractiveOptions())
	if err != nil {
		return result, err
	}
	if len(result.Items) == 0 {
		return nil, nil
	}
	return result, nil
}

// Run splits raw into items and generates (and unless dry-run, saves) one
// image per item in order. The first failure aborts the remaining items.
func (s *Service) Run(raw, dir string, opts RunOptions) (*model.Result, error) {
	result := &model.Result{
		RunID: uuid.New().String(),
		Dir:   dir,
	}
	log := logger.L().With(zap.String(logger.KeyRunID, result.RunID))

	items := SplitItems(raw, opts.FilterEmpty)
	if len(items) == 0 {
		log.Info("nothing to process", zap.Error(ErrNoData))
		s.reporter.NoData()
		return result, nil
	}

	for _, text := range items {
		result.Items = append(result.Items, &model.ItemResult{Text: text, Status: model.ItemStatusPending})
	}

	log.Info("processing items",
		zap.Int(logger.KeyCount, len(items)),
		zap.String(logger.KeyMode, opts.Mode.String()),
		zap.String(logger.KeyPath, dir),
		zap.Bool("dry_run", s.dryRun),
	)
	s.reporter.Start(len(items))

	if opts.AutoCreateDir && !s.dryRun {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			log.Error("failed to create output directory", zap.String(logger.KeyPath, dir), zap.Error(err))
			return result, fmt.Errorf("%w: create %s: %v", qrcode.ErrIO, dir, err)
		}
	}

	for _, item := range result.Items {
		s.reporter.Item(item.Text)
		if err := s.processItem(item, dir, opts.Mode, result); err != nil {
			log.Error("item failed",
				zap.String(logger.KeyItem, item.Text),
				zap.Int("abandoned", unfinished(result)),
				zap.Error(err),
			)
			return result, err
		}
		log.Debug("item done",
			zap.String(logger.KeyItem, item.Text),
			zap.String("status", item.Status.String()),
			zap.String(logger.KeyPath, item.Path),
		)
	}

	s.reporter.Done(result)
	log.Info("all items processed", zap.Int("saved", result.SavedCount()))
	return result, nil
}

// processItem generates and saves a single item, updating its result
func (s *Service) processItem(item *model.ItemResult, dir string, mode model.ImageMode, result *model.Result) error {
	img, err := s.encoder.Generate(item.Text, mode)
	if err != nil {
		item.Status = model.ItemStatusError
		item.Err = err
		return err
	}
	item.Status = model.ItemStatusGenerated
	result.Last = img

	if s.dryRun {
		item.Status = model.ItemStatusSkipped
		return nil
	}

	path, err := s.writer.Save(img, item.Text, dir)
	if err != nil {
		item.Status = model.ItemStatusError
		item.Err = err
		return err
	}
	item.Status = model.ItemStatusSaved
	item.Path = path
	return nil
}

// unfinished counts items left pending by an aborted run
func unfinished(result *model.Result) int {
	n := 0
	for _, item := range result.Items {
		if !item.Status.IsFinished() {
			n++
		}
	}
	return n
}

// SplitItems splits raw on commas and trims every item. With filterEmpty,
// items that are empty after trimming are dropped.
func SplitItems(raw string, filterEmpty bool) []string {
	parts := strings.Split(raw, ItemSeparator)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" && filterEmpty {
			continue
		}
		items = append(items, item)
	}
	return items
}
