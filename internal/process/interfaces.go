package process

import (
	"github.com/ytget/qr-creator/internal/model"
	"github.com/ytget/qr-creator/internal/qrcode"
)

// Processor defines the interface for the processing service.
type Processor interface {
	// RunBatch processes raw input non-interactively into outputDir
	RunBatch(raw, outputDir string) (*model.Result, error)

	// Submit processes input typed into the window; empty input returns (nil, nil)
	Submit(input, savePath string) (*model.Result, error)

	SetReporter(Reporter)
	SetEncoder(qrcode.Encoder)
	SetDryRun(dryRun bool)
	DryRun() bool
	SetCreateOutputDir(create bool)
}

// Reporter receives progress of a run.
type Reporter interface {
	NoData()
	Start(count int)
	Item(text string)
	Done(result *model.Result)
}
