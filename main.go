package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/qr-creator/internal/config"
	"github.com/ytget/qr-creator/internal/logger"
	"github.com/ytget/qr-creator/internal/process"
	"github.com/ytget/qr-creator/internal/qrcode"
	"github.com/ytget/qr-creator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. Without --batch the window is launched.
func newRootCommand() *cobra.Command {
	opts := config.DefaultOptions()
	var level string

	root := &cobra.Command{
		Use:          "qr-creator [data]",
		Short:        "Create QR code images from comma-separated text",
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Data = args[0]
			}
			if err := opts.SetLevel(level); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			logger.Initialize(opts.DryRun)
			defer logger.Close()

			if opts.Batch {
				return runBatch(cmd, opts)
			}
			return runGUI(opts)
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&opts.Batch, "batch", "b", false, "Run the tool from the commandline instead of opening a window")
	flags.BoolVarP(&opts.DryRun, "debug", "d", false, "Don't actually save QR codes to the disk")
	flags.StringVarP(&opts.OutputDir, "output", "o", config.DefaultOutputDir, "Path to the desired output directory (batch mode)")
	flags.BoolVar(&opts.CreateOutput, "mkdir", false, "Create the output directory if it does not exist (batch mode)")
	flags.StringVar(&level, "level", string(config.DefaultLevel), "Error correction level: low, medium, high, highest")
	flags.IntVar(&opts.BoxSize, "box-size", config.DefaultBoxSize, "Pixels per QR module")
	flags.StringVar(&opts.SubfolderName, "subfolder", config.DefaultSubfolderName, "Name of the optional save subfolder (window mode)")

	return root
}

// newService wires the encoder, writer and dry-run flag
func newService(opts *config.Options) *process.Service {
	service := process.NewService(qrcode.NewGenerator(opts.Level, opts.BoxSize), qrcode.NewFileWriter())
	service.SetDryRun(opts.DryRun)
	service.SetCreateOutputDir(opts.CreateOutput)
	return service
}

// runBatch processes opts.Data without a window
func runBatch(cmd *cobra.Command, opts *config.Options) error {
	service := newService(opts)
	service.SetReporter(process.NewConsoleReporter(cmd.OutOrStdout()))

	result, err := service.RunBatch(opts.Data, opts.OutputDir)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}
	logger.L().Debug("batch finished", zap.String(logger.KeyRunID, result.RunID), zap.Int(logger.KeyCount, len(result.Items)))
	return nil
}

// runGUI opens the main window and blocks until it is closed
func runGUI(opts *config.Options) error {
	logger.L().Info("starting QR Creator", zap.String("version", version))

	myApp := app.NewWithID(ui.AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("QR Creator v%s", version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	savePath := config.NewSavePath(config.DefaultOutputDir, opts.SubfolderName)
	settings := config.NewSettings(opts)

	ui.NewMainWindow(myWindow, newService(opts), savePath, settings, opts.Data)

	myWindow.ShowAndRun()
	return nil
}
