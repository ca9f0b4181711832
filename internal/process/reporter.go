package process

import (
	"fmt"
	"io"

	"github.com/ytget/qr-creator/internal/model"
)

// Console messages
const (
	MsgNoData     = "No data given."
	MsgProcessing = "Processing %d items...."
	MsgGenerating = "Generating QR for: %s"
	MsgAllSaved   = "All QR codes saved."
)

// ConsoleReporter prints batch progress lines
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

func (r *ConsoleReporter) NoData() {
	fmt.Fprintln(r.out, MsgNoData)
}

func (r *ConsoleReporter) Start(count int) {
	fmt.Fprintf(r.out, MsgProcessing+"\n", count)
}

func (r *ConsoleReporter) Item(text string) {
	fmt.Fprintf(r.out, MsgGenerating+"\n", text)
}

func (r *ConsoleReporter) Done(*model.Result) {
	fmt.Fprintln(r.out, MsgAllSaved)
}

// nopReporter discards progress
type nopReporter struct{}

func (nopReporter) NoData()            {}
func (nopReporter) Start(int)          {}
func (nopReporter) Item(string)        {}
func (nopReporter) Done(*model.Result) {}
