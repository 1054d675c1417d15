package utils

import (
	"fmt"
	"io"

	"gb2gh/internal/domain/record"

	"github.com/gosuri/uilive"
)

// Progress keeps a single live line with the last written record.
type Progress struct {
	writer *uilive.Writer
}

func NewProgress(out io.Writer) *Progress {
	w := uilive.New()
	w.Out = out

	return &Progress{writer: w}
}

func (p *Progress) Start() {
	p.writer.Start()
}

func (p *Progress) Update(pr *record.Progress) {
	fmt.Fprintf(
		p.writer,
		"[%d/%d] %s #%d -> #%d\n",
		pr.Done,
		pr.Total,
		pr.Record.Kind(),
		pr.Record.Info().Number,
		pr.Created.Number,
	)
}

func (p *Progress) Stop() {
	p.writer.Stop()
}
