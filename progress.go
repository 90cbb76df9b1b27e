package pcawgmaf

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

const progressBarWidth = 20

// Progress draws a single, overwritten console line with a percentage bar and
// a label for the step that just finished.
type Progress struct {
	w     io.Writer
	total int
	done  int
}

func NewProgress(w io.Writer, total int) *Progress {
	return &Progress{w: w, total: total}
}

// Step marks one more unit of work as complete and redraws the bar.
func (p *Progress) Step(label string) {
	p.done++
	if p.w == nil {
		return
	}

	frac := 1.0
	if p.total > 0 {
		frac = float64(p.done) / float64(p.total)
	}

	fmt.Fprintf(p.w, "\r[%-*s] %d%%\t INFO: %s", progressBarWidth, strings.Repeat("=", int(progressBarWidth*frac)), int(100*frac), label)
}

// Done terminates the progress line.
func (p *Progress) Done() {
	if p.w != nil && p.done > 0 {
		fmt.Fprintln(p.w)
	}
}

func (p *Progress) Completed() int {
	return p.done
}

// Timer logs the elapsed time of a named step in minutes. Usage:
//
//	defer pcawgmaf.Timer("PrepareCancerClasses")()
func Timer(name string) func() {
	started := time.Now()

	return func() {
		log.Printf("INFO: Total time running %s: %.2f minutes\n", name, time.Since(started).Minutes())
	}
}
