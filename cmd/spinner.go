package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/PolarWolf314/sealpost/internal/ui"
	"github.com/PolarWolf314/sealpost/internal/utils"
	"github.com/briandowns/spinner"
)

// newSpinner creates a spinner writing to w. It only animates when not in
// verbose or debug mode and stdout is a terminal; otherwise start and stop
// are no-ops and the final message is printed directly.
//
// The returned finish function stops the spinner and prints msg followed by
// a newline. It is safe to call finish without calling start.
func newSpinner(message string, w io.Writer) (start func(), finish func(msg string)) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	animate := !verbose && !debug && utils.IsStdoutTerminal()
	if !animate {
		Logger.Infof("Running in verbose or non-interactive mode: %s", message)
	}

	start = func() {
		if animate && !s.Active() {
			s.Start()
		}
	}
	finish = func(msg string) {
		if s.Active() {
			s.Stop()
		}
		if msg != "" {
			fmt.Fprint(w, ui.EnsureNewline(msg))
		}
	}
	return start, finish
}
