// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on
// their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayDiceResult], [DisplayDiagnostics].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatResult], [FormatDiceResult].
//
// Every universe runs these against the same inherited stream; lines from
// sibling universes interleave at write granularity, so each Display call
// emits a single line.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/WhitingJarod/multiverse-random/internal/format"
	"github.com/WhitingJarod/multiverse-random/internal/metrics"
	"github.com/WhitingJarod/multiverse-random/internal/proctable"
	"github.com/WhitingJarod/multiverse-random/internal/ui"
)

// FormatResult returns the styled one-line report of this universe's
// selected item.
func FormatResult(item string) string {
	styles := ui.NewStyles()
	return styles.Label.Render("Selected: ") + styles.Item.Render(item)
}

// DisplayResult writes this universe's selected item. Quiet mode prints the
// bare item, suitable for piping.
func DisplayResult(out io.Writer, item string, quiet bool) {
	if quiet {
		fmt.Fprintln(out, item)
		return
	}
	fmt.Fprintln(out, FormatResult(item))
}

// FormatDiceResult returns the styled report of a 2d4+2 roll.
func FormatDiceResult(total int) string {
	styles := ui.NewStyles()
	return styles.Label.Render("The result of rolling 2d4+2 was ") +
		styles.Item.Render(fmt.Sprintf("%d", total))
}

// DisplayDiceResult writes the outcome of the dice demonstration.
func DisplayDiceResult(out io.Writer, total int, quiet bool) {
	if quiet {
		fmt.Fprintln(out, total)
		return
	}
	fmt.Fprintln(out, FormatDiceResult(total))
}

// DisplayError writes a styled error line.
func DisplayError(out io.Writer, err error) {
	styles := ui.NewStyles()
	fmt.Fprintln(out, styles.Failure.Render("Error: "+err.Error()))
}

// DisplayDiagnostics writes a one-line summary of this universe's process:
// pid, elapsed time, heap in use, and any unreaped children still visible
// in the process table. Used in verbose mode.
func DisplayDiagnostics(out io.Writer, elapsed time.Duration) {
	snap := metrics.Snapshot()
	zombies := 0
	if zs, err := proctable.Zombies(int32(snap.PID)); err == nil {
		zombies = len(zs)
	}
	fmt.Fprintf(out, "universe pid=%d elapsed=%s heap=%s zombies=%d\n",
		snap.PID, format.Duration(elapsed), format.Bytes(snap.HeapAlloc), zombies)
}
