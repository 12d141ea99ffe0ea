package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/cotiza/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/cotiza/internal/core/domain"
)

// notificationPrinter writes notifications as "[level] message" lines,
// coloured by level when the writer is a terminal.
type notificationPrinter struct {
	w      io.Writer
	styles *styles.Styles
	colour bool
}

func newNotificationPrinter(w io.Writer) *notificationPrinter {
	return &notificationPrinter{
		w:      w,
		styles: styles.DefaultStyles(),
		colour: isTerminal(w),
	}
}

func (p *notificationPrinter) print(n domain.Notification) {
	if p.colour {
		fmt.Fprintln(p.w, p.styles.Notification(n))
		return
	}
	fmt.Fprintf(p.w, "[%s] %s\n", n.Level, n.Message)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printNotifications prints every notification raised while the command
// runs. The returned function stops printing.
func printNotifications(cmd *cobra.Command) func() {
	if notificationFeed == nil {
		return func() {}
	}
	p := newNotificationPrinter(cmd.OutOrStdout())
	return notificationFeed.Subscribe(p.print)
}
