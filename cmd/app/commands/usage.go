package commands

import (
	"fmt"
	"io"
)

// RunUsage prints the one-line usage message. prog is printed as invoked (os.Args[0]).
func RunUsage(w io.Writer, prog string) {
	_, _ = fmt.Fprintf(w, "Usage: %s <generate|check> <number>\n", prog)
}
