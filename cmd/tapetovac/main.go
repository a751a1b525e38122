// Command tapetovac fits JPEG images onto a fixed wallpaper canvas.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dixieflatline76/Tapetovac/config"
	"github.com/dixieflatline76/Tapetovac/pkg/trash"
	"github.com/dixieflatline76/Tapetovac/pkg/wallpaper"
	"github.com/dixieflatline76/Tapetovac/util/log"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 255 // -1 as seen by the shell
)

const (
	allFlag         = "--all"
	allAndTrashFlag = "--all-and-trash"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes one invocation and returns the process exit code.
// Per-file failures are logged and do not change the exit code.
func run(args []string, stderr io.Writer) int {
	if len(args) != 1 {
		printUsage(stderr)
		return exitUsage
	}

	arg := args[0]
	if isHelp(arg) {
		printUsage(stderr)
		return exitOK
	}

	cfg := config.Default()
	batch := false
	switch {
	case arg == allFlag || arg == allAndTrashFlag:
		batch = true
		cfg = cfg.WithTrash(arg == allAndTrashFlag)
	case strings.HasPrefix(arg, "-"):
		fmt.Fprintf(stderr, "unknown option %q\n\n", arg)
		printUsage(stderr)
		return exitUsage
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("%v", err)
		return exitError
	}

	r := wallpaper.NewResizer(cfg, trash.New())
	if !batch {
		r.ResizeSingle(arg)
		return exitOK
	}

	summary, err := r.ResizeAll(".")
	if err != nil {
		log.Printf("%v", err)
		return exitError
	}
	log.Printf("done: converted=%d skipped=%d failed=%d", summary.Converted, summary.Skipped, summary.Failed)
	if summary.TrashFailed > 0 {
		log.Printf("%d originals could not be moved to trash", summary.TrashFailed)
	}
	return exitOK
}

func isHelp(s string) bool {
	return s == "-h" || s == "--help"
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
    tapetovac picture.jpg
  or
    tapetovac %[1]s
    tapetovac %[2]s

  The second form will try to resize all JPGs in the current directory.
  It will skip any files ending with '%[3]s' suffix or files where the
  corresponding resized file exists.
  If %[2]s is specified, the original file is sent to the trash/recycle bin
  after a successful conversion.
`, allFlag, allAndTrashFlag, config.DefaultResizedSuffix)
}
