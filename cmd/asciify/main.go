package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/esimov/asciify"
	"github.com/esimov/asciify/utils"
	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┬┬┌─┐┬ ┬
├─┤└─┐│  ││├┤ └┬┘
┴ ┴└─┘└─┘┴┴└   ┴

Image to ascii art converter.
    Version: %s

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

// errHelp is returned by parseArgs when only the usage or the version was requested.
var errHelp = errors.New("help requested")

func main() {
	log.SetFlags(0)

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		utils.SetColor(false)
	}

	proc, op, err := parseArgs(os.Args, os.Stdout)
	if err != nil {
		if errors.Is(err, errHelp) {
			return
		}
		log.Print(utils.DecorateText(err.Error(), utils.ErrorMessage))
		log.Print("Run with --help for usage.")
		os.Exit(exitCode(err))
	}

	if err := proc.Execute(op); err != nil {
		log.Printf("%s\n\t%s",
			utils.DecorateText("Error converting the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		os.Exit(exitCode(err))
	}
}

// parseArgs maps the command line onto the processor and the execution options.
// Width and height are validated here, before any file is opened.
func parseArgs(args []string, usage io.Writer) (*asciify.Processor, *asciify.Ops, error) {
	var (
		width   int
		height  int
		preview string
		workers = runtime.NumCPU()
	)

	set := getopt.New()
	set.SetProgram("asciify")
	set.SetParameters("input [output]")

	widthOpt := set.FlagLong(&width, "width", 'w', "Output width in characters", "width")
	heightOpt := set.FlagLong(&height, "height", 'h', "Output height in characters", "height")
	set.FlagLong(&preview, "preview", 'p', "Also save an image snapshot of the result", "file")
	set.FlagLong(&workers, "conc", 'c', "Number of files to process concurrently", "n")
	quiet := set.BoolLong("quiet", 'q', "Do not show progress and status messages")
	orient := set.BoolLong("auto-orient", 0, "Rotate JPEG sources according to their EXIF orientation")
	help := set.BoolLong("help", 0, "Show this help")
	version := set.BoolLong("version", 0, "Show the version")

	if err := set.Getopt(args, nil); err != nil {
		return nil, nil, errors.Wrap(asciify.ErrArgument, err.Error())
	}

	if *help || *version {
		fmt.Fprintf(usage, HelpBanner, Version)
		if *help {
			set.PrintUsage(usage)
		}
		return nil, nil, errHelp
	}

	if widthOpt.Seen() && width <= 0 {
		return nil, nil, errors.Wrapf(asciify.ErrArgument, "width must be a positive integer, got %d", width)
	}
	if heightOpt.Seen() && height <= 0 {
		return nil, nil, errors.Wrapf(asciify.ErrArgument, "height must be a positive integer, got %d", height)
	}

	switch set.NArgs() {
	case 0:
		return nil, nil, errors.Wrap(asciify.ErrArgument, "missing the input image")
	case 1, 2:
	default:
		return nil, nil, errors.Wrapf(asciify.ErrArgument, "too many arguments: %v", set.Args()[2:])
	}

	proc := &asciify.Processor{
		NewWidth:   width,
		NewHeight:  height,
		AutoOrient: *orient,
	}
	op := &asciify.Ops{
		Src:      set.Arg(0),
		Preview:  preview,
		PipeName: pipeName,
		Workers:  workers,
		Quiet:    *quiet,
	}
	if set.NArgs() == 2 {
		op.Dst = set.Arg(1)
	}

	return proc, op, nil
}

// exitCode returns 2 for usage errors and 1 for every other failure.
func exitCode(err error) int {
	if errors.Is(err, asciify.ErrArgument) || errors.Is(err, asciify.ErrInvalidDimension) {
		return 2
	}
	return 1
}
