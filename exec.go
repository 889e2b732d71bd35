package asciify

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/asciify/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Ops holds the source and destination of a conversion.
// Src may be a file, a directory, an URL or PipeName, in which case the image is read from stdin.
// An empty Dst prints the result to Stdout.
type Ops struct {
	Src, Dst, Preview, PipeName string
	Workers                     int
	Quiet                       bool

	Stdout io.Writer
	Stderr io.Writer
}

// result holds the relevant information about a converted image in directory mode.
type result struct {
	path string
	err  error
}

func (op *Ops) stdout() io.Writer {
	if op.Stdout == nil {
		return os.Stdout
	}
	return op.Stdout
}

func (op *Ops) stderr() io.Writer {
	if op.Stderr == nil {
		return os.Stderr
	}
	return op.Stderr
}

// interactive reports whether progress can be drawn on the error stream.
func (op *Ops) interactive() bool {
	if op.Quiet {
		return false
	}
	f, ok := op.stderr().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute converts the image(s) described by op.
// Every error is terminal: a failed single conversion leaves nothing behind,
// while in directory mode the remaining images are still converted.
func (p *Processor) Execute(op *Ops) error {
	// Reject bad dimensions before touching any file.
	if _, err := p.Request(); err != nil {
		return err
	}

	if op.interactive() && p.Spinner == nil {
		msg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ ASCIIFY", utils.StatusMessage),
			utils.DecorateText("⇢ converting image...", utils.DefaultMessage),
		)
		p.Spinner = utils.NewSpinner(op.stderr(), msg, time.Millisecond*80, true)
	}

	if p.Spinner != nil {
		// Capture CTRL-C signal and restores back the cursor visibility.
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		stop := make(chan struct{})
		defer func() {
			signal.Stop(signalChan)
			close(stop)
		}()

		go func() {
			select {
			case <-signalChan:
				p.Spinner.RestoreCursor()
				os.Exit(1)
			case <-stop:
			}
		}()
	}

	now := time.Now()
	if err := op.dispatch(p); err != nil {
		return err
	}

	if !op.Quiet {
		fmt.Fprintf(op.stderr(), "\nExecution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
	return nil
}

// dispatch selects the conversion mode depending on the source type.
func (op *Ops) dispatch(p *Processor) error {
	// Check if source path is a local image or URL.
	if utils.IsValidUrl(op.Src) {
		src, err := utils.DownloadImage(op.Src)
		if err != nil {
			return errors.Wrapf(ErrDecode, "failed to load the source image: %v", err)
		}
		defer os.Remove(src.Name())
		defer src.Close()

		return op.single(p, src, op.Dst)
	}

	if op.PipeName != "" && op.Src == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.Wrap(ErrArgument, "`-` should be used with a pipe for stdin")
		}
		return op.single(p, os.Stdin, op.Dst)
	}

	fs, err := os.Stat(op.Src)
	if err != nil {
		return errors.Wrapf(ErrDecode, "failed to load the source image: %v", err)
	}
	if fs.IsDir() {
		return op.batch(p)
	}

	src, err := os.Open(op.Src)
	if err != nil {
		return errors.Wrapf(ErrDecode, "unable to open the source file: %v", err)
	}
	defer src.Close()

	return op.single(p, src, op.Dst)
}

// single converts one image, showing the progress indicator while doing so.
func (op *Ops) single(p *Processor, src io.Reader, dst string) error {
	if p.Spinner != nil {
		p.Spinner.Start()
	}

	art, err := p.Art(src)
	if p.Spinner != nil {
		if err != nil {
			p.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ ASCIIFY", utils.StatusMessage),
				utils.DecorateText("converting image failed...", utils.DefaultMessage),
				utils.DecorateText("✘", utils.ErrorMessage),
			)
		} else {
			p.Spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ ASCIIFY", utils.StatusMessage),
				utils.DecorateText("⇢", utils.DefaultMessage),
				utils.DecorateText("the image has been converted successfully ✔", utils.SuccessMessage),
			)
		}
		p.Spinner.Stop()
	}
	if err != nil {
		return err
	}

	if err := op.save(art, dst); err != nil {
		return err
	}
	if op.Preview != "" {
		if err := writeSnapshot(op.Preview, art); err != nil {
			return err
		}
		op.printOpStatus(op.Preview, nil)
	}
	return nil
}

// save writes the art into dst, or to the standard output followed by a newline if dst is empty.
func (op *Ops) save(art AsciiArt, dst string) error {
	if dst == "" {
		w := op.stdout()
		if _, err := art.WriteTo(w); err != nil {
			return errors.Wrap(ErrOutput, err.Error())
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrap(ErrOutput, err.Error())
		}
		return nil
	}

	if err := writeArt(dst, art); err != nil {
		return err
	}
	op.printOpStatus(dst, nil)

	return nil
}

// batch converts every supported image found in the source directory concurrently.
// The text files are written into the destination directory, which is created if missing.
func (op *Ops) batch(p *Processor) error {
	if op.Dst == "" {
		return errors.Wrap(ErrArgument, "a destination directory is required when the source is a directory")
	}
	if op.Preview != "" {
		return errors.Wrap(ErrArgument, "the preview option cannot be used when the source is a directory")
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return errors.Wrapf(ErrOutput, "unable to create the destination directory: %v", err)
	}

	workers := op.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	// Limit the concurrently running workers to maxWorkers.
	workers = utils.Min(workers, maxWorkers)

	if p.Spinner != nil {
		p.Spinner.Start()
	}

	// Process recursively the image files from the specified directory concurrently.
	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	paths, errc := walkDir(done, op.Src, supportedExtensions)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(p, op.Dst, ch, done, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var results []result
	for res := range ch {
		results = append(results, res)
	}
	if p.Spinner != nil {
		p.Spinner.Stop()
	}

	var failed int
	for _, res := range results {
		if res.err != nil {
			failed++
		}
		op.printOpStatus(res.path, res.err)
	}

	if err := <-errc; err != nil {
		return errors.Wrap(err, "walking the source directory")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d images could not be converted", failed, len(results))
	}
	return nil
}

// consumer reads the path names from the paths channel and converts each image into the destination directory.
// The subdirectories of the source tree are mirrored under dest.
func (op *Ops) consumer(
	p *Processor,
	dest string,
	res chan<- result,
	done <-chan struct{},
	paths <-chan string,
) {
	for src := range paths {
		rel, err := filepath.Rel(op.Src, src)
		if err != nil {
			rel = filepath.Base(src)
		}
		dst := filepath.Join(dest, strings.TrimSuffix(rel, filepath.Ext(rel))+".txt")
		err = op.convertFile(p, src, dst)

		select {
		case <-done:
			return
		case res <- result{
			path: dst,
			err:  errors.Wrap(err, src),
		}:
		}
	}
}

// convertFile converts the image found at src into the text file dst.
func (op *Ops) convertFile(p *Processor, src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(ErrDecode, "unable to open the source file: %v", err)
	}
	defer f.Close()

	art, err := p.Art(f)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(ErrOutput, "unable to create the destination directory: %v", err)
	}
	return writeArt(dst, art)
}

// printOpStatus displays the relevant information about a conversion.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(op.stderr(), "%s %s\n",
			utils.DecorateText("Error converting the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		return
	}
	if op.Quiet {
		return
	}
	fmt.Fprintf(op.stderr(), "The result has been saved as: %s\n",
		utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
	)
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each supported file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan struct{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() || !isValidExtension(filepath.Ext(f.Name()), srcExts) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}
