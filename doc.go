/*
Package asciify converts raster images into ascii art. The source image is reduced to its luminance,
optionally rescaled with a Lanczos filter, then every pixel is mapped onto a ramp of 70 characters
ordered by visual density. Each pixel is emitted as two characters, since monospace glyphs are
roughly twice as tall as they are wide.

The package provides a command line interface. To check the supported options type:

	$ asciify --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/asciify"
	)

	func main() {
		p := &asciify.Processor{
			NewWidth: 80,
		}

		if err := p.Process(os.Stdin, os.Stdout); err != nil {
			fmt.Printf("Error converting image: %s", err.Error())
		}
	}
*/
package asciify
