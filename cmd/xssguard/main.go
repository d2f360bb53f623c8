// Command xssguard defuses HTML and text output. It runs either as a
// stdin/stdout filter or as a demo web server that wires the CSP header,
// the render pipeline and the message catalog together.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
