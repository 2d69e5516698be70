// Command js-dependency-extractor lists the dependencies required or imported
// by JavaScript and TypeScript files.
package main

import "github.com/ethanolivertroy/js-dependency-extractor/cmd"

func main() {
	cmd.Execute()
}
