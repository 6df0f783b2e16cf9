// Command argon checks grammar files, and parses token streams with them.
//
//	argon check -g pmt.yaml
//	argon hierarchy -g pmt.yaml
//	argon parse -g pmt.yaml --format yaml -- pmt set issues -t milestones -m open
//	argon expect -g pmt.yaml -- pmt set issues
package main

import (
	"os"
)

func main() {
	rootCmd := newRootCommand()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
