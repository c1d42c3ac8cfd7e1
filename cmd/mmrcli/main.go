// Command mmrcli is a small demonstrator for the mmr package: it keeps a
// bbolt-backed mmr on disk and lets you push leaves, print the root,
// generate a proof, and verify one.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
