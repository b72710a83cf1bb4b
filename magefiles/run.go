//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed. BEDROCK_CONFIG points it to a config file, which is then watched.
func (Run) Testbed() error {
	args := []string{"run", "./cmd/testbed"}
	if path := os.Getenv("BEDROCK_CONFIG"); path != "" {
		args = append(args, "-config", path, "-watch")
	}
	fmt.Println("Run testbed...")
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}
