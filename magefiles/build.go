//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the testbed into bin/testbed.
func (Build) Testbed() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/testbed", "./cmd/testbed"), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the testbed with single precision floats and degrees.
func (Build) TestbedSingle() error {
	args := []string{"build", "-tags", tagSingle + "," + tagDegrees, "-o", "bin/testbed-single", "./cmd/testbed"}
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}
