//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every test with the default build: double precision, radians.
func (Test) All() error {
	return goTest()
}

// Runs the math and memory tests with single precision floats.
func (Test) Single() error {
	return goTest(tagSingle)
}

// Runs the math tests with angles in degrees.
func (Test) Degrees() error {
	return goTest(tagDegrees)
}

// Runs the tests of every build variant.
func (Test) Matrix() {
	mg.SerialDeps(Test.All, Test.Single, Test.Degrees)
}

// Runs go vet on every build variant.
func Vet() error {
	for _, tags := range []string{"", tagSingle, tagDegrees} {
		args := []string{"vet"}
		if tags != "" {
			args = append(args, "-tags", tags)
		}
		if _, err := executeCmd("go", withArgs(append(args, "./...")...)); err != nil {
			return err
		}
	}
	return nil
}
