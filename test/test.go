package test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test runs the ginkgo specs of the calling package, named after its directory
func Test(t *testing.T) {
	RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, suiteName())
}

func suiteName() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		return "seed"
	}
	return filepath.Base(filepath.Dir(file)) + " suite"
}
