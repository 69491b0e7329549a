package config

import (
	"os"
	"runtime"
	"strconv"
)

// GetNumWorkerMultiplier returns the base value used to calculate the number
// of workers to use for parallel rendering.
// It returns the value in BLOGBUILD_NUMWORKERMULTIPLIER OS env variable if set to a
// positive integer, else the number of logical CPUs.
func GetNumWorkerMultiplier() int {
	if gmp := os.Getenv("BLOGBUILD_NUMWORKERMULTIPLIER"); gmp != "" {
		if p, err := strconv.Atoi(gmp); err == nil && p > 0 {
			return p
		}
	}
	return runtime.NumCPU()
}
