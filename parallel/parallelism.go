package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

var parallelism = detect()

func detect() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Parallelism reports the recommended number of goroutines for read only work on this platform.
// Can't return 0.
func Parallelism() int {
	if parallelism <= 0 {
		return 1
	}
	return parallelism
}
