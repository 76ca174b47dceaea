// SPDX-License-Identifier: MIT

//go:build linux

package det

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// availableCPUs counts the CPUs in the calling thread's affinity mask, so a
// process pinned with taskset or a cgroup cpuset does not oversubscribe.
// Falls back to runtime.NumCPU when the mask cannot be read.
func availableCPUs() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err == nil {
		if n := set.Count(); n > 0 {
			return n
		}
	}

	return runtime.NumCPU()
}
