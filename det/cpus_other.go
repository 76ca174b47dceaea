// SPDX-License-Identifier: MIT

//go:build !linux

package det

import "runtime"

// availableCPUs returns runtime.NumCPU on platforms without an affinity probe.
func availableCPUs() int {
	return runtime.NumCPU()
}
