// SPDX-License-Identifier: MIT

//go:build !detnoguard

package det

// guardsEnabled keeps the shape guards compiled in. Build with
// -tags detnoguard to drop them.
const guardsEnabled = true
