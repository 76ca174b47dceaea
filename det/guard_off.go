// SPDX-License-Identifier: MIT

//go:build detnoguard

package det

// guardsEnabled is false under the detnoguard tag: shape and nil checks are
// skipped and malformed input is undefined behavior.
const guardsEnabled = false
