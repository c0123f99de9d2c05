// SPDX-License-Identifier: MIT

package jacobi

// Internal kernels exposed to the external test package.
var (
	Pivot             = pivot
	Sign              = sign
	RotationFor       = rotationFor
	FoldNegativeZeros = foldNegativeZeros
)
