// Package eigen finds exact ground states of diagonal Pauli operators by
// exhaustive enumeration of the computational basis.
//
// Ising encoders such as setpacking produce operators built from Z and
// identity factors only, so every computational basis state is an
// eigenstate and the spectrum is the 2^n diagonal. Ground scans it for
// the minimum; BasisVector turns the winning index into the one-hot
// amplitude vector a decoding step consumes. This stands in for a real
// quantum or quantum-inspired solver on small instances (n ≤ MaxQubits).
//
// Complexity: O(2^n · terms · n) time for Ground, O(2^n) memory for
// Energies and BasisVector.
package eigen
