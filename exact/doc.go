// Package exact solves Set Packing instances classically, as weighted
// partial MaxSAT, to cross-check the Ising encoding.
//
// The reduction is direct: one Boolean variable per subset, a soft unit
// clause per subset (select as many as possible) and a hard binary clause
// ¬s_i ∨ ¬s_j per intersecting pair (never select both). The underlying
// solver is gophersat; instances with a few hundred subsets solve
// instantly, far beyond what the exhaustive eigen scan covers.
package exact
