// Package trainer provides round based training orchestration for Tsetlin machines.
// It fits a machine in rounds, measures its success on a statistically sufficient
// sample after each one, and stops once the target is reached or the automata stop moving.
package trainer
