// Package isprime provides a synthetic dataset for learning whether a number is prime
// from its binary digits. Primes are enumerated with the Bernstein sieve from primegen.
package isprime
