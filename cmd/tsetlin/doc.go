// Package main provides the tsetlin command for training Tsetlin machines on
// the built-in boolean datasets, printing the learned rules and distilling
// small machines into quaternary filters.
package main
