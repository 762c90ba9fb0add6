// Package commands implements the qkp command-line driver.
//
// Subcommands:
//
//	solve   solve one or all cases of a suite with a chosen algorithm
//	verify  check all algorithms against the suite's recorded answers
//	bench   time every algorithm over a suite and print the report
//	gen     write a reproducible random suite
//
// Configuration is layered by viper: defaults < --config file < QKP_* env < flags.
package commands
