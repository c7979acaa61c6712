// Package testsupport provides shared fixtures for package tests: temp-dir
// configs, export and roster CSV generators, and run store helpers.
package testsupport
