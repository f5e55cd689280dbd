// Package lf defines a model of a Lingua Franca program, using the Cpp
// target, and provides export functionality to the textual .lf format.
package lf
