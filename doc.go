// Package pipeflow computes hydraulic properties of pressurized circular
// pipes — discharge, diameter, head loss, velocity and Reynolds number —
// with the Darcy–Weisbach relation and the Colebrook–White friction factor.
//
// 🚀 What is pipeflow?
//
//	A small, dependency-light library that brings together:
//		• Solvers: Colebrook–White friction factor, diameter and discharge inversion
//		• Pipe entity: give two of {Q, D, hf}, read the third (solved once, cached)
//		• Local losses: contractions, expansions, fittings
//		• Standard sizes: a sorted catalog of named diameters
//
// Under the hood, everything is organized under three subpackages:
//
//	hydraulics/ — constants, closed-form relations and iterative solvers
//	pipe/       — the Pipe entity with its lazily resolved unknown
//	catalog/    — named standard diameters with floor/ceiling lookup
//
// The cmd/pipecalc command resolves YAML batches of pipes; examples/ holds
// runnable scenarios.
//
//	go get github.com/katalvlaran/pipeflow
package pipeflow
