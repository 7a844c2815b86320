// Package pagewalk estimates the PageRank of a hyperlinked corpus two
// independent ways — by simulating a long random walk and by iterating
// the PageRank recurrence to its fixed point.
//
// 🚀 What is pagewalk?
//
//	A small, deterministic library that brings together:
//		• Corpus model: pages, directed links, dangling-page conventions
//		• Transition model: damped jump/follow distribution from any page
//		• Sampling estimator: Monte Carlo random surfer with injectable randomness
//		• Iterative estimator: power iteration with snapshot discipline & hooks
//		• Crawler: builds a corpus from a directory of HTML pages
//
// ✨ Why choose pagewalk?
//
//   - Predictable – every public surface is sorted; same inputs, same output
//   - Inspectable – per-iteration hooks expose convergence as it happens
//   - Reproducible – seed the sampler and the whole walk replays exactly
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	corpus/   — the page/link model every estimator consumes
//	pagerank/ — Transition, Sample and Iterate plus their options
//	builder/  — composable constructors for common corpus topologies
//	crawl/    — HTML directory → corpus
//	cmd/      — the pagewalk command-line front end
//
// Quick ASCII example:
//
//	    1.html ──▶ 2.html ──▶ 3.html
//	       ▲──────────┘
//
//	three pages where 3.html links nowhere, so the surfer treats it as
//	linking everywhere.
//
//	go get github.com/pagewalk/pagewalk
package pagewalk
