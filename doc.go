// Package fornax is an approximate, fuzzy subgraph-matching engine: it
// ranks fuzzy embeddings of a small query graph inside a larger target
// graph, tolerating partial and imperfect structural correspondence
// rather than requiring exact isomorphism.
//
// 🚀 What is fornax?
//
//	A modern, thread-safe, dependency-light module that brings together:
//
//	  • Core primitives: create graphs, validate candidate matches, mutate
//	    safely through a pluggable GraphStore
//	  • A bounded neighborhood join (assemble) that builds the candidate
//	    comparison table a match set implies
//	  • An iterative cost-relaxation Solver (solve) and a BFS-walk
//	    subgraph extractor
//	  • A Ranker (rank) that scores and orders the surviving candidates
//
// ✨ Why choose fornax?
//
//   - Approximate by design — weighted candidate matches in, ranked
//     fuzzy subgraphs out; no exact-isomorphism requirement
//   - Pluggable storage — an in-memory Store for tests and short-lived
//     queries, a BadgerDB-backed Store for anything that should survive
//     a restart
//   - Concurrency-safe — Query.Execute, the assembler and the solver
//     accept a context.Context and check it during BFS and between
//     relaxation iterations
//
// Under the hood, everything is organized under a handful of packages:
//
//	core/                — Graph, Match, GraphStore and validation primitives
//	assemble/            — the bounded-hop neighborhood join table
//	solve/               — iterative cost relaxation and subgraph extraction
//	rank/                — scoring and top-n selection
//	query/               — the Query handle tying the pipeline together
//	storage/memstore/    — in-memory GraphStore + query.Store
//	storage/badgerstore/ — BadgerDB-backed GraphStore + query.Store
//
// See DESIGN.md for background on how the packages fit together.
package fornax
