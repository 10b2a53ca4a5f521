// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: Document persistence and substring search
//   - LLMService: Language model text generation
//   - Ingestor: PDF extraction pipeline
//
// # Optional Interfaces
//
//   - PaperSearch: External paper search. Without it, external-search
//     questions report the search as unavailable instead of failing.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
