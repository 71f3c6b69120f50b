// Command walletctl is a thin façade CLI over the wallet library: it
// wires credential lifecycle, network queries, and payment operations
// (spec.md §6's exposed surface) into one process-per-invocation tool.
// Exit codes and shell verbs are explicitly outside the library's core
// scope; this façade exists to demonstrate the components wired
// together, not as a spec-mandated surface.
package main

func main() {
	Execute()
}
