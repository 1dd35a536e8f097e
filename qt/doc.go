// Package qt resolves which Qt binding a process uses and exposes a
// normalized facade over whichever binding was chosen.
//
// Resolution runs once per process, in strict rule order: a binding whose
// native core is already loaded always wins; otherwise the QT_API
// environment override applies when its generation matches the configured
// rendering surface; otherwise an ordered candidate list biased toward the
// surface's generation is probed for the first installable binding.
//
// The resulting Facade is immutable: canonical Core/GUI/Widgets
// namespaces, a resolved version, two cached capability booleans, and
// normalized save-dialog and color helpers with a calling contract that
// never depends on the chosen binding. Plotting and widget code consumes
// the Facade and never branches on binding identity.
//
//	f, err := qt.Load(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if f.IsQt5() { ... }
package qt
