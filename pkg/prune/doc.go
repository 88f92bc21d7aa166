// Package prune synchronizes a directory of message catalogs with a reference
// catalog by removing keys the reference does not define.
//
// A [Runner] loads the reference once, then processes every other catalog in
// the directory in lexicographic order. Each file is handled on its own: a
// file that fails to load or save is reported in its [FileResult] and the run
// moves on. Only problems with the directory or the reference itself abort a
// run.
//
//	runner := prune.NewRunner(logger)
//	summary, err := runner.Run(ctx, prune.Options{Dir: "messages", DryRun: true}, func(r prune.FileResult) {
//	    fmt.Println(r.Name, r.Status, len(r.Extras))
//	})
//
// Callers that want to report on the reference before any target is touched
// can split the run with [Runner.Plan] and [Runner.Execute].
//
// In dry-run mode nothing is written; results report what would be removed.
package prune
