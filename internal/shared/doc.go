// Package shared holds helpers used across cellwatch packages that belong
// to no single layer.
//
// The testutil subpackage provides a buffered slog handler for asserting
// on log output and a sample corpus of CLI exports covering every section
// kind:
//
//	func TestSomething(t *testing.T) {
//	    dir := testutil.SampleCorpus(t)
//	    logger, logs := testutil.NewTestLogger(t)
//	    ...
//	    testutil.AssertNoErrors(t, logs)
//	}
package shared
