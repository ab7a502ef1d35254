// Package watch reports changes to the document corpus.
//
// A Watcher wraps fsnotify on the documents directory. Create, write,
// remove and rename events for files with a document extension are
// collected per file; once a file has been quiet for the debounce window it
// is passed to the Handler, together with every other settled file, in one
// sorted batch. The CLI uses this to re-print the summary while exports are
// being copied in.
package watch
