/*
Package operation implements the host pipeline around the replacement engine.

	+-------------+
	|  Operation  |
	| (Pipeline)  |
	+------+------+
	       |
	+------+------+
	|   Engine    |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Walks the source tree and selects files via include/ignore globs
- Feeds each selected file's text through the replacement engine
- Writes results to the destination atomically
- Reports per-file outcomes via logging

🔄 Flow:
1. Collect candidate files from the source tree
2. Transform selected files (token substitution)
3. Copy unselected files through untouched
4. Report progress and totals

📝 Design Philosophy:
The engine itself knows nothing about files; it transforms (text, path) →
text. This package owns all file I/O, so the engine stays a pure function
and the pipeline stays trivially parallelizable: the engine is immutable,
and each file is processed independently.
*/
package operation
