// Command logship is a maintenance CLI for the logship logging
// pipeline: it inspects, exports, and clears the durable local log and
// can emit test entries through the full console/storage/remote fanout.
package main
