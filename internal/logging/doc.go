// Package logging captures leveled application log events and fans
// them out to three independent sinks: a synchronous console channel,
// a capacity-bounded durable local history, and a batched remote
// uploader with failure-driven requeuing.
//
// Each sink filters independently against the shared configuration, so
// an entry can be console-visible but remote-suppressed or vice versa.
// The cardinal rule is that logging never alters caller control flow:
// sink failures are swallowed at the worker boundary and at most noted
// on a fallback writer.
package logging
