// Package exercise evaluates batches of vector and line operations.
//
// A batch is a list of Tasks, usually read from a JSON-lines file:
//
//	{"id":"p1","op":"plus","a":["8.218","-9.341"],"b":["-1.129","2.111"]}
//	{"op":"angle","a":["3.183","-7.627"],"b":["-2.668","5.319"],"degrees":true}
//	{"op":"intersect","l1":{"normal":["4.046","2.836"],"constant":"1.21"},"l2":{"normal":["10.115","7.09"],"constant":"3.025"}}
//
// An Evaluator runs the batch with bounded concurrency and returns one
// Result per Task in input order. A failing task does not stop the batch;
// its Result carries the error message and kind instead of a value.
//
// Files ending in .zst or .lz4 are transparently (de)compressed.
package exercise
