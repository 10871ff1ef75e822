// Package combiner merges two images into one by taking every other RGBA
// pixel from each.
//
// The work happens in a fixed order: decode both inputs, require the same
// container format, shrink one of them so both share the smaller size,
// alternate their pixels into an ImageBuffer and hand that buffer to the
// encoder. Any failure stops the run before the output file is touched.
//
// Decoding, encoding and resampling are delegated to a Codec; see package
// codec for the file-backed implementation.
package combiner
