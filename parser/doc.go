// Package parser implements the Cinder frontend: a byte-level
// tokenizer, a rewindable token stream, and a recursive-descent parser
// with precedence climbing for expressions.
//
// Typical use tokenizes a source buffer and hands the stream to the
// parser:
//
//	stream, err := parser.Tokenize(src, "main.cn")
//	if err != nil {
//		return err
//	}
//	prog, errs := parser.ParseProgram(stream)
//
// Lexical and parse errors carry a machine-readable kind and a source
// position; rendering them for humans is the diag package's job.
package parser
