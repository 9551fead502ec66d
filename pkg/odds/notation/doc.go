// Package notation parses dice expressions such as "4d6dl1+2" into exact
// distributions.
//
// Grammar (whitespace and case are ignored):
//
//	expr := ['+'|'-'] term (('+'|'-') term)*
//	term := INT | [INT] 'd' INT ['!' [cmp INT]] [('dl'|'dh'|'kl'|'kh') INT]
//	cmp  := '<' | '<=' | '=' | '==' | '>=' | '>'
//
// "dl"/"dh" drop the lowest/highest N dice, "kh"/"kl" keep the
// highest/lowest N. A bare '!' explodes on the highest face; the explosion
// rolls one more die of the same kind, once. A subtracted dice term has its
// values negated.
//
// Syntax errors wrap ErrSyntax and name the byte offset in the input as
// given, whitespace included.
package notation
