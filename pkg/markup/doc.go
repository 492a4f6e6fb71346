/*
Package markup renders strings carrying inline style tags.

	<red.bold>red bold text</red.bold> <bgBlue.green>green on blue</>

A tag holds a dotted chain of directives, applied left to right:

	red, bold, bgBlue          basic styles known to the backend
	#FF0000, bg#0000FF         hex colors (bg-#... and "bg #..." also work)
	(255,10,20), bg(20,10,255) rgb tuples, same as rgb(...) and bgRgb(...)
	hsl(32,100,50)             any tuple operation of the backend
	orange, 'orange', bg-gold  CSS keywords, same as keyword(...) and bgKeyword(...)
	bgKeyword(`green`)         single string argument, optionally quoted

Any close tag closes the innermost open tag: </red>, </anything> and the
short form </> are interchangeable, the name after the slash is not checked.

Tags nest. Spans are resolved innermost first by scanning the tokens from
right to left: each close tag opens an accumulation frame that is styled
and folded into its parent when the matching open tag is reached, so no
parse tree is built.

After styling, the HTML references &lt; &gt; &amp; &quot; &apos; &nbsp;
&copy; &reg; and numeric references are decoded, which is how literal angle
brackets are written.

Malformed markup fails loudly with a *errors.MarkupError whose code tells
the failure class (PARSE, UNKNOWN_DIRECTIVE, BACKEND_INVOCATION, NESTING)
and whose message quotes the offending marker and its surroundings.
*/
package markup
