package datefmt

// Compiler turns pattern strings into Format executors. It keeps
// reusable scratch state between compilations and therefore must not be
// shared across goroutines; the executors it returns are immutable and
// freely shareable.
type Compiler struct {
	lx         lexer
	ops        []Op
	delimiters []string
}

func NewCompiler() *Compiler { return &Compiler{} }

// Compile compiles the whole pattern. With generic true the result is
// the op-list interpreter; otherwise it is the specialized executor.
func (c *Compiler) Compile(pattern string, generic bool) Format {
	return c.CompileRange(pattern, 0, len(pattern), generic)
}

// CompileRange compiles pattern[lo:hi]. Compilation cannot fail: every
// character is either a recognized symbol or a literal delimiter.
func (c *Compiler) CompileRange(pattern string, lo, hi int, generic bool) Format {
	c.lx.init(pattern, lo, hi)

	var ops []Op
	var delimiters []string
	if !generic {
		// Reuse the cached containers. Generic compilations get fresh
		// ones instead: the interpreter keeps them for its lifetime.
		ops = c.ops[:0]
		delimiters = c.delimiters[:0]
	}

	for {
		tok, op, isSymbol, ok := c.lx.next()
		if !ok {
			break
		}
		if !isSymbol {
			makeLastOpGreedy(ops)
			delimiters = append(delimiters, tok)
			ops = append(ops, Op(-len(delimiters)))
			continue
		}
		if op == OpAMPM {
			// AM/PM ends the preceding hour field the way a delimiter
			// would.
			makeLastOpGreedy(ops)
		}
		ops = append(ops, op)
	}
	makeLastOpGreedy(ops)

	if generic {
		return NewGenericFormat(ops, delimiters)
	}
	c.ops = ops
	c.delimiters = delimiters
	return &compiledFormat{
		attrs:       formatAttributes(ops),
		parseSteps:  emitParse(ops, delimiters),
		formatSteps: emitFormat(ops, delimiters),
	}
}

// makeLastOpGreedy promotes the last emitted op to its variable-width
// twin, if it has one. Delimiter refs and fixed-width ops are left
// alone.
func makeLastOpGreedy(ops []Op) {
	if i := len(ops) - 1; i >= 0 && ops[i] > 0 {
		ops[i] = ops[i].Greedy()
	}
}
