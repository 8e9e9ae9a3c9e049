// Package datefmt compiles date/time format patterns into specialized
// executors.
//
// A pattern such as "yyyy-MM-ddTHH:mm:ss.SSSz" describes a date/time
// layout with SimpleDateFormat-style symbols; anything the symbol table
// does not recognize is a literal delimiter, preserved verbatim in both
// directions. Compilation runs in four stages:
//
// • The tokenizer splits the pattern by longest match into registered
// symbols and literal runs. It cannot fail.
//
// • The op-list builder emits one op per token: a positive field opcode
// or a negative index into the delimiter table. After every delimiter,
// before an AM/PM symbol, and once at the end of the pattern, the last
// field op is promoted to its greedy (variable-width) twin, so that in a
// pattern like "y-M-d" every field accepts 1..n digits.
//
// • Two analyzers compute what the executor actually needs: the format
// side's attribute set (which calendar fields to materialize, each with
// one call, in dependency order) and the parse side's slot set (which
// locals some op writes, so that only the rest get defaulted).
//
// • The emitter lowers the op list into two flat lists of typed
// closures, one per operation. Each closure was chosen by opcode at
// compile time; running a compiled format branches on no opcode, defaults
// no slot an op writes, and touches no locale table the pattern does not
// mention.
//
// Compile with generic set returns a GenericFormat instead: an
// interpreter that walks the same op list at run time. It is the
// reference semantics for the emitter and is useful for one-off
// patterns, where specialization would cost more than it saves.
//
// Parsing produces UTC milliseconds since the Unix epoch. A matched zone
// name or numeric offset shifts the result; a 12-hour field combines
// with AM/PM through an hour-type slot resolved in the final
// computation. Parse errors carry the byte position at which the input
// stopped making sense.
//
// A Compiler holds reusable scratch state and is single-threaded;
// compiled executors are immutable and freely shareable.
package datefmt
